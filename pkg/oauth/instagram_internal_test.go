package oauth

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConvertProfileFields(t *testing.T) {
	t.Parallel()

	t.Run("maps canonical names preserving order", func(t *testing.T) {
		t.Parallel()
		got := convertProfileFields([]string{"username", "id", "media_count"})
		require.Equal(t, "username,id,media_count", got)
	})

	t.Run("unknown names pass through", func(t *testing.T) {
		t.Parallel()
		got := convertProfileFields([]string{"id", "photos_count"})
		require.Equal(t, "id,photos_count", got)
	})

	t.Run("empty list yields empty string", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, convertProfileFields(nil))
	})
}

func TestBuildProfileURL(t *testing.T) {
	t.Parallel()

	t.Run("appends fields parameter", func(t *testing.T) {
		t.Parallel()
		p := &InstagramProvider{
			profileURL:    "https://graph.instagram.com/me",
			profileFields: []string{"id", "username"},
		}

		got, err := p.buildProfileURL()
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)
		require.Equal(t, "id,username", u.Query().Get("fields"))
	})

	t.Run("preserves existing query parameters", func(t *testing.T) {
		t.Parallel()
		p := &InstagramProvider{
			profileURL:    "https://graph.instagram.com/me?locale=en",
			profileFields: []string{"id"},
		}

		got, err := p.buildProfileURL()
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)
		require.Equal(t, "en", u.Query().Get("locale"))
		require.Equal(t, "id", u.Query().Get("fields"))
	})

	t.Run("empty field list omits fields parameter", func(t *testing.T) {
		t.Parallel()
		p := &InstagramProvider{
			profileURL: "https://graph.instagram.com/me?locale=en",
		}

		got, err := p.buildProfileURL()
		require.NoError(t, err)

		u, err := url.Parse(got)
		require.NoError(t, err)
		require.False(t, u.Query().Has("fields"))
		require.Equal(t, "en", u.Query().Get("locale"))
	})

	t.Run("malformed endpoint fails", func(t *testing.T) {
		t.Parallel()
		p := &InstagramProvider{
			profileURL:    "://not-a-url",
			profileFields: []string{"id"},
		}

		_, err := p.buildProfileURL()
		require.Error(t, err)
	})
}
