package passport_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/dmitrymomot/passport"
	"github.com/dmitrymomot/passport/pkg/oauth"
)

// fakeProvider is a scripted oauth.Provider for handler tests.
type fakeProvider struct {
	name        string
	token       *oauth2.Token
	exchangeErr error
	profile     *oauth.Profile
	fetchErr    error

	gotCode string
}

var _ oauth.Provider = (*fakeProvider)(nil)

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) AuthCodeURL(state string, _ ...oauth2.AuthCodeOption) string {
	return "https://provider.example.com/authorize?state=" + state
}

func (f *fakeProvider) Exchange(_ context.Context, code, _ string) (*oauth2.Token, error) {
	f.gotCode = code
	if f.exchangeErr != nil {
		return nil, f.exchangeErr
	}
	return f.token, nil
}

func (f *fakeProvider) FetchProfile(_ context.Context, _ *oauth2.Token) (*oauth.Profile, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.profile, nil
}

func TestPassport_Strategy(t *testing.T) {
	t.Parallel()

	t.Run("registered strategy is returned", func(t *testing.T) {
		t.Parallel()
		p := passport.New()
		t.Cleanup(func() { _ = p.Close() })

		provider := &fakeProvider{name: "instagram"}
		p.Use(provider, func(context.Context, passport.Tokens, *oauth.Profile) (any, error) {
			return nil, nil
		})

		s, err := p.Strategy("instagram")
		require.NoError(t, err)
		require.Same(t, provider, s.Provider.(*fakeProvider))
	})

	t.Run("unknown strategy", func(t *testing.T) {
		t.Parallel()
		p := passport.New()
		t.Cleanup(func() { _ = p.Close() })

		s, err := p.Strategy("instagram")
		require.ErrorIs(t, err, passport.ErrUnknownStrategy)
		require.Nil(t, s)
	})

	t.Run("re-registration replaces", func(t *testing.T) {
		t.Parallel()
		p := passport.New()
		t.Cleanup(func() { _ = p.Close() })

		first := &fakeProvider{name: "instagram"}
		second := &fakeProvider{name: "instagram"}
		verify := func(context.Context, passport.Tokens, *oauth.Profile) (any, error) {
			return nil, nil
		}
		p.Use(first, verify)
		p.Use(second, verify)

		s, err := p.Strategy("instagram")
		require.NoError(t, err)
		require.Same(t, second, s.Provider.(*fakeProvider))
	})
}
