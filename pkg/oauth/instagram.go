package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/oauth2"
	instagramOAuth "golang.org/x/oauth2/instagram"
)

const (
	// InstagramProviderName is the identifier for the Instagram OAuth provider.
	InstagramProviderName = "instagram"
	instagramProfileURL   = "https://graph.instagram.com/me"
)

// InstagramDefaultFields returns the default profile fields requested
// from Instagram.
func InstagramDefaultFields() []string {
	return []string{"id", "username"}
}

// instagramFieldMap translates canonical field names to the provider-native
// names Instagram expects in the fields query parameter. Values are slices:
// a canonical field may expand to several provider fields. Names not in the
// map pass through verbatim, so callers can request provider-native fields
// directly.
var instagramFieldMap = map[string][]string{
	"id":           {"id"},
	"username":     {"username"},
	"account_type": {"account_type"},
	"media_count":  {"media_count"},
}

// InstagramProvider implements Provider for Instagram OAuth.
type InstagramProvider struct {
	config        *oauth2.Config
	profileURL    string
	profileFields []string
	httpClient    *http.Client
}

// NewInstagramProvider creates a new Instagram OAuth provider.
// Construction always succeeds: endpoint and field-list defaults are applied
// for any option left empty, and credentials are not validated here. Missing
// credentials surface later, when the provider exchanges a code.
func NewInstagramProvider(cfg InstagramConfig, opts ...Option) *InstagramProvider {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	endpoint := instagramOAuth.Endpoint
	if cfg.AuthURL != "" {
		endpoint.AuthURL = cfg.AuthURL
	}
	if cfg.TokenURL != "" {
		endpoint.TokenURL = cfg.TokenURL
	}

	profileURL := cfg.ProfileURL
	if profileURL == "" {
		profileURL = instagramProfileURL
	}

	fields := cfg.ProfileFields
	if len(fields) == 0 {
		fields = InstagramDefaultFields()
	}

	return &InstagramProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		profileURL:    profileURL,
		profileFields: fields,
		httpClient:    o.httpClient,
	}
}

// Name returns the provider identifier.
func (p *InstagramProvider) Name() string {
	return InstagramProviderName
}

// AuthCodeURL generates the authorization URL.
func (p *InstagramProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string {
	return p.config.AuthCodeURL(state, opts...)
}

// Exchange trades an authorization code for tokens.
func (p *InstagramProvider) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) {
	cfg := p.config
	if redirectURI != "" {
		cfg = &oauth2.Config{
			ClientID:     p.config.ClientID,
			ClientSecret: p.config.ClientSecret,
			RedirectURL:  redirectURI,
			Scopes:       p.config.Scopes,
			Endpoint:     p.config.Endpoint,
		}
	}
	ctx = p.contextWithHTTPClient(ctx)
	return cfg.Exchange(ctx, code)
}

// FetchProfile retrieves the user profile from Instagram and normalizes it.
// Transport failures and non-OK statuses return ErrFetchFailed; a body that
// is not valid JSON returns ErrDecodeFailed. Missing optional fields (name
// parts) degrade to empty values rather than failing.
func (p *InstagramProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error) {
	reqURL, err := p.buildProfileURL()
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("build profile url: %w", err))
	}

	ctx = p.contextWithHTTPClient(ctx)
	client := p.config.Client(ctx, token)

	resp, err := client.Get(reqURL)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("fetch profile: %w", err))
	}
	if resp == nil {
		return nil, errors.Join(ErrFetchFailed, errors.New("unexpected nil response from instagram profile endpoint"))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("read profile response: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Join(ErrFetchFailed, fmt.Errorf("profile request failed: status=%d body=%s", resp.StatusCode, body))
	}

	var doc map[string]any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, errors.Join(ErrDecodeFailed, fmt.Errorf("decode profile: %w", err))
	}

	return &Profile{
		Provider:    InstagramProviderName,
		ID:          stringField(doc, "id"),
		Username:    stringField(doc, "username"),
		DisplayName: stringField(doc, "full_name"),
		Name: Name{
			GivenName:  stringField(doc, "first_name"),
			FamilyName: stringField(doc, "last_name"),
		},
		Raw:  body,
		JSON: doc,
	}, nil
}

func (p *InstagramProvider) contextWithHTTPClient(ctx context.Context) context.Context {
	if p.httpClient != nil {
		return context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)
	}
	return ctx
}

// buildProfileURL appends the field selection to the profile endpoint,
// preserving any query parameters already present on the configured URL.
// An empty field list leaves the URL without a fields parameter.
func (p *InstagramProvider) buildProfileURL() (string, error) {
	u, err := url.Parse(p.profileURL)
	if err != nil {
		return "", err
	}

	if fields := convertProfileFields(p.profileFields); fields != "" {
		q := u.Query()
		q.Set("fields", fields)
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

// convertProfileFields translates the configured field list into the value of
// the fields query parameter: each canonical name is replaced by its mapped
// provider name(s), unknown names pass through, and the result is
// comma-joined preserving input order.
func convertProfileFields(fields []string) string {
	native := make([]string, 0, len(fields))
	for _, f := range fields {
		if mapped, ok := instagramFieldMap[f]; ok {
			native = append(native, mapped...)
			continue
		}
		native = append(native, f)
	}
	return strings.Join(native, ",")
}

// stringField extracts a string value from the decoded document.
// Instagram returns identifiers as JSON strings, but some Graph API versions
// return raw numbers; both are accepted. Missing keys yield an empty string.
func stringField(doc map[string]any, key string) string {
	switch v := doc[key].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return ""
	}
}
