// Package oauth provides OAuth2 authorization code flow implementations for common providers.
//
// This package includes a Provider interface and a concrete implementation for
// Instagram. Each provider handles the full OAuth2 flow: generating
// authorization URLs, exchanging codes for tokens, and fetching the user
// profile, normalized into a provider-agnostic Profile.
//
// # Features
//
//   - Provider interface for pluggable OAuth2 implementations
//   - Instagram OAuth2 with configurable profile field selection
//   - Canonical-to-native field name mapping with pass-through for unknown fields
//   - Functional options for custom HTTP clients (testing, custom transports)
//   - Configuration structs with env tags for environment-based setup
//   - Sentinel errors with "oauth:" prefix for consistent error handling
//
// # Usage
//
// Instagram provider setup:
//
//	provider := oauth.NewInstagramProvider(oauth.InstagramConfig{
//		ClientID:     os.Getenv("INSTAGRAM_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("INSTAGRAM_OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/instagram/callback",
//	})
//
//	// Generate authorization URL
//	url := provider.AuthCodeURL("random-state-string")
//
//	// Exchange code for token (in callback handler)
//	token, err := provider.Exchange(ctx, code, "")
//	if err != nil {
//		// handle error
//	}
//
//	// Fetch the user profile
//	profile, err := provider.FetchProfile(ctx, token)
//	if err != nil {
//		// handle error
//	}
//
// # Profile Fields
//
// The fields requested from Instagram's profile endpoint are configurable.
// Canonical names (id, username, account_type, media_count) are translated to
// the provider's native names; anything else is passed through verbatim, so
// provider-native fields outside the canonical map can be requested directly:
//
//	provider := oauth.NewInstagramProvider(oauth.InstagramConfig{
//		ClientID:      "...",
//		ClientSecret:  "...",
//		ProfileFields: []string{"id", "username", "media_count"},
//	})
//
// When no fields are configured, the default selection is id and username.
//
// # Custom Providers
//
// Implement the Provider interface to add support for other OAuth2 providers:
//
//	type MyProvider struct { /* ... */ }
//
//	func (p *MyProvider) Name() string { return "my-provider" }
//	func (p *MyProvider) AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string { /* ... */ }
//	func (p *MyProvider) Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error) { /* ... */ }
//	func (p *MyProvider) FetchProfile(ctx context.Context, token *oauth2.Token) (*oauth.Profile, error) { /* ... */ }
//
// # Testing
//
// Use WithHTTPClient to inject a test server for unit testing:
//
//	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//		// mock responses
//	}))
//	defer ts.Close()
//
//	provider := oauth.NewInstagramProvider(cfg, oauth.WithHTTPClient(ts.Client()))
//
// # Error Handling
//
// The package provides sentinel errors for the two failure modes of a
// profile fetch:
//
//   - ErrFetchFailed: the authenticated request could not be completed
//     (transport failure, nil response, or non-OK provider status)
//   - ErrDecodeFailed: the provider response body is not valid JSON
//
// Both carry the underlying cause. Use errors.Is for checking:
//
//	if errors.Is(err, oauth.ErrFetchFailed) {
//		// provider unreachable or rejected the token
//	}
//
// Missing optional profile fields are not errors: absent name parts degrade
// to empty values in the returned Profile.
//
// # Security
//
//   - Always validate the state parameter to prevent CSRF attacks
//   - Use HTTPS redirect URIs in production
//   - Store tokens securely (encrypted at rest, never in URLs)
//   - Keep client secrets out of source control (use environment variables)
package oauth
