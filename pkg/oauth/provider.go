package oauth

import (
	"context"

	"golang.org/x/oauth2"
)

// Name holds the structured name parts of a user profile.
// Providers that only expose a display name leave both parts empty.
type Name struct {
	GivenName  string
	FamilyName string
}

// Profile represents provider-agnostic user information retrieved from an
// OAuth provider's profile endpoint. Raw and JSON retain the original
// response for provider-specific consumers; everything else is normalized.
type Profile struct {
	Provider    string         // Strategy identifier (e.g., "instagram")
	ID          string         // Provider's opaque user identifier
	Username    string
	DisplayName string
	Name        Name
	Raw         []byte         // Original response body
	JSON        map[string]any // Decoded response document
}

// Provider abstracts provider-specific OAuth operations.
// Each provider (Instagram, etc.) implements this interface.
// Provider implementations handle all provider-specific details internally,
// including profile field selection and response normalization.
type Provider interface {
	// Name returns the provider identifier (e.g., "instagram").
	Name() string

	// AuthCodeURL generates the authorization URL for the OAuth flow.
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code, redirectURI string) (*oauth2.Token, error)

	// FetchProfile retrieves the user profile using the access token.
	// Implementations classify failures as ErrFetchFailed (the request could
	// not be completed) or ErrDecodeFailed (the response body is malformed).
	FetchProfile(ctx context.Context, token *oauth2.Token) (*Profile, error)
}
