package oauth

import "errors"

var (
	// ErrFetchFailed is returned when the authenticated profile request could
	// not be completed: transport failure, nil response, or a non-OK status
	// from the provider. The underlying cause is joined for diagnostics.
	ErrFetchFailed = errors.New("oauth: failed to fetch profile from provider")

	// ErrDecodeFailed is returned when the provider response body is not
	// valid JSON. The parse error is joined for diagnostics.
	ErrDecodeFailed = errors.New("oauth: failed to decode provider response")
)
