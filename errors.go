package passport

import "errors"

var (
	// ErrUnknownStrategy is returned when no strategy is registered under
	// the requested provider name.
	ErrUnknownStrategy = errors.New("passport: unknown strategy")

	// ErrStateMismatch is returned when the callback's state parameter is
	// missing, does not match the state cookie, or was already consumed.
	ErrStateMismatch = errors.New("passport: oauth state mismatch")

	// ErrMissingCode is returned when the callback carries no authorization
	// code, e.g. when the user denied access at the provider.
	ErrMissingCode = errors.New("passport: missing authorization code")

	// ErrVerifyDenied is passed to the error handler when the verify
	// callback refuses the authentication attempt without an error.
	ErrVerifyDenied = errors.New("passport: verification denied")
)
