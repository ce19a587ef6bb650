package state

import "errors"

// Sentinel errors for state store operations.
var (
	// ErrNotFound is returned when a token does not exist, has expired,
	// or was already consumed.
	ErrNotFound = errors.New("state: token not found")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("state: store closed")
)
