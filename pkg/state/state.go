package state

import (
	"context"
	"time"
)

// Store persists one-time login state tokens used to bind an authorization
// redirect to the callback that follows it. Tokens are opaque random
// strings; a token is valid for a single Consume before its TTL elapses.
type Store interface {
	// Save stores a token with the given TTL.
	// A zero TTL uses the store's configured default.
	Save(ctx context.Context, token string, ttl time.Duration) error

	// Consume validates and removes a token in one step.
	// Returns ErrNotFound if the token is absent, expired, or was
	// already consumed.
	Consume(ctx context.Context, token string) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}
