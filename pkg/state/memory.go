package state

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-memory state store with TTL-based expiration.
// A background janitor removes expired tokens so abandoned login attempts
// do not accumulate.
type Memory struct {
	tokens map[string]time.Time
	opts   *memoryOptions
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:      5 * time.Minute,
		cleanupInterval: time.Minute,
	}
}

// WithDefaultTTL sets the expiration applied when Save is called with a
// zero TTL. Default: 5 minutes.
func WithDefaultTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if d > 0 {
			o.defaultTTL = d
		}
	}
}

// WithCleanupInterval sets how often expired tokens are removed.
// A non-positive interval disables the janitor. Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// NewMemory creates a new in-memory state store.
//
// Example:
//
//	s := state.NewMemory(
//	    state.WithDefaultTTL(10 * time.Minute),
//	    state.WithCleanupInterval(30 * time.Second),
//	)
//	defer s.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		tokens: make(map[string]time.Time),
		opts:   o,
		done:   make(chan struct{}),
	}

	if o.cleanupInterval > 0 {
		go m.janitor()
	}

	return m
}

// Save stores a token with the given TTL.
func (m *Memory) Save(_ context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = m.opts.defaultTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	m.tokens[token] = time.Now().Add(ttl)
	return nil
}

// Consume validates and removes a token.
// Returns ErrNotFound if the token is absent, expired, or already consumed.
func (m *Memory) Consume(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	expiresAt, ok := m.tokens[token]
	if !ok {
		return ErrNotFound
	}

	delete(m.tokens, token)

	if time.Now().After(expiresAt) {
		return ErrNotFound
	}
	return nil
}

// Close stops the janitor and rejects further operations.
// Safe to call multiple times.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}

	m.closed = true
	close(m.done)
	m.tokens = nil
	return nil
}

func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.removeExpired()
		}
	}
}

func (m *Memory) removeExpired() {
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	for token, expiresAt := range m.tokens {
		if now.After(expiresAt) {
			delete(m.tokens, token)
		}
	}
}
