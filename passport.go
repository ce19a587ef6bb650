package passport

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/passport/pkg/oauth"
	"github.com/dmitrymomot/passport/pkg/state"
)

// Tokens carries the provider credentials handed to the verify callback.
// The refresh token may be empty; Instagram short-lived tokens have none.
type Tokens struct {
	AccessToken  string
	RefreshToken string
}

// VerifyFunc decides what the authenticated profile means for the
// application: look up or create a local user, link accounts, enforce
// policies. Returning a nil user with a nil error refuses the attempt;
// the error handler then receives ErrVerifyDenied.
type VerifyFunc func(ctx context.Context, tokens Tokens, profile *oauth.Profile) (any, error)

// SuccessHandler completes the request after a verified authentication.
// Typical implementations establish a session and redirect.
type SuccessHandler func(w http.ResponseWriter, r *http.Request, user any)

// ErrorHandler completes the request after a failed authentication attempt.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Strategy couples an OAuth provider with the application's verify callback.
type Strategy struct {
	Provider oauth.Provider
	Verify   VerifyFunc
}

// Passport dispatches authentication attempts to named strategies.
// Register strategies with Use at startup, then mount Routes; the strategy
// set is not safe for mutation after the router starts serving.
type Passport struct {
	strategies map[string]*Strategy
	states     state.Store
	logger     *slog.Logger
	stateTTL   time.Duration
	cookieName string
	secure     bool
	onSuccess  SuccessHandler
	onError    ErrorHandler
}

// New creates a Passport with the given options.
// Without options it uses an in-memory state store, a discarding logger,
// a 5-minute state TTL, and JSON/plain-text default handlers.
func New(opts ...Option) *Passport {
	p := &Passport{
		strategies: make(map[string]*Strategy),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		stateTTL:   5 * time.Minute,
		cookieName: "__passport_state",
		secure:     true,
		onSuccess:  defaultSuccessHandler,
		onError:    defaultErrorHandler,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.states == nil {
		p.states = state.NewMemory(state.WithDefaultTTL(p.stateTTL))
	}
	return p
}

// Use registers a strategy under the provider's name.
// Registering the same name again replaces the previous strategy.
func (p *Passport) Use(provider oauth.Provider, verify VerifyFunc) {
	p.strategies[provider.Name()] = &Strategy{
		Provider: provider,
		Verify:   verify,
	}
}

// Strategy returns the strategy registered under name,
// or ErrUnknownStrategy if none is registered.
func (p *Passport) Strategy(name string) (*Strategy, error) {
	s, ok := p.strategies[name]
	if !ok {
		return nil, ErrUnknownStrategy
	}
	return s, nil
}

// Close releases the state store.
func (p *Passport) Close() error {
	return p.states.Close()
}
