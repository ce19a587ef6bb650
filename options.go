package passport

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/passport/pkg/state"
)

// Option configures a Passport.
type Option func(*Passport)

// WithLogger sets the logger for authentication flow events.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(p *Passport) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithStateStore sets the store for one-time login state tokens.
// Defaults to an in-memory store; use a Redis-backed store when running
// multiple instances behind a load balancer.
func WithStateStore(s state.Store) Option {
	return func(p *Passport) {
		if s != nil {
			p.states = s
		}
	}
}

// WithStateTTL sets how long a login attempt may take between the redirect
// to the provider and the callback. Defaults to 5 minutes.
func WithStateTTL(d time.Duration) Option {
	return func(p *Passport) {
		if d > 0 {
			p.stateTTL = d
		}
	}
}

// WithStateCookieName sets the name of the state cookie.
// Defaults to "__passport_state".
func WithStateCookieName(name string) Option {
	return func(p *Passport) {
		if name != "" {
			p.cookieName = name
		}
	}
}

// WithInsecureCookies disables the Secure flag on the state cookie.
// For local development over plain HTTP only.
func WithInsecureCookies() Option {
	return func(p *Passport) {
		p.secure = false
	}
}

// WithSuccessHandler sets the handler invoked with the verified user.
// The default writes the user as JSON with status 200.
func WithSuccessHandler(h SuccessHandler) Option {
	return func(p *Passport) {
		if h != nil {
			p.onSuccess = h
		}
	}
}

// WithErrorHandler sets the handler invoked when an attempt fails.
// The default maps known errors to plain-text HTTP status responses.
func WithErrorHandler(h ErrorHandler) Option {
	return func(p *Passport) {
		if h != nil {
			p.onError = h
		}
	}
}
