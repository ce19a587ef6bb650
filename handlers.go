package passport

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/passport/pkg/oauth"
	"github.com/dmitrymomot/passport/pkg/state"
)

// Routes returns a router exposing the authentication endpoints:
//
//	GET /{provider}/login    — redirect to the provider's authorization page
//	GET /{provider}/callback — complete the authentication attempt
//
// Mount it under the application's auth prefix:
//
//	r.Mount("/auth", p.Routes())
func (p *Passport) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{provider}/login", p.handleLogin)
	r.Get("/{provider}/callback", p.handleCallback)
	return r
}

func (p *Passport) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "provider")

	s, err := p.Strategy(name)
	if err != nil {
		p.onError(w, r, err)
		return
	}

	stateToken := uuid.NewString()
	if err := p.states.Save(ctx, stateToken, p.stateTTL); err != nil {
		p.logger.ErrorContext(ctx, "failed to save login state",
			slog.String("provider", name), slog.String("error", err.Error()))
		p.onError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     p.cookieName,
		Value:    stateToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(p.stateTTL.Seconds()),
	})

	p.logger.DebugContext(ctx, "redirecting to provider", slog.String("provider", name))
	http.Redirect(w, r, s.Provider.AuthCodeURL(stateToken), http.StatusFound)
}

func (p *Passport) handleCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	name := chi.URLParam(r, "provider")

	s, err := p.Strategy(name)
	if err != nil {
		p.onError(w, r, err)
		return
	}

	if err := p.validateState(r); err != nil {
		p.logger.WarnContext(ctx, "state validation failed", slog.String("provider", name))
		p.onError(w, r, err)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		p.onError(w, r, ErrMissingCode)
		return
	}

	token, err := s.Provider.Exchange(ctx, code, "")
	if err != nil {
		p.logger.ErrorContext(ctx, "code exchange failed",
			slog.String("provider", name), slog.String("error", err.Error()))
		p.onError(w, r, err)
		return
	}

	profile, err := s.Provider.FetchProfile(ctx, token)
	if err != nil {
		p.logger.ErrorContext(ctx, "profile fetch failed",
			slog.String("provider", name), slog.String("error", err.Error()))
		p.onError(w, r, err)
		return
	}

	user, err := s.Verify(ctx, Tokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, profile)
	if err != nil {
		p.onError(w, r, err)
		return
	}
	if user == nil {
		p.onError(w, r, ErrVerifyDenied)
		return
	}

	p.logger.InfoContext(ctx, "authentication succeeded",
		slog.String("provider", name), slog.String("user_id", profile.ID))
	p.onSuccess(w, r, user)
}

// validateState requires the state query parameter to match the state cookie
// and to be present in the store. Consume removes the token, so a replayed
// callback fails even with a valid cookie.
func (p *Passport) validateState(r *http.Request) error {
	stateQuery := r.URL.Query().Get("state")
	if stateQuery == "" {
		return ErrStateMismatch
	}

	cookie, err := r.Cookie(p.cookieName)
	if err != nil || cookie.Value != stateQuery {
		return ErrStateMismatch
	}

	if err := p.states.Consume(r.Context(), stateQuery); err != nil {
		if errors.Is(err, state.ErrNotFound) {
			return ErrStateMismatch
		}
		return err
	}
	return nil
}

func defaultSuccessHandler(w http.ResponseWriter, _ *http.Request, user any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	switch {
	case errors.Is(err, ErrUnknownStrategy):
		http.Error(w, "unknown provider", http.StatusNotFound)
	case errors.Is(err, ErrStateMismatch), errors.Is(err, ErrMissingCode):
		http.Error(w, "invalid authentication request", http.StatusBadRequest)
	case errors.Is(err, ErrVerifyDenied):
		http.Error(w, "authentication denied", http.StatusUnauthorized)
	case errors.Is(err, oauth.ErrFetchFailed), errors.Is(err, oauth.ErrDecodeFailed):
		http.Error(w, "authentication failed", http.StatusBadGateway)
	default:
		http.Error(w, "authentication failed", http.StatusInternalServerError)
	}
}
