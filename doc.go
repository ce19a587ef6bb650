// Package passport dispatches delegated-authentication attempts to named
// OAuth2 strategies.
//
// A strategy couples an OAuth provider (see pkg/oauth) with an
// application-supplied verify callback. Passport owns the flow around the
// strategy: CSRF state handling, the login redirect, the callback exchange,
// the profile fetch, and routing the verified user (or the failure) to
// application handlers.
//
// # Usage
//
//	provider := oauth.NewInstagramProvider(oauth.InstagramConfig{
//		ClientID:     os.Getenv("INSTAGRAM_OAUTH_CLIENT_ID"),
//		ClientSecret: os.Getenv("INSTAGRAM_OAUTH_CLIENT_SECRET"),
//		RedirectURL:  "https://example.com/auth/instagram/callback",
//	})
//
//	p := passport.New(
//		passport.WithLogger(log),
//		passport.WithSuccessHandler(func(w http.ResponseWriter, r *http.Request, user any) {
//			// establish a session and redirect
//		}),
//	)
//	defer p.Close()
//
//	p.Use(provider, func(ctx context.Context, tokens passport.Tokens, profile *oauth.Profile) (any, error) {
//		return users.FindOrCreate(ctx, profile.Provider, profile.ID)
//	})
//
//	r := chi.NewRouter()
//	r.Mount("/auth", p.Routes())
//
// GET /auth/instagram/login starts the flow; the provider redirects back to
// GET /auth/instagram/callback, which completes it.
//
// # State handling
//
// Each login attempt mints a random one-time token, stores it with a TTL
// (pkg/state), and mirrors it in an HttpOnly cookie. The callback must
// present the same token in both the state query parameter and the cookie,
// and the token must still be consumable; otherwise the attempt fails with
// ErrStateMismatch. Multi-instance deployments should plug in the
// Redis-backed store via WithStateStore.
//
// # Verification
//
// The verify callback receives the provider tokens and the canonical
// profile and decides the application-level outcome. It may return an error
// (the attempt fails with that error) or a nil user (the attempt fails with
// ErrVerifyDenied). Passport never interprets the user value; it is passed
// to the success handler as-is.
package passport
