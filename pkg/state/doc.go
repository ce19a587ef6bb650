// Package state provides one-time token storage for OAuth login state.
//
// The state parameter of an OAuth2 authorization redirect binds the redirect
// to the callback request that follows it, protecting against CSRF and
// authorization-code injection. This package stores those tokens with a TTL
// and enforces single use: Consume validates and removes a token in one
// step, so a replayed callback fails with ErrNotFound.
//
// Two backends are provided:
//
//   - Memory: mutex-protected map with a background janitor for expired
//     tokens. Suitable for single-instance deployments and tests.
//   - Redis: TTL and single-use semantics delegated to Redis (GETDEL),
//     suitable for multi-instance deployments.
//
// # Usage
//
//	s := state.NewMemory()
//	defer s.Close()
//
//	// Before redirecting to the provider:
//	if err := s.Save(ctx, token, 5*time.Minute); err != nil {
//	    // handle error
//	}
//
//	// In the callback handler:
//	if err := s.Consume(ctx, token); err != nil {
//	    // state mismatch: reject the callback
//	}
//
// For multi-instance deployments, share tokens through Redis:
//
//	s := state.NewRedis(client, state.WithPrefix("oauth_state"))
package state
