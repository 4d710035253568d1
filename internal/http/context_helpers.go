package httpx

import (
	"context"

	domainauth "github.com/jobdeck/jobdeck-ui/internal/domain/auth"
)

// sessionKey is an unexported context key type to avoid collisions across packages.
// Centralized in this file so all handlers/middleware use the same key.
type sessionKey struct{}

// authStateKey carries the resolved auth state (user + loading flag).
type authStateKey struct{}

// SetSessionInContext returns a child context that carries the given session.
// If session is nil, the original ctx is returned unchanged.
func SetSessionInContext(ctx context.Context, session *domainauth.Session) context.Context {
	if session == nil {
		return ctx
	}
	return context.WithValue(ctx, sessionKey{}, session)
}

// GetUserSessionFromContext returns the user session from context and a boolean indicating presence.
func GetUserSessionFromContext(ctx context.Context) (*domainauth.Session, bool) {
	if session, ok := ctx.Value(sessionKey{}).(*domainauth.Session); ok && session != nil {
		return session, true
	}
	return nil, false
}

// GetSessionFromContext retrieves the session from the request context.
// Maintained for convenience; prefer GetUserSessionFromContext when you need presence info.
func GetSessionFromContext(ctx context.Context) *domainauth.Session {
	if s, ok := GetUserSessionFromContext(ctx); ok {
		return s
	}
	return nil
}

// SetAuthStateInContext returns a child context carrying the resolved auth state.
func SetAuthStateInContext(ctx context.Context, state domainauth.State) context.Context {
	return context.WithValue(ctx, authStateKey{}, state)
}

// GetAuthStateFromContext returns the resolved auth state for the request.
// A request that never passed through the session middleware reads as anonymous.
func GetAuthStateFromContext(ctx context.Context) domainauth.State {
	if state, ok := ctx.Value(authStateKey{}).(domainauth.State); ok {
		return state
	}
	return domainauth.State{}
}

// IsAnonymous reports whether the current request context carries no resolved user.
func IsAnonymous(ctx context.Context) bool {
	state := GetAuthStateFromContext(ctx)
	return !state.Loading && state.User == nil
}
