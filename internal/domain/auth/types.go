package auth

// Package auth contains domain-level types for sessions and the route
// guard. It is pure and free of framework/adapter concerns.

import (
	"net/http"
	"time"

	"github.com/jobdeck/jobdeck-ui/internal/domain/model"
)

// CredentialCookie is an upstream auth cookie captured at sign-in and
// replayed on subsequent upstream calls. Only the fields needed to
// reconstruct the cookie are persisted.
type CredentialCookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Path   string `json:"path,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// HTTPCookie converts the stored credential back into an http.Cookie.
func (c CredentialCookie) HTTPCookie() *http.Cookie {
	return &http.Cookie{
		Name:   c.Name,
		Value:  c.Value,
		Path:   c.Path,
		Domain: c.Domain,
	}
}

// CaptureCookies converts response cookies into persistable credentials.
func CaptureCookies(cookies []*http.Cookie) []CredentialCookie {
	out := make([]CredentialCookie, 0, len(cookies))
	for _, ck := range cookies {
		if ck == nil || ck.Name == "" {
			continue
		}
		out = append(out, CredentialCookie{
			Name:   ck.Name,
			Value:  ck.Value,
			Path:   ck.Path,
			Domain: ck.Domain,
		})
	}
	return out
}

// Session is the server-side record we persist for a signed-in browser.
// ID is an opaque session identifier carried in this app's own cookie;
// Credentials are the upstream API's cookies, never exposed to the
// browser directly.
type Session struct {
	ID          string             `json:"id"`
	User        *model.User        `json:"user,omitempty"`
	Credentials []CredentialCookie `json:"credentials,omitempty"`
	ExpiresAt   time.Time          `json:"expires_at"`
}

// Role returns the session user's role, or empty when no user snapshot
// has been validated yet.
func (s Session) Role() model.Role {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// State is the auth context the route guard decides on: the resolved
// user (if any) and whether a session check is still in flight.
type State struct {
	User    *model.User
	Loading bool
}
