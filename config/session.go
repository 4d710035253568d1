package config

import "time"

// Session lifetime guardrails.
const (
	defaultSessionTTL   = 24 * time.Hour
	defaultUserCacheTTL = 30 * time.Minute
	minSessionTTL       = time.Minute
	// RevalidateGrace bounds how long a request waits for an in-flight
	// session check before rendering the loading placeholder.
	defaultRevalidateGrace = 2 * time.Second
)

// SessionConfig contains session and user-cache lifetime configuration.
type SessionConfig struct {
	// TTL is how long a browser session lives without re-authentication.
	TTL time.Duration `env:"TTL" envDefault:"24h"`

	// UserCacheTTL is the lifetime of the cached user record consulted
	// by the profile load chain before hitting the network.
	UserCacheTTL time.Duration `env:"USER_CACHE_TTL" envDefault:"30m"`

	// RevalidateGrace is how long a request waits on a shared upstream
	// session check before falling back to the loading placeholder.
	RevalidateGrace time.Duration `env:"REVALIDATE_GRACE" envDefault:"2s"`
}

// Sanitize applies guardrails to session configuration values.
func (s *SessionConfig) Sanitize() {
	if s.TTL < minSessionTTL {
		s.TTL = defaultSessionTTL
	}
	if s.UserCacheTTL <= 0 {
		s.UserCacheTTL = defaultUserCacheTTL
	}
	if s.RevalidateGrace <= 0 {
		s.RevalidateGrace = defaultRevalidateGrace
	}
}
