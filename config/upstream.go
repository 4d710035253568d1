package config

import "time"

// Default upstream settings. The base URL matches the job-board API's
// local development listener.
const (
	defaultUpstreamBaseURL = "http://localhost:2622/api/v1.0.0"
	defaultUpstreamTimeout = 15 * time.Second
	maxUpstreamTimeout     = 2 * time.Minute
)

// UpstreamConfig contains configuration for the remote job-board API.
type UpstreamConfig struct {
	// BaseURL is the versioned root of the job-board API.
	BaseURL string `env:"BASE_URL" envDefault:"http://localhost:2622/api/v1.0.0"`

	// Timeout bounds every upstream request.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.BaseURL == "" {
		u.BaseURL = defaultUpstreamBaseURL
	}
	if u.Timeout <= 0 {
		u.Timeout = defaultUpstreamTimeout
	}
	if u.Timeout > maxUpstreamTimeout {
		u.Timeout = maxUpstreamTimeout
	}
}
