package config

import "time"

// UpstreamConfig contains configuration for the external commerce API that
// owns persistence, validation, and business rules.
type UpstreamConfig struct {
	// URL is the upstream API base URL.
	URL string `env:"URL" envDefault:"http://localhost:5000"`

	// Timeout bounds each upstream round trip.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// Sanitize applies guardrails to upstream configuration values.
func (u *UpstreamConfig) Sanitize() {
	if u.Timeout <= 0 {
		u.Timeout = 15 * time.Second
	}
}
