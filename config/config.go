package config

import (
	"os"
	"strings"
)

// AppConfig is the main application configuration struct that composes
// domain-specific configuration from separate files.
//
// Configuration is loaded from environment variables using the
// github.com/caarlos0/env library. See individual domain config files for
// details on available environment variables:
//   - auth.go: Session and signing configuration
//   - http.go: HTTP server configuration
//   - upstream.go: Upstream commerce API configuration
type AppConfig struct {
	// IsDev controls development mode behavior: cookie names lose their
	// security prefixes and the Secure flag is dropped so sessions work on
	// plain http://localhost. Set DEV=true or NODE_ENV=development.
	IsDev bool `env:"DEV" envDefault:"false"`

	// Session and signing configuration
	Auth AuthConfig

	// HTTP server configuration
	HTTP HTTPConfig

	// Upstream commerce API configuration
	Upstream UpstreamConfig `envPrefix:"API_"`
}

// Sanitize applies guardrails to configuration values loaded from env.
// This should be called after loading configuration from environment variables.
func (c *AppConfig) Sanitize() {
	c.Auth.Sanitize()
	c.HTTP.Sanitize()
	c.Upstream.Sanitize()
	c.detectDevMode()
}

// detectDevMode checks both DEV and NODE_ENV environment variables.
// NODE_ENV is checked as a fallback since the deployed frontend tooling
// sets it, and the cookie name contract keys off the same signal.
func (c *AppConfig) detectDevMode() {
	if !c.IsDev {
		nodeEnv := strings.ToLower(os.Getenv("NODE_ENV"))
		c.IsDev = nodeEnv == "development" || nodeEnv == "dev"
	}
}

// IsProduction reports whether the process is running outside development
// mode. Production turns on secure cookie flags and prefixed cookie names.
func (c *AppConfig) IsProduction() bool { return !c.IsDev }
