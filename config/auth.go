package config

import (
	"time"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
)

// AuthConfig groups session signing and lifetime configuration. All values
// are fixed at process start; there is no runtime reconfiguration path.
// Rotating the secret requires a restart and logs every session out.
type AuthConfig struct {
	// Secret signs the session container. The default exists so local
	// development works out of the box; override it everywhere else.
	Secret string `env:"AUTH_SECRET" envDefault:"dashboard-secret-change-in-production"`

	// SessionMaxAge is the absolute session lifetime measured from login.
	// There is no sliding renewal.
	SessionMaxAge time.Duration `env:"SESSION_MAX_AGE" envDefault:"720h"`
}

// Sanitize applies guardrails to auth configuration values.
func (a *AuthConfig) Sanitize() {
	if a.SessionMaxAge <= 0 {
		a.SessionMaxAge = domainauth.SessionMaxAge
	}
}
