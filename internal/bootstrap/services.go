package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/craftora/admin-api/config"
	"github.com/craftora/admin-api/internal/adapters/jwtcodec"
	"github.com/craftora/admin-api/internal/adapters/upstream"
	"github.com/craftora/admin-api/internal/service"
)

// ServiceContainer holds the constructed services and adapters. The upstream
// client doubles as every resource gateway; nothing here owns persistence.
type ServiceContainer struct {
	Upstream  *upstream.Client
	Auth      *service.AuthService
	Analytics *service.AnalyticsService
}

// BuildServices wires the upstream client, the session codec, and the
// services on top of them.
func BuildServices(cfg *config.AppConfig, logger *slog.Logger) (*ServiceContainer, error) {
	client, err := upstream.New(upstream.Config{
		BaseURL: cfg.Upstream.URL,
		Timeout: cfg.Upstream.Timeout,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("build upstream client: %w", err)
	}

	codec, err := jwtcodec.New(jwtcodec.Config{
		Secret: cfg.Auth.Secret,
		MaxAge: cfg.Auth.SessionMaxAge,
	})
	if err != nil {
		return nil, fmt.Errorf("build session codec: %w", err)
	}

	auth := service.NewAuthService(service.AuthServiceOptions{
		Verifier: upstream.NewVerifier(client),
		Codec:    codec,
	})

	analytics := service.NewAnalyticsService(service.AnalyticsServiceOptions{
		Dashboard: client,
		Orders:    client,
	})

	return &ServiceContainer{
		Upstream:  client,
		Auth:      auth,
		Analytics: analytics,
	}, nil
}
