package bootstrap

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/craftora/admin-api/config"
	httpx "github.com/craftora/admin-api/internal/http"
)

// HTTPServerConfig contains configuration for HTTP server.
type HTTPServerConfig struct {
	Config   *config.AppConfig
	Services *ServiceContainer
	Logger   *slog.Logger
}

// StartHTTPServer creates and starts the HTTP server.
// Returns the server instance for graceful shutdown.
func StartHTTPServer(cfg *HTTPServerConfig) *http.Server {
	if cfg == nil || cfg.Services == nil {
		return nil
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	appCfg := cfg.Config
	if appCfg == nil {
		appCfg = &config.AppConfig{}
	}

	services := httpx.RouterServices{
		Auth:       cfg.Services.Auth,
		Accounts:   cfg.Services.Upstream,
		Products:   cfg.Services.Upstream,
		Categories: cfg.Services.Upstream,
		Customers:  cfg.Services.Upstream,
		Orders:     cfg.Services.Upstream,
		Reviews:    cfg.Services.Upstream,
		SubUsers:   cfg.Services.Upstream,
		Portfolio:  cfg.Services.Upstream,
		Dashboard:  cfg.Services.Upstream,
		Analytics:  cfg.Services.Analytics,
		Cookies: httpx.CookieConfig{
			Production:    appCfg.IsProduction(),
			Domain:        appCfg.HTTP.CookieDomain,
			SessionMaxAge: appCfg.Auth.SessionMaxAge,
		},
		Logger: logger,
	}

	handler := buildHTTPHandler(logger, services)
	return startServer(logger, handler, appCfg.HTTP.Addr)
}

// buildHTTPHandler layers the router with the outer middleware.
// Order: Recover -> RequestID -> Logging -> Router.
func buildHTTPHandler(logger *slog.Logger, services httpx.RouterServices) http.Handler {
	h := httpx.NewRouter(services)
	h = httpx.Logging(logger)(h)
	h = httpx.RequestID()(h)
	h = httpx.Recover(logger)(h)
	return h
}

func startServer(logger *slog.Logger, handler http.Handler, addr string) *http.Server {
	// Guard against empty addr to avoid listening on Go default
	if addr == "" {
		addr = ":8080"
	}

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("starting HTTP server", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server failed", "error", err)
		}
	}()

	return server
}

// ShutdownHTTPServer gracefully shuts down the HTTP server.
func ShutdownHTTPServer(ctx context.Context, server *http.Server, logger *slog.Logger) error {
	if server == nil {
		return nil
	}

	if logger != nil {
		logger.Info("shutting down HTTP server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if logger != nil {
		logger.Info("HTTP server stopped")
	}

	return nil
}
