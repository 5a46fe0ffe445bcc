package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
)

type requestIDKey struct{}

// RequestID returns a middleware that tags each request with an identifier.
// An X-Request-Id supplied by a trusted proxy is reused; otherwise a fresh
// UUID is generated. The identifier is echoed on the response so support
// tickets can be matched to server logs.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get("X-Request-Id")
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set("X-Request-Id", id)
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
		})
	}
}

// RequestIDFromContext returns the request identifier set by RequestID, or an
// empty string when the middleware did not run.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// Logging returns a middleware that logs HTTP requests and responses.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			const defaultHTTPStatus = 200
			ww := &respWriter{ResponseWriter: w, status: defaultHTTPStatus}
			next.ServeHTTP(ww, r)
			logger.Info("http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.status),
				slog.Duration("duration", time.Since(start)),
				slog.String("request_id", RequestIDFromContext(r.Context())),
			)
		})
	}
}

type respWriter struct {
	http.ResponseWriter
	status int
}

func (w *respWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// Recover returns a middleware that recovers from panics and logs them.
func Recover(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.Error("panic",
						slog.Any("error", err),
						slog.String("path", r.URL.Path),
						slog.String("method", r.Method),
						slog.String("stack", string(debug.Stack())))
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SessionReader resolves a session container into a claim set.
type SessionReader interface {
	SessionFromContainer(container string) *domainauth.Claims
}

// AuthMiddleware decodes the session cookie and gates protected routes.
type AuthMiddleware struct {
	Sessions SessionReader
	Cookies  CookieConfig
}

// RequireAuth returns a middleware that requires a live session. A missing or
// invalid container yields 401 authentication_required; an aged-out one
// yields 401 token_expired so the UI can prompt a re-login rather than a
// generic sign-in.
func (m *AuthMiddleware) RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims := m.claimsFromRequest(r)
			if claims == nil {
				WriteAppError(w, apperrors.Unauthorized("authentication required"))
				return
			}
			if claims.Expired() {
				WriteAppError(w, apperrors.TokenExpired())
				return
			}
			if !claims.LoggedIn() {
				WriteAppError(w, apperrors.Unauthorized("authentication required"))
				return
			}

			next.ServeHTTP(w, r.WithContext(domainauth.NewContext(r.Context(), claims)))
		})
	}
}

// RequireRole returns a middleware that additionally requires a minimum role.
func (m *AuthMiddleware) RequireRole(required domainauth.Role) func(http.Handler) http.Handler {
	requireAuth := m.RequireAuth()
	return func(next http.Handler) http.Handler {
		return requireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := domainauth.FromContext(r.Context())
			if claims == nil || !claims.Role.AtLeast(required) {
				WriteAppError(w, apperrors.Forbidden("insufficient permissions"))
				return
			}
			next.ServeHTTP(w, r)
		}))
	}
}

// OptionalAuth returns a middleware that adds the claim set to the context
// when a live session exists and continues without one otherwise.
func (m *AuthMiddleware) OptionalAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims := m.claimsFromRequest(r); claims != nil && claims.LoggedIn() {
				r = r.WithContext(domainauth.NewContext(r.Context(), claims))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// claimsFromRequest reads the session cookie and decodes it. Each request
// decodes its own container; no state is shared between requests.
func (m *AuthMiddleware) claimsFromRequest(r *http.Request) *domainauth.Claims {
	cookie, err := r.Cookie(m.Cookies.SessionTokenName())
	if err != nil {
		return nil
	}
	return m.Sessions.SessionFromContainer(cookie.Value)
}
