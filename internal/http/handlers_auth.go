package httpx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
	"github.com/craftora/admin-api/internal/service"
)

// AuthSessions defines the session operations the auth handlers need.
type AuthSessions interface {
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
	SessionFromContainer(container string) *domainauth.Claims
}

// AuthHandlers provides HTTP handlers for the login, logout, status, and
// account recovery endpoints.
type AuthHandlers struct {
	Svc      AuthSessions
	Accounts ports.AccountGateway
	Cookies  CookieConfig
	Logger   *slog.Logger
}

func (h *AuthHandlers) logger() *slog.Logger {
	if h != nil && h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}

// sessionUser is the profile shape returned to the admin UI. It mirrors the
// upstream user object minus the internal claim fields.
type sessionUser struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          domainauth.Role `json:"role"`
	Provider      string          `json:"provider,omitempty"`
	Avatar        string          `json:"avatar,omitempty"`
	EmailVerified bool            `json:"emailVerified"`
}

func userFromClaims(c *domainauth.Claims) sessionUser {
	return sessionUser{
		ID:            c.UserID,
		Name:          c.Name,
		Email:         c.Email,
		Role:          c.Role,
		Provider:      c.Provider,
		Avatar:        c.Avatar,
		EmailVerified: c.EmailVerified,
	}
}

// Login verifies credentials against the upstream API and issues the
// session cookie.
// POST /auth/login.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	result, err := h.Svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.logger().WarnContext(r.Context(), "login failed",
			slog.String("email", req.Email),
			slog.String("code", string(apperrors.CodeOf(err))))
		WriteAppError(w, err)
		return
	}

	h.Cookies.SetSessionCookie(w, result.Container)
	WriteData(w, http.StatusOK, map[string]any{
		"user": userFromClaims(&result.Claims),
	})
}

// Logout clears the session cookie. There is no server-side session to
// revoke, so logging out twice is as good as once.
// POST /auth/logout.
func (h *AuthHandlers) Logout(w http.ResponseWriter, _ *http.Request) {
	h.Cookies.ClearSessionCookie(w)
	h.Cookies.ClearCallbackCookie(w)
	h.Cookies.ClearStateCookie(w)
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "logged out"})
}

// Status reports the current authentication state. An aged-out session still
// returns the profile snapshot so the UI can show who needs to sign back in.
// GET /auth/status.
func (h *AuthHandlers) Status(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(h.Cookies.SessionTokenName())
	if err != nil {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	claims := h.Svc.SessionFromContainer(cookie.Value)
	if claims == nil {
		// Tampered or wrongly-signed container. Drop it.
		h.Cookies.ClearSessionCookie(w)
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	if claims.Expired() {
		WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": false,
			"error":         domainauth.TokenExpired,
			"user":          userFromClaims(claims),
		})
		return
	}
	if !claims.LoggedIn() {
		WriteJSON(w, http.StatusOK, map[string]any{"authenticated": false})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          userFromClaims(claims),
		"expiresAt":     claims.IssuedTime().Add(h.Cookies.sessionMaxAge()).UTC().Format(time.RFC3339),
	})
}

// CSRF returns the double-submit token for the current browser so the UI can
// echo it back in the X-Csrf-Token header.
// GET /auth/csrf.
func (h *AuthHandlers) CSRF(w http.ResponseWriter, r *http.Request) {
	WriteData(w, http.StatusOK, map[string]string{
		"csrfToken": CSRFTokenFromRequest(r),
	})
}

// Signup relays a registration to the upstream API. No session is issued;
// the new account signs in through the normal login flow.
// POST /auth/signup.
func (h *AuthHandlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req ports.RegisterInput
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		WriteAppError(w, apperrors.ValidationField("email", "email is required"))
		return
	}
	if req.Password == "" {
		WriteAppError(w, apperrors.ValidationField("password", "password is required"))
		return
	}

	if err := h.Accounts.Register(r.Context(), req); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, Envelope{Success: true, Message: "account created"})
}

// ForgotPassword starts the password reset flow by asking the upstream API
// to email an OTP.
// POST /auth/forgot-password.
func (h *AuthHandlers) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		WriteAppError(w, apperrors.ValidationField("email", "email is required"))
		return
	}

	if err := h.Accounts.RequestPasswordReset(r.Context(), req.Email); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "reset code sent"})
}

// VerifyResetOTP checks the emailed OTP before the password change step.
// POST /auth/forgot-password/verify.
func (h *AuthHandlers) VerifyResetOTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.OTP == "" {
		WriteAppError(w, apperrors.Validation("email and otp are required"))
		return
	}

	if err := h.Accounts.VerifyPasswordResetOTP(r.Context(), req.Email, req.OTP); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "code verified"})
}

// RecoverPassword sets the new password after a verified OTP.
// POST /auth/forgot-password/recover.
func (h *AuthHandlers) RecoverPassword(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email       string `json:"email"`
		NewPassword string `json:"newPassword"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" || req.NewPassword == "" {
		WriteAppError(w, apperrors.Validation("email and newPassword are required"))
		return
	}

	if err := h.Accounts.RecoverPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "password updated"})
}
