package upstream

import (
	"context"
	"net/http"

	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// Account endpoints run before a session exists, so none of them attach a
// bearer token.

// Register creates a new main account.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) error {
	if in.Email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	if in.Password == "" {
		return apperrors.ValidationField("password", "password is required")
	}
	if in.Phone == "" {
		return apperrors.ValidationField("phone", "phone is required")
	}
	if in.BusinessName == "" {
		return apperrors.ValidationField("businessName", "businessName is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/user/register", body: in, skipAuth: true}, nil)
	return err
}

// RequestPasswordReset starts the forgot-password flow for an email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	if email == "" {
		return apperrors.ValidationField("email", "email is required")
	}
	body := map[string]string{"email": email}
	_, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/user/forget-password", body: body, skipAuth: true}, nil)
	return err
}

// VerifyPasswordResetOTP checks the one-time code sent to the user.
func (c *Client) VerifyPasswordResetOTP(ctx context.Context, email, otp string) error {
	if email == "" || otp == "" {
		return apperrors.Validation("email and otp are required")
	}
	body := map[string]string{"email": email, "otp": otp}
	_, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/user/forget-password/verify", body: body, skipAuth: true}, nil)
	return err
}

// RecoverPassword sets the new password after OTP verification.
func (c *Client) RecoverPassword(ctx context.Context, email, newPassword string) error {
	if email == "" || newPassword == "" {
		return apperrors.Validation("email and new password are required")
	}
	body := map[string]string{"email": email, "newPassword": newPassword}
	_, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/user/forget-password/recovery", body: body, skipAuth: true}, nil)
	return err
}
