// Package ports defines interfaces (hexagonal ports) for the gateway's
// behavior. Implementations live in internal/adapters; orchestration in
// internal/service.
package ports

import (
	"context"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
)

// CredentialVerifier authenticates an email/password pair against the
// upstream credential endpoint and returns a fresh claim set on success.
// Verification failures are never retried automatically.
type CredentialVerifier interface {
	Verify(ctx context.Context, email, password string) (domainauth.Claims, error)
}

// SessionCodec serializes a claim set into a signed, tamper-evident container
// and reverses that process on each request.
type SessionCodec interface {
	// Encode signs the claim set into an opaque container string.
	Encode(claims domainauth.Claims) (string, error)

	// Decode verifies and unpacks a container. A tampered or wrongly-signed
	// container yields an error and no claims, never partial claims. Decode
	// applies the expiry check: a container older than the maximum age comes
	// back with AccessToken cleared and the TokenExpired error tag set.
	Decode(container string) (*domainauth.Claims, error)
}

// AccountGateway covers the unauthenticated account endpoints: registration
// and the forgot-password OTP flow.
type AccountGateway interface {
	Register(ctx context.Context, in RegisterInput) error
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyPasswordResetOTP(ctx context.Context, email, otp string) error
	RecoverPassword(ctx context.Context, email, newPassword string) error
}

// RegisterInput carries the sign-up form fields.
type RegisterInput struct {
	Email        string `json:"email"`
	Password     string `json:"password"`
	Phone        string `json:"phone"`
	BusinessName string `json:"businessName"`
}
