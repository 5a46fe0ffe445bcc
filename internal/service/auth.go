package service

import (
	"context"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Verifier ports.CredentialVerifier
	Codec    ports.SessionCodec
}

// AuthService orchestrates the session lifecycle: it verifies credentials
// against the upstream API, seals the resulting claim set into a signed
// container, and re-derives claims from a container on each request. It holds
// no per-session state; the container is the session.
type AuthService struct {
	verifier ports.CredentialVerifier
	codec    ports.SessionCodec
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		verifier: opts.Verifier,
		codec:    opts.Codec,
	}
}

// LoginResult contains the outcome of a successful login.
type LoginResult struct {
	Claims    domainauth.Claims
	Container string
}

// Login verifies the credentials and returns a freshly issued claim set with
// its signed container. Verification failures come back as AppError values
// and are never retried here.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	if password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}

	claims, err := s.verifier.Verify(ctx, email, password)
	if err != nil {
		return nil, err
	}

	container, err := s.codec.Encode(claims)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Claims: claims, Container: container}, nil
}

// SessionFromContainer decodes a session container into its claim set. It
// returns nil for a missing, tampered, or wrongly-signed container. An aged
// out container comes back non-nil with the TokenExpired tag set, so the
// caller can show who the session belonged to while treating it as logged
// out.
func (s *AuthService) SessionFromContainer(container string) *domainauth.Claims {
	if container == "" {
		return nil
	}
	claims, err := s.codec.Decode(container)
	if err != nil {
		return nil
	}
	return claims
}
