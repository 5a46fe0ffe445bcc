// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.
package auth

import (
	"context"
	"fmt"
	"time"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialVerifier = (*MockCredentialVerifier)(nil)
	_ ports.SessionCodec       = (*MemorySessionCodec)(nil)
)

// MockCredentialVerifier simulates the upstream login endpoint with a fixed
// accepted credential pair.
type MockCredentialVerifier struct {
	VerifyFunc func(ctx context.Context, email, password string) (domainauth.Claims, error)

	// Deterministic values for predictable testing
	AcceptEmail    string
	AcceptPassword string
	Claims         domainauth.Claims

	// Calls counts Verify invocations.
	Calls int
}

// NewMockCredentialVerifier creates a MockCredentialVerifier with sensible defaults.
func NewMockCredentialVerifier() *MockCredentialVerifier {
	return &MockCredentialVerifier{
		AcceptEmail:    "admin@example.com",
		AcceptPassword: "correct-horse",
		Claims: domainauth.Claims{
			UserID:        "user-1",
			Name:          "Admin User",
			Email:         "admin@example.com",
			Role:          domainauth.RoleAdmin,
			Provider:      "credentials",
			EmailVerified: true,
			AccessToken:   "tok-abc",
			IssuedAt:      time.Now().UnixMilli(),
		},
	}
}

// Verify implements ports.CredentialVerifier.
func (m *MockCredentialVerifier) Verify(ctx context.Context, email, password string) (domainauth.Claims, error) {
	m.Calls++
	if m.VerifyFunc != nil {
		return m.VerifyFunc(ctx, email, password)
	}
	if email != m.AcceptEmail || password != m.AcceptPassword {
		return domainauth.Claims{}, apperrors.InvalidCredentials("")
	}
	return m.Claims, nil
}

// MemorySessionCodec is an in-memory stand-in for the signed container codec.
// Encode hands out opaque tokens; Decode looks them up. Unknown tokens fail
// the way a tampered container would.
type MemorySessionCodec struct {
	// ExpireAll makes every decoded claim set come back aged out, with the
	// access token cleared and the TokenExpired tag set.
	ExpireAll bool

	seq      int
	sessions map[string]domainauth.Claims
}

// NewMemorySessionCodec creates an empty MemorySessionCodec.
func NewMemorySessionCodec() *MemorySessionCodec {
	return &MemorySessionCodec{sessions: make(map[string]domainauth.Claims)}
}

// Encode implements ports.SessionCodec.
func (m *MemorySessionCodec) Encode(claims domainauth.Claims) (string, error) {
	m.seq++
	container := fmt.Sprintf("container-%d", m.seq)
	m.sessions[container] = claims
	return container, nil
}

// Decode implements ports.SessionCodec.
func (m *MemorySessionCodec) Decode(container string) (*domainauth.Claims, error) {
	claims, ok := m.sessions[container]
	if !ok {
		return nil, apperrors.Unauthorized("invalid session container")
	}
	if m.ExpireAll {
		claims.AccessToken = ""
		claims.Error = domainauth.TokenExpired
	}
	return &claims, nil
}
