package jwtcodec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
)

func testClaims(issuedAt time.Time) domainauth.Claims {
	return domainauth.Claims{
		UserID:        "user-1",
		Name:          "Admin User",
		Email:         "admin@example.com",
		Role:          domainauth.RoleAdmin,
		Provider:      "credentials",
		EmailVerified: true,
		AccessToken:   "tok-abc",
		IssuedAt:      issuedAt.UnixMilli(),
	}
}

func TestNewRequiresSecret(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec, err := New(Config{Secret: "test-secret", Now: func() time.Time { return now }})
	require.NoError(t, err)

	original := testClaims(now)
	container, err := codec.Encode(original)
	require.NoError(t, err)
	require.NotEmpty(t, container)

	decoded, err := codec.Decode(container)
	require.NoError(t, err)
	assert.Equal(t, original, *decoded)
	assert.True(t, decoded.LoggedIn())
	assert.False(t, decoded.Expired())
}

func TestDecodeExpiryBoundary(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	maxAge := 30 * 24 * time.Hour

	tests := []struct {
		name    string
		now     time.Time
		expired bool
	}{
		{"fresh", issued.Add(time.Minute), false},
		{"exactly at max age", issued.Add(maxAge), false},
		{"one millisecond past", issued.Add(maxAge + time.Millisecond), true},
		{"well past", issued.Add(maxAge + 24*time.Hour), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			codec, err := New(Config{
				Secret: "test-secret",
				MaxAge: maxAge,
				Now:    func() time.Time { return now },
			})
			require.NoError(t, err)

			container, err := codec.Encode(testClaims(issued))
			require.NoError(t, err)

			decoded, err := codec.Decode(container)
			require.NoError(t, err)

			if tt.expired {
				assert.True(t, decoded.Expired())
				assert.Empty(t, decoded.AccessToken, "expired claims must not keep the bearer token")
				assert.False(t, decoded.LoggedIn())
				// Profile stays for display.
				assert.Equal(t, "Admin User", decoded.Name)
				assert.Equal(t, "admin@example.com", decoded.Email)
			} else {
				assert.False(t, decoded.Expired())
				assert.True(t, decoded.LoggedIn())
				assert.Equal(t, "tok-abc", decoded.AccessToken)
			}
		})
	}
}

func TestDecodeMissingIssuedAtIsExpired(t *testing.T) {
	codec, err := New(Config{Secret: "test-secret"})
	require.NoError(t, err)

	claims := testClaims(time.Now())
	claims.IssuedAt = 0
	container, err := codec.Encode(claims)
	require.NoError(t, err)

	decoded, err := codec.Decode(container)
	require.NoError(t, err)
	assert.True(t, decoded.Expired())
	assert.Empty(t, decoded.AccessToken)
}

func TestDecodeRejectsTamperedContainer(t *testing.T) {
	codec, err := New(Config{Secret: "test-secret"})
	require.NoError(t, err)

	container, err := codec.Encode(testClaims(time.Now()))
	require.NoError(t, err)

	// Flip one byte in the payload segment.
	raw := []byte(container)
	mid := len(raw) / 2
	if raw[mid] == 'A' {
		raw[mid] = 'B'
	} else {
		raw[mid] = 'A'
	}

	decoded, err := codec.Decode(string(raw))
	require.Error(t, err)
	assert.Nil(t, decoded)
	assert.Equal(t, apperrors.ErrCodeUnauthorized, apperrors.CodeOf(err))
}

func TestDecodeRejectsWrongSecret(t *testing.T) {
	signer, err := New(Config{Secret: "secret-one"})
	require.NoError(t, err)
	verifier, err := New(Config{Secret: "secret-two"})
	require.NoError(t, err)

	container, err := signer.Encode(testClaims(time.Now()))
	require.NoError(t, err)

	decoded, err := verifier.Decode(container)
	require.Error(t, err)
	assert.Nil(t, decoded)
}

func TestDecodeRejectsEmptyAndGarbage(t *testing.T) {
	codec, err := New(Config{Secret: "test-secret"})
	require.NoError(t, err)

	for _, container := range []string{"", "not-a-jwt", "a.b.c"} {
		decoded, derr := codec.Decode(container)
		require.Error(t, derr, "container %q", container)
		assert.Nil(t, decoded)
	}
}

func TestDecodeKeepsExistingExpiredTag(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	codec, err := New(Config{Secret: "test-secret", Now: func() time.Time { return now }})
	require.NoError(t, err)

	claims := testClaims(now)
	claims.AccessToken = ""
	claims.Error = domainauth.TokenExpired
	container, err := codec.Encode(claims)
	require.NoError(t, err)

	decoded, err := codec.Decode(container)
	require.NoError(t, err)
	assert.True(t, decoded.Expired(), "the expired state is terminal")
	assert.False(t, decoded.LoggedIn())
}
