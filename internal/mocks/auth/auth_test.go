package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
)

func TestMockCredentialVerifierDefaults(t *testing.T) {
	v := NewMockCredentialVerifier()

	claims, err := v.Verify(context.Background(), v.AcceptEmail, v.AcceptPassword)
	require.NoError(t, err)
	assert.True(t, claims.LoggedIn())

	_, err = v.Verify(context.Background(), v.AcceptEmail, "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidCredentials, apperrors.CodeOf(err))
	assert.Equal(t, 2, v.Calls)
}

func TestMemorySessionCodecRoundTrip(t *testing.T) {
	codec := NewMemorySessionCodec()

	claims := domainauth.Claims{UserID: "u-1", AccessToken: "tok"}
	container, err := codec.Encode(claims)
	require.NoError(t, err)

	decoded, err := codec.Decode(container)
	require.NoError(t, err)
	assert.Equal(t, claims, *decoded)

	_, err = codec.Decode("unknown")
	require.Error(t, err)
}

func TestMemorySessionCodecExpireAll(t *testing.T) {
	codec := NewMemorySessionCodec()
	container, err := codec.Encode(domainauth.Claims{UserID: "u-1", AccessToken: "tok"})
	require.NoError(t, err)

	codec.ExpireAll = true
	decoded, err := codec.Decode(container)
	require.NoError(t, err)
	assert.True(t, decoded.Expired())
	assert.Empty(t, decoded.AccessToken)
}
