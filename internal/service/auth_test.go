package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	mockauth "github.com/craftora/admin-api/internal/mocks/auth"
	"github.com/craftora/admin-api/internal/service"
)

func newAuthService() (*service.AuthService, *mockauth.MockCredentialVerifier, *mockauth.MemorySessionCodec) {
	verifier := mockauth.NewMockCredentialVerifier()
	codec := mockauth.NewMemorySessionCodec()
	svc := service.NewAuthService(service.AuthServiceOptions{
		Verifier: verifier,
		Codec:    codec,
	})
	return svc, verifier, codec
}

func TestLoginSuccess(t *testing.T) {
	svc, verifier, _ := newAuthService()

	result, err := svc.Login(context.Background(), verifier.AcceptEmail, verifier.AcceptPassword)
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.NotEmpty(t, result.Container)
	assert.True(t, result.Claims.LoggedIn())
	assert.Equal(t, verifier.Claims.UserID, result.Claims.UserID)
	assert.Equal(t, 1, verifier.Calls)

	// A fresh login round-trips through the codec.
	decoded := svc.SessionFromContainer(result.Container)
	require.NotNil(t, decoded)
	assert.Equal(t, result.Claims, *decoded)
}

func TestLoginValidatesInput(t *testing.T) {
	svc, verifier, _ := newAuthService()

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"a@b.com", ""},
	} {
		_, err := svc.Login(context.Background(), tc.email, tc.password)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
	}
	assert.Zero(t, verifier.Calls, "validation failures must not reach the verifier")
}

func TestLoginRejectedCredentialsAreNotRetried(t *testing.T) {
	svc, verifier, _ := newAuthService()

	_, err := svc.Login(context.Background(), verifier.AcceptEmail, "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidCredentials, apperrors.CodeOf(err))
	assert.Equal(t, 1, verifier.Calls)
}

func TestSessionFromContainerEmpty(t *testing.T) {
	svc, _, _ := newAuthService()
	assert.Nil(t, svc.SessionFromContainer(""))
}

func TestSessionFromContainerUnknown(t *testing.T) {
	svc, _, _ := newAuthService()
	assert.Nil(t, svc.SessionFromContainer("container-404"))
}

func TestSessionFromContainerExpired(t *testing.T) {
	svc, verifier, codec := newAuthService()

	result, err := svc.Login(context.Background(), verifier.AcceptEmail, verifier.AcceptPassword)
	require.NoError(t, err)

	codec.ExpireAll = true
	claims := svc.SessionFromContainer(result.Container)
	require.NotNil(t, claims, "an aged-out session still yields its profile")
	assert.True(t, claims.Expired())
	assert.False(t, claims.LoggedIn())
	assert.Equal(t, domainauth.TokenExpired, claims.Error)
	assert.Equal(t, verifier.Claims.Name, claims.Name)
}
