package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
)

func newTestVerifier(t *testing.T, handler http.HandlerFunc) *Verifier {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return NewVerifier(client)
}

func TestVerifySuccess(t *testing.T) {
	var gotBody map[string]string
	v := newTestVerifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "login must not carry a bearer token")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user": map[string]any{
				"_id":             "u-1",
				"name":            "Admin User",
				"email":           "admin@example.com",
				"role":            "admin",
				"provider":        "credentials",
				"avatar":          "https://cdn.example.com/a.png",
				"isEmailVerified": true,
			},
			"accessToken": "tok-abc",
		})
	})

	before := time.Now().UnixMilli()
	claims, err := v.Verify(context.Background(), "admin@example.com", "correct-horse")
	after := time.Now().UnixMilli()
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", gotBody["email"])
	assert.Equal(t, "correct-horse", gotBody["password"])

	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "Admin User", claims.Name)
	assert.Equal(t, domainauth.RoleAdmin, claims.Role)
	assert.Equal(t, "tok-abc", claims.AccessToken)
	assert.True(t, claims.EmailVerified)
	assert.True(t, claims.LoggedIn())
	assert.GreaterOrEqual(t, claims.IssuedAt, before)
	assert.LessOrEqual(t, claims.IssuedAt, after)
}

func TestVerifyRequiresEmailAndPassword(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"a@b.com", ""},
		{"", ""},
	} {
		_, err := v.Verify(context.Background(), tc.email, tc.password)
		require.Error(t, err)
		assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
	}
}

func TestVerifyRejectedCredentials(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"message": "Invalid email or password",
		})
	})

	_, err := v.Verify(context.Background(), "admin@example.com", "wrong")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeInvalidCredentials, apperrors.CodeOf(err))
	assert.Equal(t, "Invalid email or password", err.Error())
}

func TestVerifyNonJSONResponse(t *testing.T) {
	v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>502 Bad Gateway</html>"))
	})

	_, err := v.Verify(context.Background(), "admin@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeServerUnavailable, apperrors.CodeOf(err))
}

func TestVerifyNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	v := NewVerifier(client)

	_, err = v.Verify(context.Background(), "admin@example.com", "pw")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeServerUnavailable, apperrors.CodeOf(err))
}

func TestVerifyIncompleteResponse(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing token", map[string]any{
			"success": true,
			"user":    map[string]any{"_id": "u-1"},
		}},
		{"missing user", map[string]any{
			"success":     true,
			"accessToken": "tok-abc",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newTestVerifier(t, func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(tt.body)
			})

			_, err := v.Verify(context.Background(), "admin@example.com", "pw")
			require.Error(t, err)
			assert.Equal(t, apperrors.ErrCodeIncompleteResponse, apperrors.CodeOf(err))
		})
	}
}
