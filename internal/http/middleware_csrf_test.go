package httpx

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func csrfTestHandler(cookies CookieConfig) http.Handler {
	return CSRFProtection(cookies)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
}

func TestCSRFMintsTokenOnSafeRequest(t *testing.T) {
	handler := csrfTestHandler(CookieConfig{})

	req := httptest.NewRequest(http.MethodGet, "/auth/status", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cookie := findCookie(t, resp, "craftora.csrf-token")
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, 900, cookie.MaxAge, "the CSRF cookie is transient")
}

func TestCSRFRejectsUnsafeWithoutToken(t *testing.T) {
	handler := csrfTestHandler(CookieConfig{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{}"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFAcceptsMatchingHeader(t *testing.T) {
	handler := csrfTestHandler(CookieConfig{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{}"))
	req.AddCookie(&http.Cookie{Name: "craftora.csrf-token", Value: "tok-123"})
	req.Header.Set("X-Csrf-Token", "tok-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCSRFRejectsMismatchedHeader(t *testing.T) {
	handler := csrfTestHandler(CookieConfig{})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{}"))
	req.AddCookie(&http.Cookie{Name: "craftora.csrf-token", Value: "tok-123"})
	req.Header.Set("X-Csrf-Token", "tok-456")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCSRFAcceptsFormField(t *testing.T) {
	handler := csrfTestHandler(CookieConfig{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", strings.NewReader("csrf_token=tok-123"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.AddCookie(&http.Cookie{Name: "craftora.csrf-token", Value: "tok-123"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCSRFDoesNotConsumeMultipartBody(t *testing.T) {
	var gotBody string
	handler := CSRFProtection(CookieConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := make([]byte, 64)
		n, _ := r.Body.Read(raw)
		gotBody = string(raw[:n])
		w.WriteHeader(http.StatusNoContent)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/products", strings.NewReader("--boundary--"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=boundary")
	req.Header.Set("X-Csrf-Token", "tok-123")
	req.AddCookie(&http.Cookie{Name: "craftora.csrf-token", Value: "tok-123"})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "--boundary--", gotBody, "the relayed body must reach the handler untouched")
}

func TestCSRFTokenExposedToHandlers(t *testing.T) {
	var token string
	handler := CSRFProtection(CookieConfig{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token = CSRFTokenFromRequest(r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/auth/csrf", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	t.Cleanup(func() { _ = resp.Body.Close() })

	cookie := findCookie(t, resp, "craftora.csrf-token")
	require.NotNil(t, cookie)
	assert.Equal(t, cookie.Value, token)
}
