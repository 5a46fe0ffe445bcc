package httpx

import (
	"net/http"
	"time"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
)

// Transient auth-flow cookies (CSRF, state) must never outlive the flow they
// protect, even though the session cookie persists for the full session
// lifetime.
const transientCookieMaxAge = 15 * time.Minute

// CookieConfig fixes the cookie name/flag contract for a deployment. The
// production names carry the browser security prefixes the deployed frontend
// already expects; they must be preserved bit-for-bit to interoperate with
// it.
type CookieConfig struct {
	// Production switches on the __Secure-/__Host- name prefixes and the
	// Secure flag. Off in local development so plain http works.
	Production bool

	// Domain scopes the cookies. Empty means the request host. The CSRF
	// cookie ignores this: __Host- prefixed cookies must not set a domain.
	Domain string

	// SessionMaxAge is the session cookie lifetime. Zero means
	// domainauth.SessionMaxAge.
	SessionMaxAge time.Duration
}

// SessionTokenName returns the session container cookie name.
func (c CookieConfig) SessionTokenName() string {
	if c.Production {
		return "__Secure-craftora.session-token"
	}
	return "craftora.session-token"
}

// CallbackURLName returns the post-login redirect cookie name.
func (c CookieConfig) CallbackURLName() string {
	if c.Production {
		return "__Secure-craftora.callback-url"
	}
	return "craftora.callback-url"
}

// CSRFTokenName returns the CSRF cookie name. The production name uses the
// __Host- prefix, which binds the cookie to the exact host with Path=/ and
// no Domain attribute.
func (c CookieConfig) CSRFTokenName() string {
	if c.Production {
		return "__Host-craftora.csrf-token"
	}
	return "craftora.csrf-token"
}

// StateName returns the auth-flow state cookie name.
func (c CookieConfig) StateName() string {
	if c.Production {
		return "__Secure-craftora.state"
	}
	return "craftora.state"
}

func (c CookieConfig) sessionMaxAge() time.Duration {
	if c.SessionMaxAge > 0 {
		return c.SessionMaxAge
	}
	return domainauth.SessionMaxAge
}

// SetSessionCookie writes the signed session container. All four cookies in
// the contract are httpOnly, SameSite=Lax, Path=/; Secure tracks the
// deployment environment.
func (c CookieConfig) SetSessionCookie(w http.ResponseWriter, container string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.SessionTokenName(),
		Value:    container,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(c.sessionMaxAge().Seconds()),
	})
}

// ClearSessionCookie expires the session cookie immediately. Clearing an
// already-cleared cookie is a no-op, which keeps logout idempotent.
func (c CookieConfig) ClearSessionCookie(w http.ResponseWriter) {
	c.clear(w, c.SessionTokenName(), c.Domain)
}

// SetCallbackCookie stores the post-login redirect. Unlike the csrf/state
// cookies it carries no max-age: it lives for the browser session, like the
// frontend expects.
func (c CookieConfig) SetCallbackCookie(w http.ResponseWriter, redirectURI string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.CallbackURLName(),
		Value:    redirectURI,
		Path:     "/",
		Domain:   c.Domain,
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCallbackCookie removes the post-login redirect cookie.
func (c CookieConfig) ClearCallbackCookie(w http.ResponseWriter) {
	c.clear(w, c.CallbackURLName(), c.Domain)
}

// SetCSRFCookie stores the CSRF double-submit token. Host-bound: no Domain.
func (c CookieConfig) SetCSRFCookie(w http.ResponseWriter, token string) {
	c.setTransient(w, c.CSRFTokenName(), token, "")
}

// SetStateCookie stores the auth-flow state nonce.
func (c CookieConfig) SetStateCookie(w http.ResponseWriter, state string) {
	c.setTransient(w, c.StateName(), state, c.Domain)
}

// ClearStateCookie removes the auth-flow state cookie.
func (c CookieConfig) ClearStateCookie(w http.ResponseWriter) {
	c.clear(w, c.StateName(), c.Domain)
}

func (c CookieConfig) setTransient(w http.ResponseWriter, name, value, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(transientCookieMaxAge.Seconds()),
	})
}

// clear expires a cookie by name, mirroring the attributes used when setting
// it to maximize compatibility across browsers during deletion.
func (c CookieConfig) clear(w http.ResponseWriter, name, domain string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   domain,
		HttpOnly: true,
		Secure:   c.Production,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0).UTC(),
	})
}
