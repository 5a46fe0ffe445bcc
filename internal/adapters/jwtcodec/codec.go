// Package jwtcodec implements ports.SessionCodec on HS256-signed JWTs. The
// signing secret is process-wide and injected once at construction; rotating
// it requires a restart and invalidates every outstanding container, which is
// treated as a forced global logout.
package jwtcodec

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// Config groups the codec's construction parameters.
type Config struct {
	// Secret is the HMAC signing secret. Required.
	Secret string

	// MaxAge is the absolute session lifetime. Defaults to
	// domainauth.SessionMaxAge when zero.
	MaxAge time.Duration

	// Now overrides the clock, for tests. Defaults to time.Now.
	Now func() time.Time
}

// Codec signs and verifies session containers.
type Codec struct {
	secret []byte
	maxAge time.Duration
	now    func() time.Time
}

var _ ports.SessionCodec = (*Codec)(nil)

// New constructs a Codec.
func New(cfg Config) (*Codec, error) {
	if cfg.Secret == "" {
		return nil, errors.New("jwtcodec: signing secret is required")
	}
	maxAge := cfg.MaxAge
	if maxAge <= 0 {
		maxAge = domainauth.SessionMaxAge
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Codec{secret: []byte(cfg.Secret), maxAge: maxAge, now: now}, nil
}

// containerClaims is the wire shape of the signed container: the domain claim
// set plus the registered JWT fields. Expiry is computed from the claim set's
// own IssuedAt against the fixed maximum age, not from an exp claim.
type containerClaims struct {
	domainauth.Claims
	jwt.RegisteredClaims
}

// Encode signs the claim set into a compact JWS container. A claim set from a
// fresh login fully replaces whatever container preceded it; two issued-at
// epochs never mix in one container.
func (c *Codec) Encode(claims domainauth.Claims) (string, error) {
	wrapped := containerClaims{
		Claims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  claims.UserID,
			IssuedAt: jwt.NewNumericDate(claims.IssuedTime()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, wrapped)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrCodeInternal, "sign session container")
	}
	return signed, nil
}

// Decode verifies the container and returns its claim set. A tampered,
// wrongly-signed, or malformed container yields an error and nil claims. The
// expiry check runs on every decode, so callers never see an unexpired-looking
// container past its age limit.
func (c *Codec) Decode(container string) (*domainauth.Claims, error) {
	if container == "" {
		return nil, apperrors.Unauthorized("missing session container")
	}

	var wrapped containerClaims
	_, err := jwt.ParseWithClaims(container, &wrapped, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeUnauthorized, "invalid session container")
	}

	claims := wrapped.Claims
	c.enforceExpiry(&claims)
	return &claims, nil
}

func (c *Codec) keyFunc(_ *jwt.Token) (any, error) {
	return c.secret, nil
}

// enforceExpiry transitions the claim set to the terminal Expired state when
// its age, measured from the original issuance, strictly exceeds the maximum.
// The bearer token is cleared; profile claims stay for display only. A claim
// set with no issuance timestamp is treated as expired.
func (c *Codec) enforceExpiry(claims *domainauth.Claims) {
	if claims.Expired() {
		return
	}
	age := c.now().UnixMilli() - claims.IssuedAt
	if claims.IssuedAt == 0 || age > c.maxAge.Milliseconds() {
		claims.AccessToken = ""
		claims.Error = domainauth.TokenExpired
	}
}
