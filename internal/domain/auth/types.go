// Package auth contains domain-level types for authentication and sessions.
// It is pure and free of framework/adapter concerns.
package auth

import (
	"context"
	"time"
)

// SessionMaxAge is the absolute lifetime of a session, measured from the
// moment the upstream access token was issued. There is no sliding-window
// renewal; the only recovery from an aged-out session is a fresh login.
const SessionMaxAge = 30 * 24 * time.Hour

// TokenExpired is the error tag set on a claim set whose token aged past
// SessionMaxAge. Its presence overrides all other claims for authorization.
const TokenExpired = "TokenExpired"

// Role represents an application's authorization role.
// Keep string form for easy transport in cookies and JSON.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleStaff   Role = "staff"
)

// Level returns the rank of a role in the hierarchy staff < manager < admin.
// Unknown roles rank below staff.
func (r Role) Level() int {
	switch r {
	case RoleAdmin:
		return 3
	case RoleManager:
		return 2
	case RoleStaff:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether the role meets or exceeds the required role.
func (r Role) AtLeast(required Role) bool { return r.Level() >= required.Level() }

// Claims is the decoded session claim set. The profile fields are a snapshot
// taken at login time and are not refreshed until the next login. AccessToken
// is the upstream bearer credential; the claim set is its exclusive owner for
// the lifetime of the signed container.
type Claims struct {
	UserID        string `json:"uid"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          Role   `json:"role"`
	Provider      string `json:"provider,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	EmailVerified bool   `json:"email_verified"`

	// AccessToken is attached as an Authorization header on every
	// authenticated upstream call. Empty means the caller is logged out.
	AccessToken string `json:"access_token,omitempty"`

	// IssuedAt is the login time in milliseconds since the Unix epoch.
	// Set exactly once, never mutated afterwards.
	IssuedAt int64 `json:"issued_at"`

	// Error carries the TokenExpired tag once the session ages out. The
	// profile fields may still be shown to the user, but a claim set with
	// Error set must be treated as logged out by every consumer.
	Error string `json:"error,omitempty"`
}

// LoggedIn reports whether the claim set authorizes upstream calls.
func (c Claims) LoggedIn() bool { return c.AccessToken != "" && c.Error == "" }

// Expired reports whether the expiry enforcer has flagged this claim set.
func (c Claims) Expired() bool { return c.Error == TokenExpired }

// IssuedTime returns IssuedAt as a time.Time.
func (c Claims) IssuedTime() time.Time { return time.UnixMilli(c.IssuedAt) }

type claimsContextKey struct{}

// NewContext returns a context carrying the request's decoded claim set.
func NewContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// FromContext retrieves the claim set stored by NewContext, if any.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*Claims)
	if !ok || claims == nil {
		return nil, false
	}
	return claims, true
}
