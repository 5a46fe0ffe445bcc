package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClaimsLoggedIn(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		want   bool
	}{
		{"token and no error", Claims{AccessToken: "tok"}, true},
		{"no token", Claims{}, false},
		{"expired tag overrides token", Claims{AccessToken: "tok", Error: TokenExpired}, false},
		{"any error tag overrides token", Claims{AccessToken: "tok", Error: "SomethingElse"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claims.LoggedIn())
		})
	}
}

func TestClaimsExpired(t *testing.T) {
	assert.False(t, Claims{}.Expired())
	assert.False(t, Claims{Error: "Other"}.Expired())
	assert.True(t, Claims{Error: TokenExpired}.Expired())
}

func TestClaimsIssuedTime(t *testing.T) {
	issued := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	c := Claims{IssuedAt: issued.UnixMilli()}
	assert.True(t, c.IssuedTime().Equal(issued))
}

func TestRoleHierarchy(t *testing.T) {
	assert.True(t, RoleAdmin.AtLeast(RoleAdmin))
	assert.True(t, RoleAdmin.AtLeast(RoleStaff))
	assert.True(t, RoleManager.AtLeast(RoleStaff))
	assert.False(t, RoleManager.AtLeast(RoleAdmin))
	assert.False(t, RoleStaff.AtLeast(RoleManager))
	assert.False(t, Role("intern").AtLeast(RoleStaff))
}

func TestClaimsContextRoundTrip(t *testing.T) {
	claims := &Claims{UserID: "u-1", AccessToken: "tok"}
	ctx := NewContext(context.Background(), claims)

	got, ok := FromContext(ctx)
	assert.True(t, ok)
	assert.Same(t, claims, got)

	_, ok = FromContext(context.Background())
	assert.False(t, ok)
}
