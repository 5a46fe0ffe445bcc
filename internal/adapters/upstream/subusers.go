package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ListSubUsers fetches every sub-user on the account.
func (c *Client) ListSubUsers(ctx context.Context) ([]model.SubUser, error) {
	var users []model.SubUser
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/users/sub-users"}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateSubUser creates a sub-user account.
func (c *Client) CreateSubUser(ctx context.Context, in ports.SubUserInput) (*model.SubUser, error) {
	if in.Email == "" {
		return nil, apperrors.ValidationField("email", "email is required")
	}
	if in.Password == "" {
		return nil, apperrors.ValidationField("password", "password is required")
	}
	var user model.SubUser
	if _, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/users/sub-users", body: in}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateSubUser updates a sub-user account.
func (c *Client) UpdateSubUser(ctx context.Context, id string, in ports.SubUserInput) (*model.SubUser, error) {
	if id == "" {
		return nil, apperrors.Validation("sub-user id is required")
	}
	var user model.SubUser
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: "/api/users/sub-users/" + url.PathEscape(id), body: in}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteSubUser removes a sub-user account.
func (c *Client) DeleteSubUser(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("sub-user id is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodDelete, path: "/api/users/sub-users/" + url.PathEscape(id)}, nil)
	return err
}

// UpdateSubUserPermissions replaces a sub-user's permission set.
func (c *Client) UpdateSubUserPermissions(ctx context.Context, id string, permissions []string) (*model.SubUser, error) {
	if id == "" {
		return nil, apperrors.Validation("sub-user id is required")
	}
	var user model.SubUser
	path := "/api/users/sub-users/" + url.PathEscape(id) + "/permissions"
	body := map[string][]string{"permissions": permissions}
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: path, body: body}, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
