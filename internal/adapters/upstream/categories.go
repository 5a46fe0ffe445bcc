package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ListCategories fetches a category page.
func (c *Client) ListCategories(ctx context.Context, q ports.CategoryListQuery) ([]model.Category, *model.Pagination, error) {
	query := url.Values{}
	intQuery(query, "page", q.Page)
	intQuery(query, "limit", q.Limit)
	strQuery(query, "search", q.Search)
	strQuery(query, "status", q.Status)

	var categories []model.Category
	pg, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/categories", query: query}, &categories)
	if err != nil {
		return nil, nil, err
	}
	return categories, pg, nil
}

// GetCategory fetches a single category by id.
func (c *Client) GetCategory(ctx context.Context, id string) (*model.Category, error) {
	if id == "" {
		return nil, apperrors.Validation("category id is required")
	}
	var category model.Category
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/categories/" + url.PathEscape(id)}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryTree fetches the nested category hierarchy.
func (c *Client) CategoryTree(ctx context.Context) ([]model.Category, error) {
	var tree []model.Category
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/categories/tree"}, &tree); err != nil {
		return nil, err
	}
	return tree, nil
}

// CreateCategory relays the admin form's multipart body (fields plus image).
func (c *Client) CreateCategory(ctx context.Context, up ports.Upload) (*model.Category, error) {
	var category model.Category
	if _, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/categories", upload: &up}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory relays a multipart update for an existing category.
func (c *Client) UpdateCategory(ctx context.Context, id string, up ports.Upload) (*model.Category, error) {
	if id == "" {
		return nil, apperrors.Validation("category id is required")
	}
	var category model.Category
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: "/api/categories/" + url.PathEscape(id), upload: &up}, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("category id is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodDelete, path: "/api/categories/" + url.PathEscape(id)}, nil)
	return err
}
