package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ListProducts fetches a product page with the admin list filters applied.
func (c *Client) ListProducts(ctx context.Context, q ports.ProductListQuery) ([]model.Product, *model.Pagination, error) {
	query := url.Values{}
	intQuery(query, "page", q.Page)
	intQuery(query, "limit", q.Limit)
	strQuery(query, "search", q.Search)
	strQuery(query, "category", q.Category)
	strQuery(query, "status", q.Status)
	if q.Featured != nil {
		query.Set("featured", strconv.FormatBool(*q.Featured))
	}
	if q.MinPrice > 0 {
		query.Set("minPrice", strconv.FormatFloat(q.MinPrice, 'f', -1, 64))
	}
	if q.MaxPrice > 0 {
		query.Set("maxPrice", strconv.FormatFloat(q.MaxPrice, 'f', -1, 64))
	}

	var products []model.Product
	pg, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/products", query: query}, &products)
	if err != nil {
		return nil, nil, err
	}
	return products, pg, nil
}

// GetProduct fetches a single product by id.
func (c *Client) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	if id == "" {
		return nil, apperrors.Validation("product id is required")
	}
	var product model.Product
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/products/" + url.PathEscape(id)}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct relays the admin form's multipart body (fields plus images).
func (c *Client) CreateProduct(ctx context.Context, up ports.Upload) (*model.Product, error) {
	var product model.Product
	if _, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/products", upload: &up}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct relays a multipart update for an existing product.
func (c *Client) UpdateProduct(ctx context.Context, id string, up ports.Upload) (*model.Product, error) {
	if id == "" {
		return nil, apperrors.Validation("product id is required")
	}
	var product model.Product
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: "/api/products/" + url.PathEscape(id), upload: &up}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct removes a product.
func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("product id is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodDelete, path: "/api/products/" + url.PathEscape(id)}, nil)
	return err
}

// AdjustStock applies an inventory add/remove operation to a product.
func (c *Client) AdjustStock(ctx context.Context, id string, in ports.StockAdjustment) (*model.Product, error) {
	if id == "" {
		return nil, apperrors.Validation("product id is required")
	}
	if in.Operation != "add" && in.Operation != "remove" {
		return nil, apperrors.ValidationField("operation", fmt.Sprintf("unknown stock operation %q", in.Operation))
	}
	if in.Quantity <= 0 {
		return nil, apperrors.ValidationField("quantity", "quantity must be positive")
	}

	var product model.Product
	path := "/api/products/" + url.PathEscape(id) + "/stock"
	if _, err := c.do(ctx, callOpts{method: http.MethodPatch, path: path, body: in}, &product); err != nil {
		return nil, err
	}
	return &product, nil
}
