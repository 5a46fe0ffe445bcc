package upstream

import (
	"context"
	"net/http"

	"github.com/craftora/admin-api/internal/domain/model"
)

// GetPortfolio fetches the storefront branding settings. The upstream
// endpoint is public, so no bearer token is attached.
func (c *Client) GetPortfolio(ctx context.Context) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/portfolio", skipAuth: true}, &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}

// UpdatePortfolio merges a partial branding update.
func (c *Client) UpdatePortfolio(ctx context.Context, in model.Portfolio) (*model.Portfolio, error) {
	var portfolio model.Portfolio
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: "/api/portfolio", body: in}, &portfolio); err != nil {
		return nil, err
	}
	return &portfolio, nil
}
