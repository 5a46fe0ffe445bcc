package upstream

import (
	"context"
	"net/http"

	"github.com/craftora/admin-api/internal/domain/model"
)

// DashboardOverview fetches the dashboard aggregate.
func (c *Client) DashboardOverview(ctx context.Context) (*model.DashboardOverview, error) {
	var overview model.DashboardOverview
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/dashboard/overview"}, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}
