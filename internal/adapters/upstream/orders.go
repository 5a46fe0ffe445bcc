package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ListOrders fetches an order page.
func (c *Client) ListOrders(ctx context.Context, q ports.OrderListQuery) ([]model.Order, *model.Pagination, error) {
	query := url.Values{}
	intQuery(query, "page", q.Page)
	intQuery(query, "limit", q.Limit)
	strQuery(query, "search", q.Search)
	strQuery(query, "status", q.Status)

	var orders []model.Order
	pg, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/orders", query: query}, &orders)
	if err != nil {
		return nil, nil, err
	}
	return orders, pg, nil
}

// GetOrder fetches a single order by id.
func (c *Client) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	if id == "" {
		return nil, apperrors.Validation("order id is required")
	}
	var order model.Order
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/orders/" + url.PathEscape(id)}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CreateOrder relays the admin order form JSON untouched; the upstream API
// owns item pricing and validation.
func (c *Client) CreateOrder(ctx context.Context, body json.RawMessage) (*model.Order, error) {
	if len(body) == 0 {
		return nil, apperrors.Validation("order body is required")
	}
	var order model.Order
	if _, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/orders", rawBody: body}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrder relays an order edit.
func (c *Client) UpdateOrder(ctx context.Context, id string, body json.RawMessage) (*model.Order, error) {
	if id == "" {
		return nil, apperrors.Validation("order id is required")
	}
	if len(body) == 0 {
		return nil, apperrors.Validation("order body is required")
	}
	var order model.Order
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: "/api/orders/" + url.PathEscape(id), rawBody: body}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateOrderStatus transitions an order's fulfillment status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id string, in ports.OrderStatusUpdate) (*model.Order, error) {
	if id == "" {
		return nil, apperrors.Validation("order id is required")
	}
	if in.Status == "" {
		return nil, apperrors.ValidationField("status", "status is required")
	}
	var order model.Order
	path := "/api/orders/" + url.PathEscape(id) + "/status"
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: path, body: in}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// DeleteOrder removes an order.
func (c *Client) DeleteOrder(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("order id is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodDelete, path: "/api/orders/" + url.PathEscape(id)}, nil)
	return err
}

// OrderStats fetches order aggregates, optionally bounded by a date range.
func (c *Client) OrderStats(ctx context.Context, q ports.OrderStatsQuery) (*model.OrderStats, error) {
	query := url.Values{}
	strQuery(query, "startDate", q.StartDate)
	strQuery(query, "endDate", q.EndDate)

	var stats model.OrderStats
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/orders/stats", query: query}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecentOrders fetches the most recent orders for dashboard display.
func (c *Client) RecentOrders(ctx context.Context, limit int) ([]model.Order, error) {
	if limit <= 0 {
		limit = 5
	}
	query := url.Values{}
	intQuery(query, "limit", limit)

	var orders []model.Order
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/orders/recent", query: query}, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}
