package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ListCustomers fetches a customer page.
func (c *Client) ListCustomers(ctx context.Context, q ports.CustomerListQuery) ([]model.Customer, *model.Pagination, error) {
	query := url.Values{}
	intQuery(query, "page", q.Page)
	intQuery(query, "limit", q.Limit)
	strQuery(query, "search", q.Search)

	var customers []model.Customer
	pg, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/customers", query: query}, &customers)
	if err != nil {
		return nil, nil, err
	}
	return customers, pg, nil
}

// CustomerStats fetches the customers screen aggregates.
func (c *Client) CustomerStats(ctx context.Context) (*model.CustomerStats, error) {
	var stats model.CustomerStats
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/customers/stats"}, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetCustomer fetches a single customer by id.
func (c *Client) GetCustomer(ctx context.Context, id string) (*model.Customer, error) {
	if id == "" {
		return nil, apperrors.Validation("customer id is required")
	}
	var customer model.Customer
	if _, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/customers/" + url.PathEscape(id)}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// CreateCustomer creates a customer record.
func (c *Client) CreateCustomer(ctx context.Context, in ports.CustomerInput) (*model.Customer, error) {
	var customer model.Customer
	if _, err := c.do(ctx, callOpts{method: http.MethodPost, path: "/api/customers", body: in}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// UpdateCustomer updates a customer record.
func (c *Client) UpdateCustomer(ctx context.Context, id string, in ports.CustomerInput) (*model.Customer, error) {
	if id == "" {
		return nil, apperrors.Validation("customer id is required")
	}
	var customer model.Customer
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: "/api/customers/" + url.PathEscape(id), body: in}, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// DeleteCustomer removes a customer record.
func (c *Client) DeleteCustomer(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("customer id is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodDelete, path: "/api/customers/" + url.PathEscape(id)}, nil)
	return err
}
