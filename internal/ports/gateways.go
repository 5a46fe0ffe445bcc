package ports

import (
	"context"
	"encoding/json"
	"io"

	"github.com/craftora/admin-api/internal/domain/model"
)

// Upload is a multipart form body relayed to the upstream API untouched.
// ContentType carries the multipart boundary; the dispatcher must not
// override it with application/json.
type Upload struct {
	ContentType string
	Body        io.Reader
}

// ProductListQuery carries the products list filters.
type ProductListQuery struct {
	Page     int
	Limit    int
	Search   string
	Category string
	Status   string
	Featured *bool
	MinPrice float64
	MaxPrice float64
}

// ProductGateway proxies the upstream product endpoints.
type ProductGateway interface {
	ListProducts(ctx context.Context, q ProductListQuery) ([]model.Product, *model.Pagination, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, up Upload) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, up Upload) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	AdjustStock(ctx context.Context, id string, in StockAdjustment) (*model.Product, error)
}

// StockAdjustment is the inventory screen's stock operation.
type StockAdjustment struct {
	// Operation is "add" or "remove".
	Operation string `json:"operation"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason,omitempty"`
}

// CategoryListQuery carries the categories list filters.
type CategoryListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// CategoryGateway proxies the upstream category endpoints.
type CategoryGateway interface {
	ListCategories(ctx context.Context, q CategoryListQuery) ([]model.Category, *model.Pagination, error)
	GetCategory(ctx context.Context, id string) (*model.Category, error)
	CategoryTree(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, up Upload) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, up Upload) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

// CustomerListQuery carries the customers list filters.
type CustomerListQuery struct {
	Page   int
	Limit  int
	Search string
}

// CustomerInput is the create/update payload for a customer record.
type CustomerInput struct {
	Name      string                  `json:"name,omitempty"`
	Email     string                  `json:"email,omitempty"`
	Phone     string                  `json:"phone,omitempty"`
	Password  string                  `json:"password,omitempty"`
	Addresses []model.CustomerAddress `json:"addresses,omitempty"`
}

// CustomerGateway proxies the upstream customer endpoints.
type CustomerGateway interface {
	ListCustomers(ctx context.Context, q CustomerListQuery) ([]model.Customer, *model.Pagination, error)
	CustomerStats(ctx context.Context) (*model.CustomerStats, error)
	GetCustomer(ctx context.Context, id string) (*model.Customer, error)
	CreateCustomer(ctx context.Context, in CustomerInput) (*model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, in CustomerInput) (*model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

// OrderListQuery carries the orders list filters.
type OrderListQuery struct {
	Page   int
	Limit  int
	Search string
	Status string
}

// OrderStatsQuery bounds the order statistics aggregate.
type OrderStatsQuery struct {
	StartDate string
	EndDate   string
}

// OrderStatusUpdate is the status transition payload.
type OrderStatusUpdate struct {
	Status         string `json:"status"`
	TrackingNumber string `json:"trackingNumber,omitempty"`
	Note           string `json:"note,omitempty"`
}

// OrderGateway proxies the upstream order endpoints. Create and update relay
// the admin form JSON untouched; the upstream API owns its validation.
type OrderGateway interface {
	ListOrders(ctx context.Context, q OrderListQuery) ([]model.Order, *model.Pagination, error)
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	CreateOrder(ctx context.Context, body json.RawMessage) (*model.Order, error)
	UpdateOrder(ctx context.Context, id string, body json.RawMessage) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, in OrderStatusUpdate) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	OrderStats(ctx context.Context, q OrderStatsQuery) (*model.OrderStats, error)
	RecentOrders(ctx context.Context, limit int) ([]model.Order, error)
}

// ReviewListQuery carries the reviews list filters. Rating 0 means any.
type ReviewListQuery struct {
	Page   int
	Limit  int
	Status string
	Rating int
}

// ReviewGateway proxies the upstream review endpoints.
type ReviewGateway interface {
	ListReviews(ctx context.Context, q ReviewListQuery) ([]model.Review, *model.Pagination, error)
	UpdateReviewStatus(ctx context.Context, id, status string) (*model.Review, error)
	DeleteReview(ctx context.Context, id string) error
	ReplyToReview(ctx context.Context, id, text string) (*model.Review, error)
}

// SubUserInput is the create/update payload for a sub-user.
type SubUserInput struct {
	Name        string   `json:"name,omitempty"`
	Email       string   `json:"email,omitempty"`
	Password    string   `json:"password,omitempty"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

// SubUserGateway proxies the upstream sub-user management endpoints.
type SubUserGateway interface {
	ListSubUsers(ctx context.Context) ([]model.SubUser, error)
	CreateSubUser(ctx context.Context, in SubUserInput) (*model.SubUser, error)
	UpdateSubUser(ctx context.Context, id string, in SubUserInput) (*model.SubUser, error)
	DeleteSubUser(ctx context.Context, id string) error
	UpdateSubUserPermissions(ctx context.Context, id string, permissions []string) (*model.SubUser, error)
}

// PortfolioGateway proxies the storefront branding settings endpoints.
// GetPortfolio is public upstream; UpdatePortfolio requires a bearer token.
type PortfolioGateway interface {
	GetPortfolio(ctx context.Context) (*model.Portfolio, error)
	UpdatePortfolio(ctx context.Context, in model.Portfolio) (*model.Portfolio, error)
}

// DashboardGateway proxies the dashboard aggregate endpoint.
type DashboardGateway interface {
	DashboardOverview(ctx context.Context) (*model.DashboardOverview, error)
}
