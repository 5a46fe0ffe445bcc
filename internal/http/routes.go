package httpx

import (
	"log/slog"
	"net/http"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	"github.com/craftora/admin-api/internal/ports"
	"github.com/craftora/admin-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Auth       *service.AuthService
	Accounts   ports.AccountGateway
	Products   ports.ProductGateway
	Categories ports.CategoryGateway
	Customers  ports.CustomerGateway
	Orders     ports.OrderGateway
	Reviews    ports.ReviewGateway
	SubUsers   ports.SubUserGateway
	Portfolio  ports.PortfolioGateway
	Dashboard  ports.DashboardGateway
	Analytics  *service.AnalyticsService

	Cookies CookieConfig
	Logger  *slog.Logger // Logger for auth and HTTP errors (optional)
}

// NewRouter creates and configures the HTTP router with CSRF protection and
// the session auth gates.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	authmw := &AuthMiddleware{Sessions: services.Auth, Cookies: services.Cookies}
	requireAuth := authmw.RequireAuth()
	adminOnly := authmw.RequireRole(domainauth.RoleAdmin)

	authHandlers := &AuthHandlers{
		Svc:      services.Auth,
		Accounts: services.Accounts,
		Cookies:  services.Cookies,
		Logger:   services.Logger,
	}
	registerAuthRoutes(mux, authHandlers)

	registerProductRoutes(mux, &ProductHandlers{Svc: services.Products}, requireAuth)
	registerCategoryRoutes(mux, &CategoryHandlers{Svc: services.Categories}, requireAuth)
	registerCustomerRoutes(mux, &CustomerHandlers{Svc: services.Customers}, requireAuth)
	registerOrderRoutes(mux, &OrderHandlers{Svc: services.Orders}, requireAuth)
	registerReviewRoutes(mux, &ReviewHandlers{Svc: services.Reviews}, requireAuth)
	registerSubUserRoutes(mux, &SubUserHandlers{Svc: services.SubUsers}, adminOnly)
	registerPortfolioRoutes(mux, &PortfolioHandlers{Svc: services.Portfolio}, requireAuth)
	registerDashboardRoutes(mux, &DashboardHandlers{Svc: services.Dashboard, Analytics: services.Analytics}, requireAuth)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))

	// CSRF wraps everything so the token cookie is minted on the first safe
	// request and enforced on every state-changing one.
	return CSRFProtection(services.Cookies)(mux)
}

// crudRoutes describes a standard resource route set.
type crudRoutes struct {
	Base       string
	Create     http.HandlerFunc
	List       http.HandlerFunc
	GetByID    http.HandlerFunc
	Update     http.HandlerFunc
	Delete     http.HandlerFunc
	Middleware func(http.Handler) http.Handler
}

func registerCRUD(mux *http.ServeMux, cr crudRoutes) {
	wrap := cr.Middleware
	if wrap == nil {
		wrap = func(h http.Handler) http.Handler { return h }
	}
	if cr.Create != nil {
		mux.Handle("POST "+cr.Base, wrap(cr.Create))
	}
	if cr.List != nil {
		mux.Handle("GET "+cr.Base, wrap(cr.List))
	}
	if cr.GetByID != nil {
		mux.Handle("GET "+cr.Base+"/{id}", wrap(cr.GetByID))
	}
	if cr.Update != nil {
		mux.Handle("PUT "+cr.Base+"/{id}", wrap(cr.Update))
	}
	if cr.Delete != nil {
		mux.Handle("DELETE "+cr.Base+"/{id}", wrap(cr.Delete))
	}
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("POST /auth/login", h.Login)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
	mux.HandleFunc("GET /auth/csrf", h.CSRF)
	mux.HandleFunc("POST /auth/signup", h.Signup)
	mux.HandleFunc("POST /auth/forgot-password", h.ForgotPassword)
	mux.HandleFunc("POST /auth/forgot-password/verify", h.VerifyResetOTP)
	mux.HandleFunc("POST /auth/forgot-password/recover", h.RecoverPassword)
}

func registerProductRoutes(mux *http.ServeMux, h *ProductHandlers, auth func(http.Handler) http.Handler) {
	registerCRUD(mux, crudRoutes{
		Base:       "/api/products",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: auth,
	})
	mux.Handle("PATCH /api/products/{id}/stock", auth(http.HandlerFunc(h.AdjustStock)))
}

func registerCategoryRoutes(mux *http.ServeMux, h *CategoryHandlers, auth func(http.Handler) http.Handler) {
	// Literal segments must register before the {id} wildcard.
	mux.Handle("GET /api/categories/tree", auth(http.HandlerFunc(h.Tree)))
	registerCRUD(mux, crudRoutes{
		Base:       "/api/categories",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: auth,
	})
}

func registerCustomerRoutes(mux *http.ServeMux, h *CustomerHandlers, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/customers/stats", auth(http.HandlerFunc(h.Stats)))
	registerCRUD(mux, crudRoutes{
		Base:       "/api/customers",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: auth,
	})
}

func registerOrderRoutes(mux *http.ServeMux, h *OrderHandlers, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/orders/stats", auth(http.HandlerFunc(h.Stats)))
	mux.Handle("GET /api/orders/recent", auth(http.HandlerFunc(h.Recent)))
	registerCRUD(mux, crudRoutes{
		Base:       "/api/orders",
		Create:     h.Create,
		List:       h.List,
		GetByID:    h.GetByID,
		Update:     h.Update,
		Delete:     h.Delete,
		Middleware: auth,
	})
	mux.Handle("PATCH /api/orders/{id}/status", auth(http.HandlerFunc(h.UpdateStatus)))
}

func registerReviewRoutes(mux *http.ServeMux, h *ReviewHandlers, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/reviews", auth(http.HandlerFunc(h.List)))
	mux.Handle("PATCH /api/reviews/{id}/status", auth(http.HandlerFunc(h.UpdateStatus)))
	mux.Handle("POST /api/reviews/{id}/reply", auth(http.HandlerFunc(h.Reply)))
	mux.Handle("DELETE /api/reviews/{id}", auth(http.HandlerFunc(h.Delete)))
}

func registerSubUserRoutes(mux *http.ServeMux, h *SubUserHandlers, adminOnly func(http.Handler) http.Handler) {
	mux.Handle("GET /api/subusers", adminOnly(http.HandlerFunc(h.List)))
	mux.Handle("POST /api/subusers", adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("PUT /api/subusers/{id}", adminOnly(http.HandlerFunc(h.Update)))
	mux.Handle("PATCH /api/subusers/{id}/permissions", adminOnly(http.HandlerFunc(h.UpdatePermissions)))
	mux.Handle("DELETE /api/subusers/{id}", adminOnly(http.HandlerFunc(h.Delete)))
}

func registerPortfolioRoutes(mux *http.ServeMux, h *PortfolioHandlers, auth func(http.Handler) http.Handler) {
	// The storefront reads branding without a session; only edits are gated.
	mux.HandleFunc("GET /api/portfolio", h.Get)
	mux.Handle("PUT /api/portfolio", auth(http.HandlerFunc(h.Update)))
}

func registerDashboardRoutes(mux *http.ServeMux, h *DashboardHandlers, auth func(http.Handler) http.Handler) {
	mux.Handle("GET /api/dashboard", auth(http.HandlerFunc(h.Overview)))
	mux.Handle("GET /api/dashboard/analytics", auth(http.HandlerFunc(h.AnalyticsOverview)))
}
