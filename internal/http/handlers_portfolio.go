package httpx

import (
	"net/http"

	"github.com/craftora/admin-api/internal/domain/model"
	"github.com/craftora/admin-api/internal/ports"
)

// PortfolioHandlers provides HTTP handlers for the storefront branding
// settings. Get is public; Update sits behind the auth gate.
type PortfolioHandlers struct {
	Svc ports.PortfolioGateway
}

// Get returns the storefront branding settings.
// GET /api/portfolio.
func (h *PortfolioHandlers) Get(w http.ResponseWriter, r *http.Request) {
	portfolio, err := h.Svc.GetPortfolio(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, portfolio)
}

// Update replaces the storefront branding settings.
// PUT /api/portfolio.
func (h *PortfolioHandlers) Update(w http.ResponseWriter, r *http.Request) {
	var req model.Portfolio
	if !DecodeJSON(w, r, &req) {
		return
	}

	portfolio, err := h.Svc.UpdatePortfolio(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, portfolio)
}
