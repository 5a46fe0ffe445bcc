package httpx

import (
	"net/http"

	"github.com/craftora/admin-api/internal/ports"
	"github.com/craftora/admin-api/internal/service"
)

// DashboardHandlers provides HTTP handlers for the dashboard and analytics
// aggregates.
type DashboardHandlers struct {
	Svc       ports.DashboardGateway
	Analytics *service.AnalyticsService
}

// Overview returns the upstream dashboard aggregate unchanged.
// GET /api/dashboard.
func (h *DashboardHandlers) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.Svc.DashboardOverview(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, overview)
}

// AnalyticsOverview assembles the analytics screen from several upstream
// aggregates fetched concurrently.
// GET /api/dashboard/analytics.
func (h *DashboardHandlers) AnalyticsOverview(w http.ResponseWriter, r *http.Request) {
	recent := parseIntQuery(r, "recent", 10)
	if recent < 1 {
		recent = 10
	}
	if recent > 50 {
		recent = 50
	}

	result, err := h.Analytics.Overview(r.Context(), service.OverviewQuery{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
		Recent:    recent,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, result)
}
