package httpx

import (
	"encoding/json"
	"io"
	"net/http"

	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// maxOrderBodyBytes caps the relayed order payload. Admin order forms are
// small; anything larger is malformed or hostile.
const maxOrderBodyBytes = 1 << 20

// OrderHandlers provides HTTP handlers for order operations.
type OrderHandlers struct {
	Svc ports.OrderGateway
}

// rawOrderBody reads the request body for upstream passthrough. The upstream
// API owns order validation; this only checks the payload is JSON at all.
// Reading one byte past the cap distinguishes an oversized payload from one
// that ends exactly at it.
func rawOrderBody(r *http.Request) (json.RawMessage, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxOrderBodyBytes+1))
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "unable to read request body")
	}
	if len(body) > maxOrderBodyBytes {
		return nil, apperrors.Validation("request body too large")
	}
	if !json.Valid(body) {
		return nil, apperrors.Validation("invalid JSON body")
	}
	return body, nil
}

// List handles order listing.
// GET /api/orders.
func (h *OrderHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r, defaultPageLimit, maxPageLimit)
	q := ports.OrderListQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}

	orders, pg, err := h.Svc.ListOrders(r.Context(), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteList(w, orders, pg)
}

// Stats returns revenue and count aggregates for a date range.
// GET /api/orders/stats.
func (h *OrderHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.OrderStats(r.Context(), ports.OrderStatsQuery{
		StartDate: r.URL.Query().Get("startDate"),
		EndDate:   r.URL.Query().Get("endDate"),
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, stats)
}

// Recent returns the most recent orders for the dashboard widget.
// GET /api/orders/recent.
func (h *OrderHandlers) Recent(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 10)
	if limit < 1 {
		limit = 10
	}
	if limit > 50 {
		limit = 50
	}

	orders, err := h.Svc.RecentOrders(r.Context(), limit)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, orders)
}

// GetByID handles fetching a single order.
// GET /api/orders/{id}.
func (h *OrderHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("order id is required"))
		return
	}

	order, err := h.Svc.GetOrder(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, order)
}

// Create relays the manual order form upstream.
// POST /api/orders.
func (h *OrderHandlers) Create(w http.ResponseWriter, r *http.Request) {
	body, err := rawOrderBody(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	order, err := h.Svc.CreateOrder(r.Context(), body)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, order)
}

// Update relays order edits upstream.
// PUT /api/orders/{id}.
func (h *OrderHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("order id is required"))
		return
	}

	body, err := rawOrderBody(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	order, err := h.Svc.UpdateOrder(r.Context(), id, body)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, order)
}

// UpdateStatus handles the order status transition, optionally with a
// tracking number and a note.
// PATCH /api/orders/{id}/status.
func (h *OrderHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("order id is required"))
		return
	}

	var req ports.OrderStatusUpdate
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Status == "" {
		WriteAppError(w, apperrors.ValidationField("status", "status is required"))
		return
	}

	order, err := h.Svc.UpdateOrderStatus(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, order)
}

// Delete handles order deletion.
// DELETE /api/orders/{id}.
func (h *OrderHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("order id is required"))
		return
	}

	if err := h.Svc.DeleteOrder(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "order deleted"})
}
