package httpx

import (
	"net/http"

	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// CustomerHandlers provides HTTP handlers for customer operations.
type CustomerHandlers struct {
	Svc ports.CustomerGateway
}

// List handles customer listing.
// GET /api/customers.
func (h *CustomerHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r, defaultPageLimit, maxPageLimit)
	q := ports.CustomerListQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
	}

	customers, pg, err := h.Svc.ListCustomers(r.Context(), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteList(w, customers, pg)
}

// Stats returns the customer count aggregates for the customers screen.
// GET /api/customers/stats.
func (h *CustomerHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.CustomerStats(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, stats)
}

// GetByID handles fetching a single customer.
// GET /api/customers/{id}.
func (h *CustomerHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("customer id is required"))
		return
	}

	customer, err := h.Svc.GetCustomer(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, customer)
}

// Create handles customer creation.
// POST /api/customers.
func (h *CustomerHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req ports.CustomerInput
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		WriteAppError(w, apperrors.ValidationField("email", "email is required"))
		return
	}

	customer, err := h.Svc.CreateCustomer(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, customer)
}

// Update handles customer updates.
// PUT /api/customers/{id}.
func (h *CustomerHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("customer id is required"))
		return
	}

	var req ports.CustomerInput
	if !DecodeJSON(w, r, &req) {
		return
	}

	customer, err := h.Svc.UpdateCustomer(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, customer)
}

// Delete handles customer deletion.
// DELETE /api/customers/{id}.
func (h *CustomerHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("customer id is required"))
		return
	}

	if err := h.Svc.DeleteCustomer(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "customer deleted"})
}
