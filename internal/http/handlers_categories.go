package httpx

import (
	"net/http"

	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// CategoryHandlers provides HTTP handlers for category operations.
type CategoryHandlers struct {
	Svc ports.CategoryGateway
}

// List handles category listing.
// GET /api/categories.
func (h *CategoryHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r, defaultPageLimit, maxPageLimit)
	q := ports.CategoryListQuery{
		Page:   page,
		Limit:  limit,
		Search: r.URL.Query().Get("search"),
		Status: r.URL.Query().Get("status"),
	}

	categories, pg, err := h.Svc.ListCategories(r.Context(), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteList(w, categories, pg)
}

// Tree returns the full category hierarchy for the picker widgets.
// GET /api/categories/tree.
func (h *CategoryHandlers) Tree(w http.ResponseWriter, r *http.Request) {
	tree, err := h.Svc.CategoryTree(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, tree)
}

// GetByID handles fetching a single category.
// GET /api/categories/{id}.
func (h *CategoryHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("category id is required"))
		return
	}

	category, err := h.Svc.GetCategory(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, category)
}

// Create relays a multipart category form (fields plus image) upstream.
// POST /api/categories.
func (h *CategoryHandlers) Create(w http.ResponseWriter, r *http.Request) {
	up, err := uploadFromRequest(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	category, err := h.Svc.CreateCategory(r.Context(), up)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, category)
}

// Update relays a multipart category form upstream.
// PUT /api/categories/{id}.
func (h *CategoryHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("category id is required"))
		return
	}

	up, err := uploadFromRequest(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	category, err := h.Svc.UpdateCategory(r.Context(), id, up)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, category)
}

// Delete handles category deletion.
// DELETE /api/categories/{id}.
func (h *CategoryHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("category id is required"))
		return
	}

	if err := h.Svc.DeleteCategory(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "category deleted"})
}
