package httpx

import (
	"net/http"

	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// SubUserHandlers provides HTTP handlers for sub-user management. Every
// route here is registered behind the admin role gate.
type SubUserHandlers struct {
	Svc ports.SubUserGateway
}

// List handles sub-user listing. The upstream endpoint is not paginated.
// GET /api/subusers.
func (h *SubUserHandlers) List(w http.ResponseWriter, r *http.Request) {
	subusers, err := h.Svc.ListSubUsers(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, subusers)
}

// Create handles sub-user creation.
// POST /api/subusers.
func (h *SubUserHandlers) Create(w http.ResponseWriter, r *http.Request) {
	var req ports.SubUserInput
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Email == "" {
		WriteAppError(w, apperrors.ValidationField("email", "email is required"))
		return
	}
	if req.Password == "" {
		WriteAppError(w, apperrors.ValidationField("password", "password is required"))
		return
	}

	subuser, err := h.Svc.CreateSubUser(r.Context(), req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, subuser)
}

// Update handles sub-user profile and role updates.
// PUT /api/subusers/{id}.
func (h *SubUserHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("subuser id is required"))
		return
	}

	var req ports.SubUserInput
	if !DecodeJSON(w, r, &req) {
		return
	}

	subuser, err := h.Svc.UpdateSubUser(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, subuser)
}

// UpdatePermissions replaces a sub-user's permission list.
// PATCH /api/subusers/{id}/permissions.
func (h *SubUserHandlers) UpdatePermissions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("subuser id is required"))
		return
	}

	var req struct {
		Permissions []string `json:"permissions"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Permissions == nil {
		WriteAppError(w, apperrors.ValidationField("permissions", "permissions list is required"))
		return
	}

	subuser, err := h.Svc.UpdateSubUserPermissions(r.Context(), id, req.Permissions)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, subuser)
}

// Delete handles sub-user deletion.
// DELETE /api/subusers/{id}.
func (h *SubUserHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("subuser id is required"))
		return
	}

	if err := h.Svc.DeleteSubUser(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "subuser deleted"})
}
