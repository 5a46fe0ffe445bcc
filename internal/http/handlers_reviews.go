package httpx

import (
	"net/http"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ReviewHandlers provides HTTP handlers for review moderation.
type ReviewHandlers struct {
	Svc ports.ReviewGateway
}

// List handles review listing with status and rating filters.
// GET /api/reviews.
func (h *ReviewHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r, defaultPageLimit, maxPageLimit)
	q := ports.ReviewListQuery{
		Page:   page,
		Limit:  limit,
		Status: r.URL.Query().Get("status"),
		Rating: parseIntQuery(r, "rating", 0),
	}

	reviews, pg, err := h.Svc.ListReviews(r.Context(), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteList(w, reviews, pg)
}

// UpdateStatus approves or rejects a review.
// PATCH /api/reviews/{id}/status.
func (h *ReviewHandlers) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("review id is required"))
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	switch req.Status {
	case model.ReviewStatusApproved, model.ReviewStatusRejected, model.ReviewStatusPending:
	default:
		WriteAppError(w, apperrors.ValidationField("status", "status must be pending, approved, or rejected"))
		return
	}

	review, err := h.Svc.UpdateReviewStatus(r.Context(), id, req.Status)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, review)
}

// Reply posts the store's reply to a review.
// POST /api/reviews/{id}/reply.
func (h *ReviewHandlers) Reply(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("review id is required"))
		return
	}

	var req struct {
		Text string `json:"text"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Text == "" {
		WriteAppError(w, apperrors.ValidationField("text", "reply text is required"))
		return
	}

	review, err := h.Svc.ReplyToReview(r.Context(), id, req.Text)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, review)
}

// Delete handles review deletion.
// DELETE /api/reviews/{id}.
func (h *ReviewHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("review id is required"))
		return
	}

	if err := h.Svc.DeleteReview(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "review deleted"})
}
