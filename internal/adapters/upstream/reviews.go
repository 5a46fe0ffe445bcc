package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/craftora/admin-api/internal/domain/model"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ListReviews fetches a review page.
func (c *Client) ListReviews(ctx context.Context, q ports.ReviewListQuery) ([]model.Review, *model.Pagination, error) {
	query := url.Values{}
	intQuery(query, "page", q.Page)
	intQuery(query, "limit", q.Limit)
	strQuery(query, "status", q.Status)
	intQuery(query, "rating", q.Rating)

	var reviews []model.Review
	pg, err := c.do(ctx, callOpts{method: http.MethodGet, path: "/api/reviews", query: query}, &reviews)
	if err != nil {
		return nil, nil, err
	}
	return reviews, pg, nil
}

// UpdateReviewStatus approves or rejects a review.
func (c *Client) UpdateReviewStatus(ctx context.Context, id, status string) (*model.Review, error) {
	if id == "" {
		return nil, apperrors.Validation("review id is required")
	}
	if status != model.ReviewStatusApproved && status != model.ReviewStatusRejected && status != model.ReviewStatusPending {
		return nil, apperrors.ValidationField("status", "unknown review status")
	}

	var review model.Review
	path := "/api/reviews/" + url.PathEscape(id) + "/status"
	body := map[string]string{"status": status}
	if _, err := c.do(ctx, callOpts{method: http.MethodPut, path: path, body: body}, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.Validation("review id is required")
	}
	_, err := c.do(ctx, callOpts{method: http.MethodDelete, path: "/api/reviews/" + url.PathEscape(id)}, nil)
	return err
}

// ReplyToReview attaches a merchant response to a review.
func (c *Client) ReplyToReview(ctx context.Context, id, text string) (*model.Review, error) {
	if id == "" {
		return nil, apperrors.Validation("review id is required")
	}
	if text == "" {
		return nil, apperrors.ValidationField("text", "reply text is required")
	}

	var review model.Review
	path := "/api/reviews/" + url.PathEscape(id) + "/reply"
	body := map[string]string{"text": text}
	if _, err := c.do(ctx, callOpts{method: http.MethodPost, path: path, body: body}, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
