package httpx

import (
	"mime"
	"net/http"
	"strings"

	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

// ProductHandlers provides HTTP handlers for product operations.
type ProductHandlers struct {
	Svc ports.ProductGateway
}

// uploadFromRequest wraps a multipart request body for upstream passthrough.
// The body is not parsed here; the upstream API owns the form fields and the
// boundary must survive intact.
func uploadFromRequest(r *http.Request) (ports.Upload, error) {
	ct := r.Header.Get("Content-Type")
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		return ports.Upload{}, apperrors.Validation("multipart form data is required")
	}
	return ports.Upload{ContentType: ct, Body: r.Body}, nil
}

// List handles product listing with search and filter parameters.
// GET /api/products.
func (h *ProductHandlers) List(w http.ResponseWriter, r *http.Request) {
	page, limit := ParsePageLimit(r, defaultPageLimit, maxPageLimit)
	q := ports.ProductListQuery{
		Page:     page,
		Limit:    limit,
		Search:   r.URL.Query().Get("search"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
		Featured: parseBoolQuery(r, "featured"),
		MinPrice: parseFloatQuery(r, "minPrice"),
		MaxPrice: parseFloatQuery(r, "maxPrice"),
	}

	products, pg, err := h.Svc.ListProducts(r.Context(), q)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteList(w, products, pg)
}

// GetByID handles fetching a single product.
// GET /api/products/{id}.
func (h *ProductHandlers) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("product id is required"))
		return
	}

	product, err := h.Svc.GetProduct(r.Context(), id)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, product)
}

// Create relays a multipart product form (fields plus images) upstream.
// POST /api/products.
func (h *ProductHandlers) Create(w http.ResponseWriter, r *http.Request) {
	up, err := uploadFromRequest(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	product, err := h.Svc.CreateProduct(r.Context(), up)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusCreated, product)
}

// Update relays a multipart product form upstream.
// PUT /api/products/{id}.
func (h *ProductHandlers) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("product id is required"))
		return
	}

	up, err := uploadFromRequest(r)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	product, err := h.Svc.UpdateProduct(r.Context(), id, up)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, product)
}

// Delete handles product deletion.
// DELETE /api/products/{id}.
func (h *ProductHandlers) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("product id is required"))
		return
	}

	if err := h.Svc.DeleteProduct(r.Context(), id); err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "product deleted"})
}

// AdjustStock handles the inventory screen's add/remove stock operation.
// PATCH /api/products/{id}/stock.
func (h *ProductHandlers) AdjustStock(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		WriteAppError(w, apperrors.Validation("product id is required"))
		return
	}

	var req ports.StockAdjustment
	if !DecodeJSON(w, r, &req) {
		return
	}

	product, err := h.Svc.AdjustStock(r.Context(), id, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteData(w, http.StatusOK, product)
}
