package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/craftora/admin-api/internal/domain/auth"
	apperrors "github.com/craftora/admin-api/internal/errors"
	"github.com/craftora/admin-api/internal/ports"
)

func loggedInContext(token string) context.Context {
	return domainauth.NewContext(context.Background(), &domainauth.Claims{
		UserID:      "u-1",
		Role:        domainauth.RoleAdmin,
		AccessToken: token,
		IssuedAt:    time.Now().UnixMilli(),
	})
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func writeEnvelope(w http.ResponseWriter, status int, env map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(env)
}

func TestNewRequiresBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestDispatcherAttachesBearerForLoggedInClaims(t *testing.T) {
	var gotAuth, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "p-1"}})
	})

	_, err := client.GetProduct(loggedInContext("tok-abc"), "p-1")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDispatcherOmitsBearerWithoutClaims(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "p-1"}})
	})

	_, err := client.GetProduct(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestDispatcherOmitsBearerForExpiredClaims(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "p-1"}})
	})

	ctx := domainauth.NewContext(context.Background(), &domainauth.Claims{
		UserID: "u-1",
		Error:  domainauth.TokenExpired,
	})
	_, err := client.GetProduct(ctx, "p-1")
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "an expired claim set must never produce a header")
}

func TestListProductsQueryAndPagination(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "25", q.Get("limit"))
		assert.Equal(t, "mug", q.Get("search"))
		assert.Equal(t, "true", q.Get("featured"))
		assert.Equal(t, "9.99", q.Get("minPrice"))
		writeEnvelope(w, http.StatusOK, map[string]any{
			"success": true,
			"data":    []map[string]any{{"_id": "p-1"}, {"_id": "p-2"}},
			"pagination": map[string]any{
				"total": 42, "page": 2, "limit": 25, "pages": 2,
			},
		})
	})

	featured := true
	products, pg, err := client.ListProducts(loggedInContext("tok"), ports.ProductListQuery{
		Page:     2,
		Limit:    25,
		Search:   "mug",
		Featured: &featured,
		MinPrice: 9.99,
	})
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.NotNil(t, pg)
	assert.Equal(t, 42, pg.Total)
	assert.Equal(t, 2, pg.Pages)
}

func TestDispatcherStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   apperrors.ErrorCode
	}{
		{"unauthorized", http.StatusUnauthorized, apperrors.ErrCodeUnauthorized},
		{"forbidden", http.StatusForbidden, apperrors.ErrCodeUnauthorized},
		{"not found", http.StatusNotFound, apperrors.ErrCodeNotFound},
		{"bad request", http.StatusBadRequest, apperrors.ErrCodeValidation},
		{"unprocessable", http.StatusUnprocessableEntity, apperrors.ErrCodeValidation},
		{"server error", http.StatusInternalServerError, apperrors.ErrCodeUpstream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				writeEnvelope(w, tt.status, map[string]any{"success": false, "message": "nope"})
			})

			_, err := client.GetProduct(loggedInContext("tok"), "p-1")
			require.Error(t, err)
			assert.Equal(t, tt.want, apperrors.CodeOf(err))
		})
	}
}

func TestDispatcherNonJSONResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("<html>proxy error</html>"))
	})

	_, err := client.GetProduct(loggedInContext("tok"), "p-1")
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeServerUnavailable, apperrors.CodeOf(err))
}

func TestCreateProductMultipartPassthrough(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Mug"))
	require.NoError(t, mw.Close())
	wantBody := buf.String()

	var gotContentType, gotBody string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)
		writeEnvelope(w, http.StatusCreated, map[string]any{"success": true, "data": map[string]any{"_id": "p-1", "name": "Mug"}})
	})

	product, err := client.CreateProduct(loggedInContext("tok"), ports.Upload{
		ContentType: mw.FormDataContentType(),
		Body:        bytes.NewReader([]byte(wantBody)),
	})
	require.NoError(t, err)
	assert.Equal(t, "p-1", product.ID)
	assert.Equal(t, mw.FormDataContentType(), gotContentType, "boundary must survive the relay")
	assert.Equal(t, wantBody, gotBody)
}

func TestAdjustStockValidation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("no request expected")
	})

	_, err := client.AdjustStock(loggedInContext("tok"), "p-1", ports.StockAdjustment{Operation: "set", Quantity: 1})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))

	_, err = client.AdjustStock(loggedInContext("tok"), "p-1", ports.StockAdjustment{Operation: "add", Quantity: 0})
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, apperrors.CodeOf(err))
}

func TestGetPortfolioSkipsAuth(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"storeName": "Craftora"}})
	})

	// Even with a live claim set in context, the public endpoint goes bare.
	_, err := client.GetPortfolio(loggedInContext("tok"))
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestUpdateOrderRelaysRawBody(t *testing.T) {
	var gotBody []byte
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		writeEnvelope(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"_id": "o-1"}})
	})

	raw := json.RawMessage(`{"items":[{"product":"p-1","quantity":2}]}`)
	order, err := client.UpdateOrder(loggedInContext("tok"), "o-1", raw)
	require.NoError(t, err)
	assert.Equal(t, "o-1", order.ID)
	assert.JSONEq(t, string(raw), string(gotBody))
}
