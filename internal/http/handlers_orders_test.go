package httpx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/craftora/admin-api/internal/domain/model"
	"github.com/craftora/admin-api/internal/mocks"
)

func newOrderHandlers(t *testing.T) (*OrderHandlers, *mocks.MockOrderGateway) {
	t.Helper()
	ctrl := gomock.NewController(t)
	gateway := mocks.NewMockOrderGateway(ctrl)
	return &OrderHandlers{Svc: gateway}, gateway
}

// paddedOrderJSON builds a valid JSON payload of exactly n bytes.
func paddedOrderJSON(t *testing.T, n int) []byte {
	t.Helper()
	const frame = `{"note":""}`
	require.Greater(t, n, len(frame))
	body := fmt.Sprintf(`{"note":"%s"}`, strings.Repeat("a", n-len(frame)))
	require.Len(t, body, n)
	require.True(t, json.Valid([]byte(body)))
	return []byte(body)
}

func TestOrderCreateRelaysRawBody(t *testing.T) {
	h, gateway := newOrderHandlers(t)

	payload := []byte(`{"customer":{"name":"Ada"},"items":[{"quantity":2}]}`)
	gateway.EXPECT().
		CreateOrder(gomock.Any(), json.RawMessage(payload)).
		Return(&model.Order{ID: "order-1"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestOrderCreateRejectsInvalidJSON(t *testing.T) {
	h, _ := newOrderHandlers(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderBodySizeCap(t *testing.T) {
	t.Run("exactly at cap passes", func(t *testing.T) {
		h, gateway := newOrderHandlers(t)
		payload := paddedOrderJSON(t, maxOrderBodyBytes)
		gateway.EXPECT().
			CreateOrder(gomock.Any(), gomock.Any()).
			Return(&model.Order{ID: "order-1"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("one byte over is rejected", func(t *testing.T) {
		h, _ := newOrderHandlers(t)
		payload := paddedOrderJSON(t, maxOrderBodyBytes+1)

		req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(payload))
		rec := httptest.NewRecorder()
		h.Create(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var env Envelope
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
		assert.False(t, env.Success)
		assert.Equal(t, "validation", env.Error)
	})
}
