package order_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fieldsales/internal/order"
)

func newPreviewHandler(t *testing.T) *order.Handler {
	t.Helper()
	return &order.Handler{Engine: newTestEngine(t), CurrencySymbol: "₹"}
}

func doPreview(t *testing.T, h *order.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/orders/preview", strings.NewReader(body))
	h.Preview(rec, req)
	return rec
}

func TestPreviewComputesTotals(t *testing.T) {
	h := newPreviewHandler(t)
	rec := doPreview(t, h, `{
		"retailer": "Sharma General Store",
		"category": "Snacks",
		"quantities": {"p-chips": 3}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data order.PreviewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data.Lines, 2)
	require.EqualValues(t, 6000, body.Data.Lines[0].Amount)
	require.Equal(t, "₹60.00", body.Data.Lines[0].AmountDisplay)
	require.EqualValues(t, 6000, body.Data.Total)
	require.Equal(t, "₹60.00", body.Data.TotalDisplay)
}

func TestPreviewCoercesLooseQuantities(t *testing.T) {
	h := newPreviewHandler(t)
	rec := doPreview(t, h, `{
		"category": "Snacks",
		"quantities": {"p-chips": "2", "p-peanuts": null}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data order.PreviewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, 2, body.Data.Lines[0].Quantity)
	require.Zero(t, body.Data.Lines[1].Quantity)
	require.EqualValues(t, 4000, body.Data.Total)
}

func TestPreviewRequiresCategory(t *testing.T) {
	h := newPreviewHandler(t)
	rec := doPreview(t, h, `{"retailer": "Sharma General Store"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "VALIDATION", body.Error.Code)
}

func TestPreviewRejectsMalformedBody(t *testing.T) {
	h := newPreviewHandler(t)
	rec := doPreview(t, h, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPreviewEmptyCategoryProducts(t *testing.T) {
	h := newPreviewHandler(t)
	rec := doPreview(t, h, `{"category": "Seasonal", "quantities": {}}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data order.PreviewResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Empty(t, body.Data.Lines)
	require.Zero(t, body.Data.Total)
}
