package catalog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-fieldsales/internal/catalog"
)

func newTestHandler(t *testing.T) *catalog.Handler {
	t.Helper()
	snap, err := catalog.Load(context.Background(), staticSource())
	require.NoError(t, err)
	return &catalog.Handler{Snapshot: snap, CurrencySymbol: "₹"}
}

func newRouter(h *catalog.Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/retailers", h.Retailers)
	r.Get("/retailers/{name}", h.RetailerDetail)
	r.Get("/categories", h.Categories)
	r.Get("/categories/{name}/products", h.CategoryProducts)
	return r
}

func TestRetailersList(t *testing.T) {
	router := newRouter(newTestHandler(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/retailers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []catalog.Retailer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "Sharma General Store", body.Data[0].Name)
}

func TestRetailerDetail(t *testing.T) {
	router := newRouter(newTestHandler(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/retailers/Patel%20Provision", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data catalog.Retailer `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Meena Joshi", body.Data.Salesperson)
	require.Equal(t, "West", body.Data.Team)
}

func TestRetailerDetailNotFound(t *testing.T) {
	router := newRouter(newTestHandler(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/retailers/Unknown", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "NOT_FOUND", body.Error.Code)
}

func TestCategoryProductsIncludesDisplayPrice(t *testing.T) {
	router := newRouter(newTestHandler(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/Snacks/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Price   int64  `json:"price"`
			Display string `json:"priceDisplay"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 2)
	require.Equal(t, "p-chips", body.Data[0].ID)
	require.EqualValues(t, 2000, body.Data[0].Price)
	require.Equal(t, "₹20.00", body.Data[0].Display)
}

func TestCategoryProductsEmptyCategory(t *testing.T) {
	router := newRouter(newTestHandler(t))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/categories/Seasonal/products", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Empty(t, body.Data)
}
