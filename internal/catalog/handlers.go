package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/noah-isme/backend-fieldsales/internal/common"
	"github.com/noah-isme/backend-fieldsales/internal/pricing"
)

// Handler exposes read-only catalog endpoints backed by the session snapshot.
type Handler struct {
	Snapshot       *Snapshot
	CurrencySymbol string
}

type productPayload struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Display  string `json:"priceDisplay"`
}

// Retailers handles GET /api/v1/retailers.
func (h *Handler) Retailers(w http.ResponseWriter, _ *http.Request) {
	if h.Snapshot == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog snapshot not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Snapshot.Retailers()})
}

// RetailerDetail handles GET /api/v1/retailers/{name}. It is the source the
// submission flow uses for salesperson identity; the fields are never
// re-entered or re-parsed downstream.
func (h *Handler) RetailerDetail(w http.ResponseWriter, r *http.Request) {
	if h.Snapshot == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog snapshot not configured", nil)
		return
	}
	name := chi.URLParam(r, "name")
	retailer, ok := h.Snapshot.LookupRetailer(name)
	if !ok {
		common.JSONError(w, http.StatusNotFound, "NOT_FOUND", "retailer not found", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": retailer})
}

// Categories handles GET /api/v1/categories.
func (h *Handler) Categories(w http.ResponseWriter, _ *http.Request) {
	if h.Snapshot == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog snapshot not configured", nil)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.Snapshot.Categories()})
}

// CategoryProducts handles GET /api/v1/categories/{name}/products. An empty
// category returns an empty list, not an error.
func (h *Handler) CategoryProducts(w http.ResponseWriter, r *http.Request) {
	if h.Snapshot == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog snapshot not configured", nil)
		return
	}
	name := chi.URLParam(r, "name")
	products := h.Snapshot.ProductsInCategory(name)
	payload := make([]productPayload, 0, len(products))
	for _, p := range products {
		payload = append(payload, productPayload{
			ID:       p.ID,
			Name:     p.Name,
			Category: p.Category,
			Price:    p.Price,
			Display:  pricing.Format(h.CurrencySymbol, p.Price),
		})
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": payload})
}
