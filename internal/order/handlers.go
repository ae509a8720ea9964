package order

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/noah-isme/backend-fieldsales/internal/common"
	"github.com/noah-isme/backend-fieldsales/internal/obs"
	"github.com/noah-isme/backend-fieldsales/internal/pricing"
)

// Handler exposes the live order recompute endpoint.
type Handler struct {
	Engine         *Engine
	CurrencySymbol string
}

// PreviewRequest carries the draft state for a recompute. Quantity values are
// deliberately loose-typed: numbers, numeric strings, nulls, and absent keys
// are all accepted and coerced.
type PreviewRequest struct {
	Retailer   string         `json:"retailer"`
	Category   string         `json:"category"`
	Quantities map[string]any `json:"quantities"`
}

// LinePayload is one computed order line in the preview response.
type LinePayload struct {
	ProductID     string `json:"productId"`
	Product       string `json:"product"`
	UnitPrice     int64  `json:"unitPrice"`
	Quantity      int    `json:"quantity"`
	Amount        int64  `json:"amount"`
	AmountDisplay string `json:"amountDisplay"`
}

// PreviewResponse carries per-line amounts and the category total.
type PreviewResponse struct {
	Retailer     string        `json:"retailer,omitempty"`
	Category     string        `json:"category"`
	Lines        []LinePayload `json:"lines"`
	Total        int64         `json:"total"`
	TotalDisplay string        `json:"totalDisplay"`
}

// Preview handles POST /api/v1/orders/preview. Every call rebuilds the draft
// from the selected category and recomputes all totals from scratch.
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	if h.Engine == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "order engine not configured", nil)
		return
	}
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		common.JSONError(w, http.StatusUnprocessableEntity, "VALIDATION", "category is required", nil)
		return
	}
	draft := BuildDraft(h.Engine, req.Retailer, req.Category, req.Quantities)
	if obs.OrderPreviewTotal != nil {
		obs.OrderPreviewTotal.WithLabelValues("ok").Inc()
	}
	common.JSON(w, http.StatusOK, map[string]any{"data": h.payload(draft)})
}

func (h *Handler) payload(d Draft) PreviewResponse {
	lines := make([]LinePayload, 0, len(d.Lines))
	for _, line := range d.Lines {
		lines = append(lines, LinePayload{
			ProductID:     line.ProductID,
			Product:       line.Product,
			UnitPrice:     line.UnitPrice,
			Quantity:      line.Quantity,
			Amount:        line.Amount,
			AmountDisplay: pricing.Format(h.CurrencySymbol, line.Amount),
		})
	}
	return PreviewResponse{
		Retailer:     d.Retailer,
		Category:     d.Category,
		Lines:        lines,
		Total:        d.Total,
		TotalDisplay: pricing.Format(h.CurrencySymbol, d.Total),
	}
}

// BuildDraft selects the category and applies the supplied quantity map,
// coercing each value. The resulting draft has fully recomputed totals.
func BuildDraft(e *Engine, retailer, category string, quantities map[string]any) Draft {
	draft := e.SelectCategory(retailer, category)
	for productID, raw := range quantities {
		SetQuantity(&draft, productID, CoerceQuantity(raw))
	}
	return draft
}
