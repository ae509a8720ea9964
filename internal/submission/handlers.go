package submission

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/noah-isme/backend-fieldsales/internal/common"
	"github.com/noah-isme/backend-fieldsales/internal/order"
)

// Handler exposes the order submission endpoint.
type Handler struct {
	Engine *order.Engine
	Svc    *Service
}

// SubmitRequest is the commit payload. Geolocation arrives as the "lat,lng"
// pair the capture layer stores, or empty when unavailable.
type SubmitRequest struct {
	Retailer    string         `json:"retailer"`
	Category    string         `json:"category"`
	Quantities  map[string]any `json:"quantities"`
	Geolocation string         `json:"geolocation"`
}

// Submit handles POST /api/v1/orders. The draft is rebuilt from the request
// so amounts are recomputed at commit time rather than trusted from the last
// preview.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if h.Engine == nil || h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "submission handler not configured", nil)
		return
	}
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body", nil)
		return
	}
	draft := order.BuildDraft(h.Engine, req.Retailer, req.Category, req.Quantities)
	result, err := h.Svc.Submit(r.Context(), draft, ParseGeolocation(req.Geolocation))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusCreated, map[string]any{
		"data":    result,
		"message": fmt.Sprintf("data submitted for %s in %s", req.Category, req.Retailer),
	})
}
