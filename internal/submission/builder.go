package submission

import (
	"net/http"
	"time"

	validator "github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/noah-isme/backend-fieldsales/internal/catalog"
	"github.com/noah-isme/backend-fieldsales/internal/common"
	"github.com/noah-isme/backend-fieldsales/internal/order"
	"github.com/noah-isme/backend-fieldsales/internal/pricing"
)

// Record is one persisted line of a submitted order. Immutable once built;
// ownership transfers to the sink.
type Record struct {
	ID          string        `json:"id"`
	Retailer    string        `json:"retailer"`
	Salesperson string        `json:"salesperson"`
	Team        string        `json:"team"`
	Email       string        `json:"email"`
	Category    string        `json:"category"`
	Product     string        `json:"product"`
	Quantity    int           `json:"quantity"`
	Amount      pricing.Money `json:"amount"`
	Latitude    string        `json:"latitude"`
	Longitude   string        `json:"longitude"`
	Timestamp   time.Time     `json:"timestamp"`
}

// identity carries the fields every record must resolve before a batch is
// built. Salesperson data comes from the catalog lookup, never from
// re-parsed display output.
type identity struct {
	Retailer    string `validate:"required"`
	Category    string `validate:"required"`
	Salesperson string `validate:"required"`
	Team        string `validate:"required"`
	Email       string `validate:"required,email"`
}

// Builder materializes submission batches from completed drafts.
type Builder struct {
	snapshot *catalog.Snapshot
	validate *validator.Validate
}

// NewBuilder constructs a Builder over the session snapshot.
func NewBuilder(snapshot *catalog.Snapshot) (*Builder, error) {
	if snapshot == nil {
		return nil, common.NewAppError("INTERNAL", "catalog snapshot is required", http.StatusInternalServerError, nil)
	}
	return &Builder{snapshot: snapshot, validate: validator.New()}, nil
}

// Build produces one record per draft line, zero-quantity lines included: the
// product list is the source of truth for what was offered. All records share
// the timestamp and coordinates. Amounts are recomputed from the draft here,
// not trusted from an earlier render. Any precondition violation returns a
// validation error and zero records.
func (b *Builder) Build(d order.Draft, geo Geolocation, now time.Time) ([]Record, error) {
	if !d.Selected() {
		return nil, common.NewAppError("VALIDATION", "category is required", http.StatusUnprocessableEntity, nil)
	}
	retailer, ok := b.snapshot.LookupRetailer(d.Retailer)
	if !ok {
		return nil, common.NewAppError("VALIDATION", "retailer is required", http.StatusUnprocessableEntity, nil)
	}
	id := identity{
		Retailer:    retailer.Name,
		Category:    d.Category,
		Salesperson: retailer.Salesperson,
		Team:        retailer.Team,
		Email:       retailer.Email,
	}
	if err := b.validate.Struct(id); err != nil {
		return nil, common.NewAppError("VALIDATION", "salesperson fields could not be resolved", http.StatusUnprocessableEntity, err)
	}
	if geo.Latitude == "" || geo.Longitude == "" {
		geo = Geolocation{Latitude: "0", Longitude: "0"}
	}

	records := make([]Record, 0, len(d.Lines))
	for _, line := range d.Lines {
		records = append(records, Record{
			ID:          uuid.NewString(),
			Retailer:    retailer.Name,
			Salesperson: retailer.Salesperson,
			Team:        retailer.Team,
			Email:       retailer.Email,
			Category:    d.Category,
			Product:     line.Product,
			Quantity:    line.Quantity,
			Amount:      pricing.LineAmount(line.UnitPrice, line.Quantity),
			Latitude:    geo.Latitude,
			Longitude:   geo.Longitude,
			Timestamp:   now,
		})
	}
	return records, nil
}
