package order

import (
	"errors"
	"strconv"
	"strings"

	"github.com/noah-isme/backend-fieldsales/internal/catalog"
	"github.com/noah-isme/backend-fieldsales/internal/pricing"
)

// Line is one product's quantity entry within a draft. Amount is derived and
// refreshed by Recompute; it is never authoritative on its own.
type Line struct {
	ProductID string
	Product   string
	UnitPrice pricing.Money
	Quantity  int
	Amount    pricing.Money
}

// Draft is the in-progress, uncommitted order for one retailer/category pair.
// The zero value (empty Category) means no category has been selected yet; a
// Draft with a Category but no Lines means the selected category has no
// products.
type Draft struct {
	Retailer string
	Category string
	Lines    []Line
	Total    pricing.Money
}

// Selected reports whether a category has been chosen for this draft.
func (d Draft) Selected() bool {
	return strings.TrimSpace(d.Category) != ""
}

// Engine binds category selections to catalog prices and keeps draft totals
// consistent across edits.
type Engine struct {
	snapshot *catalog.Snapshot
}

// NewEngine constructs an Engine over the session's catalog snapshot.
func NewEngine(snapshot *catalog.Snapshot) (*Engine, error) {
	if snapshot == nil {
		return nil, errors.New("order: catalog snapshot is required")
	}
	return &Engine{snapshot: snapshot}, nil
}

// SelectCategory starts a fresh draft with one zero-quantity line per product
// of the category, in catalog order. Any quantities from a previously
// selected category are discarded.
func (e *Engine) SelectCategory(retailer, category string) Draft {
	category = strings.TrimSpace(category)
	products := e.snapshot.ProductsInCategory(category)
	lines := make([]Line, 0, len(products))
	for _, p := range products {
		lines = append(lines, Line{
			ProductID: p.ID,
			Product:   p.Name,
			UnitPrice: p.Price,
		})
	}
	d := Draft{
		Retailer: strings.TrimSpace(retailer),
		Category: category,
		Lines:    lines,
	}
	Recompute(&d)
	return d
}

// SetQuantity updates exactly one line's quantity and recomputes the draft.
// Negative quantities are coerced to zero. Unknown product IDs are ignored;
// the draft's line set is fixed by the selected category.
func SetQuantity(d *Draft, productID string, qty int) {
	if qty < 0 {
		qty = 0
	}
	for i := range d.Lines {
		if d.Lines[i].ProductID == productID {
			d.Lines[i].Quantity = qty
			break
		}
	}
	Recompute(d)
}

// Totals computes per-line amounts and the category total for the given
// lines. It is a pure function of its input.
func Totals(lines []Line) ([]pricing.Money, pricing.Money) {
	amounts := make([]pricing.Money, len(lines))
	var total pricing.Money
	for i, line := range lines {
		amounts[i] = pricing.LineAmount(line.UnitPrice, line.Quantity)
		total += amounts[i]
	}
	return amounts, total
}

// Recompute refreshes every line amount and the category total from scratch.
// Recomputing the whole draft on each edit keeps totals consistent even when
// the line set changes size between edits.
func Recompute(d *Draft) {
	amounts, total := Totals(d.Lines)
	for i := range d.Lines {
		d.Lines[i].Amount = amounts[i]
	}
	d.Total = total
}

// CoerceQuantity turns arbitrary quantity input into a non-negative integer.
// Absent, blank, malformed, and negative values all coerce to zero so data
// entry is never interrupted by a validation round-trip.
func CoerceQuantity(v any) int {
	switch q := v.(type) {
	case nil:
		return 0
	case int:
		if q < 0 {
			return 0
		}
		return q
	case float64:
		if q < 0 {
			return 0
		}
		return int(q)
	case string:
		trimmed := strings.TrimSpace(q)
		if trimmed == "" {
			return 0
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil || parsed < 0 {
			return 0
		}
		return parsed
	default:
		return 0
	}
}
