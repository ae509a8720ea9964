package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/noah-isme/backend-fieldsales/internal/pricing"
)

// Retailer is an outlet a salesperson visits, together with the salesperson
// assigned to it.
type Retailer struct {
	Name        string `json:"name"`
	Salesperson string `json:"salesperson"`
	Team        string `json:"team"`
	Email       string `json:"email"`
}

// Category is a product grouping used purely as a selection key.
type Category struct {
	Name string `json:"name"`
}

// Product is a sellable item with a unit price in minor units. ID is stable
// for the lifetime of the snapshot and is the key quantity entry uses, so two
// products sharing a display name stay unambiguous.
type Product struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Category string        `json:"category"`
	Price    pricing.Money `json:"price"`
}

// Source supplies the raw catalog data. It is called once at startup; the
// results are treated as immutable for the lifetime of the process.
type Source interface {
	GetRetailers(ctx context.Context) ([]Retailer, error)
	GetCategories(ctx context.Context) ([]Category, error)
	GetProducts(ctx context.Context) ([]Product, error)
}

// Snapshot is an immutable, in-memory view of the catalog. It is safe to
// share across concurrent sessions without locking.
type Snapshot struct {
	retailers  []Retailer
	categories []Category
	products   []Product

	retailerByName map[string]Retailer
	productByID    map[string]Product
	byCategory     map[string][]Product
}

// Load fetches the full catalog from the source and builds a snapshot. Any
// source failure is fatal to session startup; callers are expected not to
// retry mid-session.
func Load(ctx context.Context, src Source) (*Snapshot, error) {
	if src == nil {
		return nil, errors.New("catalog: source is required")
	}
	retailers, err := src.GetRetailers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load retailers: %w", err)
	}
	categories, err := src.GetCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := src.GetProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	snap := &Snapshot{
		retailers:      retailers,
		categories:     categories,
		products:       products,
		retailerByName: make(map[string]Retailer, len(retailers)),
		productByID:    make(map[string]Product, len(products)),
		byCategory:     make(map[string][]Product, len(categories)),
	}
	for _, r := range retailers {
		snap.retailerByName[r.Name] = r
	}
	// Per-category slices preserve the order the source returned.
	for _, p := range products {
		snap.productByID[p.ID] = p
		snap.byCategory[p.Category] = append(snap.byCategory[p.Category], p)
	}
	return snap, nil
}

// LookupRetailer resolves a retailer by name.
func (s *Snapshot) LookupRetailer(name string) (Retailer, bool) {
	r, ok := s.retailerByName[strings.TrimSpace(name)]
	return r, ok
}

// Product resolves a product by its stable identifier.
func (s *Snapshot) Product(id string) (Product, bool) {
	p, ok := s.productByID[id]
	return p, ok
}

// ProductsInCategory returns the products of a category in catalog order. A
// category with no products yields an empty slice, not an error.
func (s *Snapshot) ProductsInCategory(category string) []Product {
	rows := s.byCategory[strings.TrimSpace(category)]
	out := make([]Product, len(rows))
	copy(out, rows)
	return out
}

// Retailers returns all retailers in catalog order.
func (s *Snapshot) Retailers() []Retailer {
	out := make([]Retailer, len(s.retailers))
	copy(out, s.retailers)
	return out
}

// Categories returns all categories in catalog order.
func (s *Snapshot) Categories() []Category {
	out := make([]Category, len(s.categories))
	copy(out, s.categories)
	return out
}
