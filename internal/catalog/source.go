package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSourceUnavailable indicates the catalog store dependency is not configured.
var ErrSourceUnavailable = errors.New("catalog: source unavailable")

// PGSource reads the catalog from Postgres. Rows are ordered by their seeded
// position so the snapshot mirrors the sheet the field team maintains.
type PGSource struct {
	Pool *pgxpool.Pool
}

// GetRetailers returns every retailer with its assigned salesperson.
func (s PGSource) GetRetailers(ctx context.Context) ([]Retailer, error) {
	if s.Pool == nil {
		return nil, ErrSourceUnavailable
	}
	rows, err := s.Pool.Query(ctx, `SELECT name, salesperson, team, email FROM retailers ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query retailers: %w", err)
	}
	defer rows.Close()

	var out []Retailer
	for rows.Next() {
		var r Retailer
		if err := rows.Scan(&r.Name, &r.Salesperson, &r.Team, &r.Email); err != nil {
			return nil, fmt.Errorf("scan retailer: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetCategories returns every category.
func (s PGSource) GetCategories(ctx context.Context) ([]Category, error) {
	if s.Pool == nil {
		return nil, ErrSourceUnavailable
	}
	rows, err := s.Pool.Query(ctx, `SELECT name FROM categories ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var out []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.Name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// GetProducts returns every product with its unit price in minor units.
func (s PGSource) GetProducts(ctx context.Context) ([]Product, error) {
	if s.Pool == nil {
		return nil, ErrSourceUnavailable
	}
	rows, err := s.Pool.Query(ctx, `SELECT id, name, category, price_minor FROM products ORDER BY position, name`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// StaticSource serves a fixed catalog from memory. Used by tests and tooling
// that need a snapshot without network access.
type StaticSource struct {
	RetailerRows []Retailer
	CategoryRows []Category
	ProductRows  []Product
	Err          error
}

func (s StaticSource) GetRetailers(context.Context) ([]Retailer, error) {
	return s.RetailerRows, s.Err
}

func (s StaticSource) GetCategories(context.Context) ([]Category, error) {
	return s.CategoryRows, s.Err
}

func (s StaticSource) GetProducts(context.Context) ([]Product, error) {
	return s.ProductRows, s.Err
}
