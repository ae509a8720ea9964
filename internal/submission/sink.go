package submission

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrSinkUnavailable indicates the sink dependency is not configured.
var ErrSinkUnavailable = errors.New("submission: sink unavailable")

// Sink receives finished records for durable storage. Each append is an
// independent call; no batch or transactional API is assumed.
type Sink interface {
	Append(ctx context.Context, rec Record) error
}

// PGSink appends records to the submissions table.
type PGSink struct {
	Pool *pgxpool.Pool
}

// Append persists a single record. A failure never corrupts records already
// appended by earlier calls.
func (s PGSink) Append(ctx context.Context, rec Record) error {
	if s.Pool == nil {
		return ErrSinkUnavailable
	}
	_, err := s.Pool.Exec(ctx, `INSERT INTO submissions
(id, retailer, salesperson, team, email, category, product, quantity, amount_minor, latitude, longitude, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		rec.ID, rec.Retailer, rec.Salesperson, rec.Team, rec.Email, rec.Category,
		rec.Product, rec.Quantity, rec.Amount, rec.Latitude, rec.Longitude, rec.Timestamp)
	if err != nil {
		return fmt.Errorf("append submission %s: %w", rec.ID, err)
	}
	return nil
}
