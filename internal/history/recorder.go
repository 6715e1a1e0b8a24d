// Package history records feed generation runs so operators can see what
// was produced for which profile and when.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Entry is one recorded generation.
type Entry struct {
	ID           uuid.UUID `json:"id"`
	ProfileID    uuid.UUID `json:"profileId"`
	FileName     string    `json:"fileName"`
	ProductCount int       `json:"productCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Recorder writes and reads the generation log.
type Recorder struct {
	db DBTX
}

// NewRecorder creates a Recorder backed by the given pool or transaction.
func NewRecorder(db DBTX) *Recorder {
	return &Recorder{db: db}
}

// Record appends one generation to the log.
func (r *Recorder) Record(ctx context.Context, profileID uuid.UUID, fileName string, productCount int) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO bulk_generations (id, profile_id, file_name, product_count)
		VALUES ($1, $2, $3, $4)`,
		uuid.New(), profileID, fileName, productCount,
	)
	if err != nil {
		return fmt.Errorf("record generation: %w", err)
	}
	return nil
}

// ListByProfile returns the most recent generations for a profile,
// newest first.
func (r *Recorder) ListByProfile(ctx context.Context, profileID uuid.UUID, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, profile_id, file_name, product_count, created_at
		FROM bulk_generations
		WHERE profile_id = $1
		ORDER BY created_at DESC
		LIMIT $2`,
		profileID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.ProfileID, &e.FileName, &e.ProductCount, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan generation: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
