package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// BeginRun records the start of an import and returns its id.
func (db *DB) BeginRun(ctx context.Context, source string) (uuid.UUID, error) {
	id := uuid.New()
	_, err := db.Pool.Exec(ctx,
		`INSERT INTO import_runs (id, source) VALUES ($1, $2)`, id, source)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record import run: %w", err)
	}
	return id, nil
}

// FinishRun stamps the run with its final counts.
func (db *DB) FinishRun(ctx context.Context, id uuid.UUID, parsed, skipped, failed int) error {
	_, err := db.Pool.Exec(ctx,
		`UPDATE import_runs
		 SET finished_at = NOW(), parsed = $2, skipped = $3, failed = $4
		 WHERE id = $1`, id, parsed, skipped, failed)
	if err != nil {
		return fmt.Errorf("failed to finish import run: %w", err)
	}
	return nil
}
