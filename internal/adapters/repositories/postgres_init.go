package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the plan log schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPlanLogQuery := `
	CREATE TABLE IF NOT EXISTS route_plan_log (
		id BIGSERIAL PRIMARY KEY,
		request_id TEXT NOT NULL DEFAULT '',
		session_id TEXT NOT NULL DEFAULT '',
		token BIGINT NOT NULL DEFAULT 0,
		destination_query TEXT NOT NULL,
		outcome TEXT NOT NULL,
		duration_seconds DOUBLE PRECISION,
		distance_meters DOUBLE PRECISION,
		point_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_route_plan_log_outcome_created
    ON route_plan_log(outcome, created_at);
	`

	statements := []string{
		createPlanLogQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
