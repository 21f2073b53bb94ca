package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"navigation-route-service/internal/platform/obs"
	"navigation-route-service/internal/ports"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Postgres-backed implementation of the PlanRecorder port.
// Rows are diagnostic history only; nothing reads them back to answer requests.
type PostgresPlanLog struct {
	DB  *sql.DB
	Log *zap.Logger
}

func NewPostgresPlanLog(db *sql.DB, log *zap.Logger) *PostgresPlanLog {
	if log == nil {
		log = zap.NewNop()
	}
	return &PostgresPlanLog{DB: db, Log: log}
}

// Store one navigation outcome.
func (s *PostgresPlanLog) Record(ctx context.Context, rec ports.PlanRecord) (err error) {
	defer obs.Time(ctx, s.Log, "planlog.Record")(&err)

	if s.DB == nil {
		return errors.New("plan log: db is nil")
	}

	if strings.TrimSpace(rec.Outcome) == "" {
		return errors.New("insert plan log: outcome must not be empty")
	}

	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	q := `
	INSERT INTO route_plan_log (
		request_id,
		session_id,
		token,
		destination_query,
		outcome,
		duration_seconds,
		distance_meters,
		point_count,
		created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`

	_, err = s.DB.ExecContext(ctx, q,
		rec.RequestID,
		rec.SessionID,
		int64(rec.Token),
		rec.DestinationQuery,
		rec.Outcome,
		rec.DurationSeconds,
		rec.DistanceMeters,
		rec.PointCount,
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("insert plan log outcome=%q: %w", rec.Outcome, err)
	}

	return nil
}
