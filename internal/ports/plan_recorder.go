package ports

import (
	"context"
	"time"
)

// One navigation outcome, written to the plan log for diagnosis.
type PlanRecord struct {
	RequestID        string
	SessionID        string
	Token            uint64
	DestinationQuery string
	Outcome          string
	DurationSeconds  *float64
	DistanceMeters   *float64
	PointCount       int
	CreatedAt        time.Time
}

// Port: a sink for navigation outcomes.
type PlanRecorder interface {
	Record(ctx context.Context, rec PlanRecord) error
}
