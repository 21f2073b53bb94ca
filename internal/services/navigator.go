package services

import (
	"context"
	"errors"
	"fmt"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/platform/obs"
	"navigation-route-service/internal/ports"
	"time"

	"go.uber.org/zap"
)

type NavigateRequest struct {
	// Client session; empty disables stale-response detection.
	SessionID   string
	Origin      domain.Coordinates
	Destination string
}

// Navigator wraps RoutePlanner with per-session request tokens and a plan log.
//
// Each request with a session takes the next token before planning. When the
// plan finishes, a result whose token is no longer the session's latest is
// discarded with domain.ErrStaleResponse, so a slow earlier request can never
// overwrite a newer one.
type Navigator struct {
	Planner   *RoutePlanner
	Sequencer ports.RequestSequencer
	Recorder  ports.PlanRecorder // optional
	Log       *zap.Logger
}

func NewNavigator(
	planner *RoutePlanner,
	sequencer ports.RequestSequencer,
	recorder ports.PlanRecorder,
	log *zap.Logger,
) (*Navigator, error) {
	if planner == nil {
		return nil, errors.New("new navigator: planner must be non-nil")
	}
	if sequencer == nil {
		return nil, errors.New("new navigator: sequencer must be non-nil")
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Navigator{Planner: planner, Sequencer: sequencer, Recorder: recorder, Log: log}, nil
}

func (n *Navigator) Navigate(ctx context.Context, req NavigateRequest) (*domain.RouteResult, error) {
	var token uint64
	if req.SessionID != "" {
		t, err := n.Sequencer.Next(ctx, req.SessionID)
		if err != nil {
			return nil, fmt.Errorf("navigate: issue request token: %w", err)
		}
		token = t
	}

	res, err := n.Planner.PlanRoute(ctx, req.Origin, req.Destination)

	if req.SessionID != "" {
		latest, lerr := n.Sequencer.Latest(ctx, req.SessionID)
		switch {
		case lerr != nil:
			n.Log.Warn("request token lookup failed",
				zap.String("req_id", obs.RequestID(ctx)),
				zap.String("session", req.SessionID),
				zap.Error(lerr),
			)
		case latest != token:
			res = nil
			err = fmt.Errorf("navigate: token %d superseded by %d: %w", token, latest, domain.ErrStaleResponse)
		}
	}

	n.record(ctx, req, token, res, err)

	if err != nil {
		return nil, err
	}
	return res, nil
}

// record writes the outcome to the plan log. Failures are logged, not returned.
func (n *Navigator) record(
	ctx context.Context,
	req NavigateRequest,
	token uint64,
	res *domain.RouteResult,
	planErr error,
) {
	if n.Recorder == nil {
		return
	}

	rec := ports.PlanRecord{
		RequestID:        obs.RequestID(ctx),
		SessionID:        req.SessionID,
		Token:            token,
		DestinationQuery: req.Destination,
		Outcome:          domain.OutcomeKind(planErr),
		CreatedAt:        time.Now().UTC(),
	}
	if res != nil {
		d, m := res.Summary.DurationSeconds, res.Summary.DistanceMeters
		rec.DurationSeconds = &d
		rec.DistanceMeters = &m
		rec.PointCount = len(res.Path)
	}

	if err := n.Recorder.Record(context.WithoutCancel(ctx), rec); err != nil {
		n.Log.Warn("plan log write failed", zap.String("req_id", rec.RequestID), zap.Error(err))
	}
}
