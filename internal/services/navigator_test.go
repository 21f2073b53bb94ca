package services

import (
	"context"
	"errors"
	"navigation-route-service/internal/adapters/routing"
	"navigation-route-service/internal/adapters/tokens"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/platform/obs"
	"navigation-route-service/internal/ports"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryRecorder struct {
	mu   sync.Mutex
	recs []ports.PlanRecord
	err  error
}

func (r *memoryRecorder) Record(ctx context.Context, rec ports.PlanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return r.err
}

func (r *memoryRecorder) records() []ports.PlanRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]ports.PlanRecord(nil), r.recs...)
}

// gatedGeocoder blocks queries listed in gates until their channel is closed.
type gatedGeocoder struct {
	places  map[string]domain.Coordinates
	gates   map[string]chan struct{}
	started chan string
}

func (g *gatedGeocoder) Resolve(ctx context.Context, query string) (domain.GeocodeResult, error) {
	g.started <- query
	if gate, ok := g.gates[query]; ok {
		<-gate
	}
	c, ok := g.places[query]
	if !ok {
		return domain.GeocodeResult{}, domain.ErrNotFound
	}
	return domain.GeocodeResult{Coordinates: c, DisplayName: query}, nil
}

func TestNavigatorDiscardsStaleResponse(t *testing.T) {
	slowGate := make(chan struct{})
	geo := &gatedGeocoder{
		places:  map[string]domain.Coordinates{"Avenida Paulista": paulist, "Parque Ibirapuera": ibira},
		gates:   map[string]chan struct{}{"Avenida Paulista": slowGate},
		started: make(chan string, 2),
	}
	router := routing.NewMockRouteProvider([]routing.MockRoute{
		{From: home, To: paulist, Path: []domain.Coordinates{home, paulist}, Seconds: 540, Meters: 3200},
		{From: home, To: ibira, Path: []domain.Coordinates{home, ibira}, Seconds: 900, Meters: 5100},
	})
	planner, err := NewRoutePlanner(geo, router)
	require.NoError(t, err)

	rec := &memoryRecorder{}
	nav, err := NewNavigator(planner, tokens.NewMemorySequencer(), rec, zap.NewNop())
	require.NoError(t, err)

	type outcome struct {
		res *domain.RouteResult
		err error
	}
	slow := make(chan outcome, 1)

	go func() {
		res, err := nav.Navigate(context.Background(), NavigateRequest{SessionID: "phone-a", Origin: home, Destination: "Avenida Paulista"})
		slow <- outcome{res, err}
	}()
	require.Equal(t, "Avenida Paulista", <-geo.started)

	fast, err := nav.Navigate(context.Background(), NavigateRequest{SessionID: "phone-a", Origin: home, Destination: "Parque Ibirapuera"})
	<-geo.started
	require.NoError(t, err)
	assert.Equal(t, ibira, fast.Destination.Coordinates)

	close(slowGate)
	late := <-slow
	require.ErrorIs(t, late.err, domain.ErrStaleResponse)
	assert.Nil(t, late.res)

	recs := rec.records()
	require.Len(t, recs, 2)
	assert.Equal(t, "ok", recs[0].Outcome)
	assert.EqualValues(t, 2, recs[0].Token)
	assert.Equal(t, "stale", recs[1].Outcome)
	assert.EqualValues(t, 1, recs[1].Token)
}

func TestNavigatorWithoutSessionSkipsTokens(t *testing.T) {
	planner, _, _ := newTestPlanner(t)
	seq := tokens.NewMemorySequencer()
	rec := &memoryRecorder{}

	nav, err := NewNavigator(planner, seq, rec, nil)
	require.NoError(t, err)

	ctx := obs.WithRequestID(context.Background(), "req-7")
	res, err := nav.Navigate(ctx, NavigateRequest{Origin: home, Destination: "Avenida Paulista"})
	require.NoError(t, err)
	assert.Len(t, res.Path, 2)

	recs := rec.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "req-7", recs[0].RequestID)
	assert.Zero(t, recs[0].Token)
	require.NotNil(t, recs[0].DurationSeconds)
	assert.Equal(t, 540.0, *recs[0].DurationSeconds)
	assert.Equal(t, 2, recs[0].PointCount)
}

func TestNavigatorRecordsFailuresAndIgnoresRecorderErrors(t *testing.T) {
	planner, _, _ := newTestPlanner(t)
	rec := &memoryRecorder{err: errors.New("db down")}

	nav, err := NewNavigator(planner, tokens.NewMemorySequencer(), rec, nil)
	require.NoError(t, err)

	_, err = nav.Navigate(context.Background(), NavigateRequest{SessionID: "s", Origin: home, Destination: "Atlantis"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	recs := rec.records()
	require.Len(t, recs, 1)
	assert.Equal(t, "not_found", recs[0].Outcome)
	assert.Nil(t, recs[0].DurationSeconds)
}

func TestNavigatorSequentialRequestsAreNotStale(t *testing.T) {
	planner, _, _ := newTestPlanner(t)
	nav, err := NewNavigator(planner, tokens.NewMemorySequencer(), nil, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := nav.Navigate(context.Background(), NavigateRequest{SessionID: "s", Origin: home, Destination: "Avenida Paulista"})
		require.NoError(t, err)
	}
}
