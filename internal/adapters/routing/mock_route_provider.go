package routing

import (
	"context"
	"fmt"
	"navigation-route-service/internal/domain"
	"sync"
)

type MockRoute struct {
	From, To domain.Coordinates
	Path     []domain.Coordinates
	Seconds  float64
	Meters   float64
}

// MockRouteProvider returns routes from a fixed table and records every call.
// Unknown pairs fail with domain.ErrNoRoute unless Err is set.
type MockRouteProvider struct {
	m   map[[2]domain.Coordinates]MockRoute
	Err error

	mu    sync.Mutex
	calls [][2]domain.Coordinates
}

func NewMockRouteProvider(routes []MockRoute) *MockRouteProvider {
	m := make(map[[2]domain.Coordinates]MockRoute, len(routes))
	for _, r := range routes {
		m[[2]domain.Coordinates{r.From, r.To}] = r
	}
	return &MockRouteProvider{m: m}
}

func (p *MockRouteProvider) Route(ctx context.Context, origin, destination domain.Coordinates) (domain.RouteResult, error) {
	p.mu.Lock()
	p.calls = append(p.calls, [2]domain.Coordinates{origin, destination})
	p.mu.Unlock()

	if p.Err != nil {
		return domain.RouteResult{}, p.Err
	}

	r, ok := p.m[[2]domain.Coordinates{origin, destination}]
	if !ok {
		return domain.RouteResult{}, fmt.Errorf("mock route %v -> %v: %w", origin, destination, domain.ErrNoRoute)
	}

	return domain.RouteResult{
		Path:    append([]domain.Coordinates(nil), r.Path...),
		Summary: domain.RouteSummary{DurationSeconds: r.Seconds, DistanceMeters: r.Meters},
	}, nil
}

// Calls returns the (origin, destination) pairs seen so far, in order.
func (p *MockRouteProvider) Calls() [][2]domain.Coordinates {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][2]domain.Coordinates(nil), p.calls...)
}
