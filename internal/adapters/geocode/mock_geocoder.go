package geocode

import (
	"context"
	"fmt"
	"navigation-route-service/internal/domain"
	"sync"
)

// MockGeocoder resolves queries from a fixed table and counts calls.
// Queries missing from the table resolve to domain.ErrNotFound; queries
// listed in Failures return the given error.
type MockGeocoder struct {
	Places   map[string]domain.Coordinates
	Failures map[string]error

	mu    sync.Mutex
	calls []string
}

func NewMockGeocoder(places map[string]domain.Coordinates) *MockGeocoder {
	return &MockGeocoder{Places: places, Failures: map[string]error{}}
}

func (m *MockGeocoder) Resolve(ctx context.Context, query string) (domain.GeocodeResult, error) {
	m.mu.Lock()
	m.calls = append(m.calls, query)
	m.mu.Unlock()

	if err, ok := m.Failures[query]; ok {
		return domain.GeocodeResult{}, err
	}

	c, ok := m.Places[query]
	if !ok {
		return domain.GeocodeResult{}, fmt.Errorf("mock resolve %q: %w", query, domain.ErrNotFound)
	}

	return domain.GeocodeResult{Coordinates: c, DisplayName: query}, nil
}

// Calls returns the queries seen so far, in order.
func (m *MockGeocoder) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}
