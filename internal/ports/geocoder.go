package ports

import (
	"context"
	"navigation-route-service/internal/domain"
)

// Contract for resolving free-text destinations to coordinates.
type Geocoder interface {
	// Resolve a non-empty query to its best match.
	// Fails with domain.ErrNotFound when the provider has no match.
	Resolve(ctx context.Context, query string) (domain.GeocodeResult, error)
}
