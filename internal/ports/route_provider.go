package ports

import (
	"context"
	"navigation-route-service/internal/domain"
)

// Contract for retrieving a decoded driving route between two points.
type RouteProvider interface {
	// Return the route from origin to destination, in that order.
	// Fails with domain.ErrNoRoute when the provider cannot plot one.
	Route(ctx context.Context, origin, destination domain.Coordinates) (domain.RouteResult, error)
}
