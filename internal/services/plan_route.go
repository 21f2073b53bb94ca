package services

import (
	"context"
	"errors"
	"fmt"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/ports"
)

// RoutePlanner is the two-stage route resolution pipeline.
//
// The geocoding stage must succeed before the routing stage runs, and the two
// provider calls for one request are never issued concurrently.
type RoutePlanner struct {
	Geocoder ports.Geocoder
	Router   ports.RouteProvider
}

func NewRoutePlanner(geocoder ports.Geocoder, router ports.RouteProvider) (*RoutePlanner, error) {
	if geocoder == nil || router == nil {
		return nil, errors.New("new route planner: geocoder and router must be non-nil")
	}
	return &RoutePlanner{Geocoder: geocoder, Router: router}, nil
}

// PlanRoute resolves destinationText and plots a route to it from origin.
// Errors from either stage are returned with their kind intact.
func (p *RoutePlanner) PlanRoute(
	ctx context.Context,
	origin domain.Coordinates,
	destinationText string,
) (*domain.RouteResult, error) {
	match, err := p.Geocoder.Resolve(ctx, destinationText)
	if err != nil {
		return nil, fmt.Errorf("plan route: geocode: %w", err)
	}

	route, err := p.Router.Route(ctx, origin, match.Coordinates)
	if err != nil {
		return nil, fmt.Errorf("plan route: route to %v: %w", match.Coordinates, err)
	}

	route.Destination = match
	return &route, nil
}
