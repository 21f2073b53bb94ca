package domain

import (
	"errors"
	"fmt"
)

var (
	// The geocoding provider returned zero matches.
	ErrNotFound = errors.New("destination not found")
	// The routing provider returned no route or no geometry.
	ErrNoRoute = errors.New("no route")
	// Network, HTTP status or response decoding failure from a provider.
	ErrTransport = errors.New("transport failure")
	// A provider returned coordinates or a path that cannot be trusted.
	ErrInvalidData = errors.New("invalid provider data")
	// Transport failures attributed to the stage that produced them.
	ErrGeocodeTransport = fmt.Errorf("%w: geocoding", ErrTransport)
	ErrRouteTransport   = fmt.Errorf("%w: routing", ErrTransport)
	// A newer request for the same session superseded this one.
	ErrStaleResponse = errors.New("stale response")
)

// UserMessage maps an error from the navigation pipeline to the text shown
// to the user.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrNotFound):
		return "destination not found"
	case errors.Is(err, ErrNoRoute):
		return "could not plot a route"
	case errors.Is(err, ErrInvalidData):
		return "received invalid data from the map provider"
	case errors.Is(err, ErrStaleResponse):
		return "superseded by a newer request"
	case errors.Is(err, ErrGeocodeTransport):
		return "failed to look up destination"
	case errors.Is(err, ErrRouteTransport):
		return "failed to fetch the route"
	case errors.Is(err, ErrTransport):
		return "failed to reach the map provider"
	default:
		return "internal server error"
	}
}

// OutcomeKind names the outcome of a navigation request for the plan log.
func OutcomeKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrNoRoute):
		return "no_route"
	case errors.Is(err, ErrInvalidData):
		return "invalid_data"
	case errors.Is(err, ErrStaleResponse):
		return "stale"
	case errors.Is(err, ErrTransport):
		return "transport_failure"
	default:
		return "error"
	}
}
