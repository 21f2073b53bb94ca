package dto

import "github.com/paulmach/orb/geojson"

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Origin is null when the device could not provide a location.
type RouteRequest struct {
	Origin      *Coordinates `json:"origin"`
	Destination string       `json:"destination"`
}

type RouteSummaryResponse struct {
	DurationSeconds float64 `json:"duration_seconds"`
	DistanceMeters  float64 `json:"distance_meters"`
	DurationMinutes float64 `json:"duration_minutes"`
	DistanceKm      float64 `json:"distance_km"`
}

type DestinationResponse struct {
	Coordinates
	DisplayName string `json:"display_name,omitempty"`
}

type RouteResponse struct {
	Destination DestinationResponse  `json:"destination"`
	Path        []Coordinates        `json:"path"`
	Summary     RouteSummaryResponse `json:"summary"`
	Geometry    *geojson.Geometry    `json:"geometry"`
}
