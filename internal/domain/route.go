package domain

// Best match for a destination query. Lives for a single navigation
// request and is never persisted.
type GeocodeResult struct {
	Coordinates Coordinates
	DisplayName string
}

// Compact polyline string as returned by the routing provider.
type EncodedPath string

// Provider-reported route metrics, copied verbatim.
type RouteSummary struct {
	DurationSeconds float64
	DistanceMeters  float64
}

// One route offered by the routing provider, before selection and decoding.
// An empty Geometry means the provider sent no usable path.
type RouteCandidate struct {
	Geometry EncodedPath
	Summary  RouteSummary
}

// Represents the decoded route between an origin and a resolved destination.
// Path is in traversal order, origin-adjacent point first.
type RouteResult struct {
	Destination GeocodeResult
	Path        []Coordinates
	Summary     RouteSummary
}
