package domain

import (
	"fmt"
	"math"
	"strconv"
)

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// NewCoordinates rejects NaN, infinities and values outside
// lat [-90, 90] / lon [-180, 180].
func NewCoordinates(lat, lon float64) (Coordinates, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return Coordinates{}, fmt.Errorf("%w: latitude %v out of range", ErrInvalidData, lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) || lon < -180 || lon > 180 {
		return Coordinates{}, fmt.Errorf("%w: longitude %v out of range", ErrInvalidData, lon)
	}

	return Coordinates{Lat: lat, Lon: lon}, nil
}

// ParseCoordinates builds Coordinates from the numeric-looking strings
// geocoding providers return.
func ParseCoordinates(lat, lon string) (Coordinates, error) {
	la, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: parse latitude %q: %w", ErrInvalidData, lat, err)
	}

	lo, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%w: parse longitude %q: %w", ErrInvalidData, lon, err)
	}

	return NewCoordinates(la, lo)
}

// Return coordinates as [lon, lat] for external API compatibility.
func (c Coordinates) CoordsToList() []float64 { return []float64{c.Lon, c.Lat} }
