package routing

import (
	"fmt"
	"navigation-route-service/internal/domain"

	"github.com/twpayne/go-polyline"
)

// DecodePath decodes a precision-5 encoded polyline of (lat, lon) pairs.
// Every decoded point must be a valid coordinate.
func DecodePath(encoded domain.EncodedPath) ([]domain.Coordinates, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: decode polyline: %w", domain.ErrInvalidData, err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("%w: decode polyline: %d trailing bytes", domain.ErrInvalidData, len(rest))
	}

	path := make([]domain.Coordinates, 0, len(coords))
	for i, c := range coords {
		p, err := domain.NewCoordinates(c[0], c[1])
		if err != nil {
			return nil, fmt.Errorf("decode polyline: point #%d: %w", i, err)
		}
		path = append(path, p)
	}

	return path, nil
}

// EncodePath is the inverse of DecodePath.
func EncodePath(path []domain.Coordinates) domain.EncodedPath {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat, p.Lon})
	}
	return domain.EncodedPath(polyline.EncodeCoords(coords))
}
