package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/platform/obs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type nominatimPlace struct {
	Lat         string            `json:"lat"`
	Lon         string            `json:"lon"`
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
}

// NominatimGeocoder implements Geocoder using the OpenStreetMap Nominatim
// search API. It issues exactly one request per Resolve call and never retries.
//
// The geocoder is safe for concurrent use.
type NominatimGeocoder struct {
	session   *http.Client
	baseURL   string
	userAgent string
	selector  domain.Selector[domain.GeocodeResult]
	log       *zap.Logger
}

type Option func(*NominatimGeocoder)

// WithSelector replaces the default FirstMatchStrategy.
func WithSelector(s domain.Selector[domain.GeocodeResult]) Option {
	return func(g *NominatimGeocoder) { g.selector = s }
}

func NewNominatimGeocoder(
	baseURL string,
	userAgent string,
	timeout time.Duration,
	log *zap.Logger,
	opts ...Option,
) (*NominatimGeocoder, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("nominatim base url is empty")
	}
	if strings.TrimSpace(userAgent) == "" {
		return nil, errors.New("nominatim user agent is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}

	g := &NominatimGeocoder{
		session:   &http.Client{Timeout: timeout},
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: userAgent,
		selector:  domain.FirstMatchStrategy[domain.GeocodeResult]{},
		log:       log,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// Resolve looks up query and returns the selected match.
// The query is passed to the provider as-is.
func (g *NominatimGeocoder) Resolve(ctx context.Context, query string) (_ domain.GeocodeResult, err error) {
	defer obs.Time(ctx, g.log, "nominatim.Resolve")(&err)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"/search", nil)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("%w: create request: %w", domain.ErrGeocodeTransport, err)
	}

	q := req.URL.Query()
	q.Set("q", query)
	q.Set("format", "json")
	// Address details are requested to match the provider's expected request
	// shape; they are not used downstream.
	q.Set("addressdetails", "1")
	q.Set("limit", "1")
	req.URL.RawQuery = q.Encode()

	req.Header.Set("User-Agent", g.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := g.session.Do(req)
	if err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("%w: execute request: %w", domain.ErrGeocodeTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return domain.GeocodeResult{}, fmt.Errorf(
			"%w: unexpected status %d: %s",
			domain.ErrGeocodeTransport, resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.GeocodeResult{}, fmt.Errorf("%w: decode search response: %w", domain.ErrGeocodeTransport, err)
	}

	matches := make([]domain.GeocodeResult, 0, len(places))
	for i, p := range places {
		coords, err := domain.ParseCoordinates(p.Lat, p.Lon)
		if err != nil {
			return domain.GeocodeResult{}, fmt.Errorf("nominatim resolve %q: match #%d: %w", query, i+1, err)
		}
		matches = append(matches, domain.GeocodeResult{Coordinates: coords, DisplayName: p.DisplayName})
	}

	match, ok := g.selector.Select(matches)
	if !ok {
		return domain.GeocodeResult{}, fmt.Errorf("nominatim resolve %q: %w", query, domain.ErrNotFound)
	}

	return match, nil
}
