package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/platform/obs"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

type directionsRequest struct {
	Coordinates [][]float64 `json:"coordinates"`
	Format      string      `json:"format"`
}

type directionsResponse struct {
	Routes []struct {
		Summary struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
		} `json:"summary"`
		Geometry *string `json:"geometry"`
	} `json:"routes"`
}

// ORSRouteProvider implements RouteProvider using the OpenRouteService
// directions endpoint.
//
// Each Route call issues exactly one POST; there is no retry and no caching.
// The provider is safe for concurrent use.
type ORSRouteProvider struct {
	session  *http.Client
	apiKey   string
	baseURL  string
	profile  string
	selector domain.Selector[domain.RouteCandidate]
	log      *zap.Logger
}

type Option func(*ORSRouteProvider)

// WithSelector replaces the default FirstMatchStrategy.
func WithSelector(s domain.Selector[domain.RouteCandidate]) Option {
	return func(o *ORSRouteProvider) { o.selector = s }
}

func NewORSRouteProvider(
	apiKey string,
	baseURL string,
	profile string,
	timeout time.Duration,
	log *zap.Logger,
	opts ...Option,
) (*ORSRouteProvider, error) {
	if apiKey == "" {
		return nil, errors.New("ORS api key is empty")
	}
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("ORS base url is empty")
	}
	if profile == "" {
		profile = "driving-car"
	}
	if log == nil {
		log = zap.NewNop()
	}

	provider := &ORSRouteProvider{
		session:  &http.Client{Timeout: timeout},
		apiKey:   apiKey,
		baseURL:  strings.TrimRight(baseURL, "/"),
		profile:  profile,
		selector: domain.FirstMatchStrategy[domain.RouteCandidate]{},
		log:      log,
	}
	for _, opt := range opts {
		opt(provider)
	}

	return provider, nil
}

// Route requests a route from origin to destination and decodes its geometry.
func (o *ORSRouteProvider) Route(
	ctx context.Context,
	origin domain.Coordinates,
	destination domain.Coordinates,
) (_ domain.RouteResult, err error) {
	defer obs.Time(ctx, o.log, "ors.Route")(&err)

	endpoint := fmt.Sprintf("%s/v2/directions/%s", o.baseURL, o.profile)

	// ORS expects [lon, lat] per point, origin first.
	payload, err := json.Marshal(directionsRequest{
		Coordinates: [][]float64{origin.CoordsToList(), destination.CoordsToList()},
		Format:      "json",
	})
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("marshal directions request: %w", err)
	}

	req, err := o.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: %w", domain.ErrRouteTransport, err)
	}

	raw, err := o.do(req)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: directions request failed: %w", domain.ErrRouteTransport, err)
	}

	var dr directionsResponse
	if err := json.Unmarshal(raw, &dr); err != nil {
		return domain.RouteResult{}, fmt.Errorf("%w: decode directions response: %w", domain.ErrRouteTransport, err)
	}

	candidates := make([]domain.RouteCandidate, 0, len(dr.Routes))
	for _, r := range dr.Routes {
		c := domain.RouteCandidate{
			Summary: domain.RouteSummary{
				DurationSeconds: r.Summary.Duration,
				DistanceMeters:  r.Summary.Distance,
			},
		}
		if r.Geometry != nil {
			c.Geometry = domain.EncodedPath(*r.Geometry)
		}
		candidates = append(candidates, c)
	}

	chosen, ok := o.selector.Select(candidates)
	if !ok || chosen.Geometry == "" {
		o.log.Error("ors returned no usable route",
			zap.String("req_id", obs.RequestID(ctx)),
			zap.Int("routes", len(candidates)),
			zap.ByteString("body", raw),
		)
		return domain.RouteResult{}, fmt.Errorf("ors route: %w", domain.ErrNoRoute)
	}

	path, err := DecodePath(chosen.Geometry)
	if err != nil {
		return domain.RouteResult{}, fmt.Errorf("ors route: %w", err)
	}

	return domain.RouteResult{
		Path:    path,
		Summary: chosen.Summary,
	}, nil
}
