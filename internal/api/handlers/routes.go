package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"navigation-route-service/internal/api/dto"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/platform/obs"
	"navigation-route-service/internal/services"
	"net/http"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"
)

const (
	SessionHeader = "X-Session-ID"
	maxBodyBytes  = 16 << 10
)

type navigator interface {
	Navigate(ctx context.Context, req services.NavigateRequest) (*domain.RouteResult, error)
}

// RouteHandler turns a device position and destination text into a route.
type RouteHandler struct {
	Navigator navigator
	Log       *zap.Logger
}

func (h *RouteHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.RouteRequest

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	// A missing device location means no route can be requested at all.
	if req.Origin == nil {
		writeError(w, r, http.StatusBadRequest, "current location unavailable")
		return
	}
	origin, err := domain.NewCoordinates(req.Origin.Latitude, req.Origin.Longitude)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "origin must be a valid latitude/longitude")
		return
	}

	if strings.TrimSpace(req.Destination) == "" {
		writeError(w, r, http.StatusBadRequest, "destination is required")
		return
	}

	res, err := h.Navigator.Navigate(r.Context(), services.NavigateRequest{
		SessionID:   strings.TrimSpace(r.Header.Get(SessionHeader)),
		Origin:      origin,
		Destination: req.Destination,
	})
	if err != nil {
		status := statusFor(err)
		if status >= http.StatusInternalServerError {
			h.logger().Error("navigate failed", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		} else {
			h.logger().Info("navigate rejected", zap.String("req_id", obs.RequestID(r.Context())), zap.Error(err))
		}
		writeError(w, r, status, domain.UserMessage(err))
		return
	}

	writeJSON(w, r, http.StatusOK, toRouteResponse(res))
}

func (h *RouteHandler) logger() *zap.Logger {
	if h.Log == nil {
		return zap.L()
	}
	return h.Log
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrNoRoute):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrStaleResponse):
		return http.StatusConflict
	case errors.Is(err, domain.ErrTransport), errors.Is(err, domain.ErrInvalidData):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func toRouteResponse(res *domain.RouteResult) dto.RouteResponse {
	path := make([]dto.Coordinates, 0, len(res.Path))
	line := make(orb.LineString, 0, len(res.Path))
	for _, p := range res.Path {
		path = append(path, dto.Coordinates{Latitude: p.Lat, Longitude: p.Lon})
		line = append(line, orb.Point{p.Lon, p.Lat})
	}

	// Minutes and kilometres are display conveniences; the raw provider
	// values are returned alongside unchanged.
	return dto.RouteResponse{
		Destination: dto.DestinationResponse{
			Coordinates: dto.Coordinates{
				Latitude:  res.Destination.Coordinates.Lat,
				Longitude: res.Destination.Coordinates.Lon,
			},
			DisplayName: res.Destination.DisplayName,
		},
		Path: path,
		Summary: dto.RouteSummaryResponse{
			DurationSeconds: res.Summary.DurationSeconds,
			DistanceMeters:  res.Summary.DistanceMeters,
			DurationMinutes: math.Round(res.Summary.DurationSeconds/60*10) / 10,
			DistanceKm:      math.Round(res.Summary.DistanceMeters/1000*100) / 100,
		},
		Geometry: geojson.NewGeometry(line),
	}
}
