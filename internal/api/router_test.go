package api

import (
	"navigation-route-service/internal/adapters/geocode"
	"navigation-route-service/internal/adapters/routing"
	"navigation-route-service/internal/adapters/tokens"
	"navigation-route-service/internal/domain"
	"navigation-route-service/internal/services"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRouterEndToEnd(t *testing.T) {
	origin := domain.Coordinates{Lat: 10, Lon: 20}
	dest := domain.Coordinates{Lat: 30, Lon: 40}

	geo := geocode.NewMockGeocoder(map[string]domain.Coordinates{"Somewhere": dest})
	router := routing.NewMockRouteProvider([]routing.MockRoute{
		{From: origin, To: dest, Path: []domain.Coordinates{origin, dest}, Seconds: 60, Meters: 1000},
	})

	planner, err := services.NewRoutePlanner(geo, router)
	require.NoError(t, err)
	nav, err := services.NewNavigator(planner, tokens.NewMemorySequencer(), nil, nil)
	require.NoError(t, err)

	core, logs := observer.New(zap.InfoLevel)
	h := NewRouter(nav, nil, zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/routes",
		strings.NewReader(`{"origin":{"latitude":10,"longitude":20},"destination":"Somewhere"}`))
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	assert.Contains(t, rec.Body.String(), `"distance_km":1`)

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-42", fields["req_id"])
	assert.EqualValues(t, http.StatusOK, fields["status"])

	// Unknown destination: router never reached.
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/routes",
		strings.NewReader(`{"origin":{"latitude":10,"longitude":20},"destination":"Nowhere"}`)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	assert.Len(t, router.Calls(), 1)
}

func TestRouterHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(nil, nil, zap.NewNop()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
