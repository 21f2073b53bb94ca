package api

import (
	"navigation-route-service/internal/api/handlers"
	"navigation-route-service/internal/services"
	"net/http"

	"go.uber.org/zap"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(nav *services.Navigator, checks map[string]handlers.Check, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteHandler{Navigator: nav, Log: log}
	healthHandler := &handlers.HealthHandler{Checks: checks}

	mux.HandleFunc("/health", healthHandler.Health)
	mux.HandleFunc("/routes", routeHandler.Plan)

	return requestIDMiddleware(loggingMiddleware(log, mux))
}
