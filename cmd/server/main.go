package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"navigation-route-service/internal/adapters/geocode"
	"navigation-route-service/internal/adapters/repositories"
	"navigation-route-service/internal/adapters/routing"
	"navigation-route-service/internal/adapters/tokens"
	"navigation-route-service/internal/api"
	"navigation-route-service/internal/api/handlers"
	"navigation-route-service/internal/config"
	"navigation-route-service/internal/platform/db"
	"navigation-route-service/internal/platform/obs"
	"navigation-route-service/internal/ports"
	"navigation-route-service/internal/services"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, ORS, Redis, Postgres) behind ports
// and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := obs.NewLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	geocoder, err := geocode.NewNominatimGeocoder(cfg.NominatimBaseURL, cfg.NominatimUserAgent, cfg.HTTPTimeout, logger)
	if err != nil {
		return err
	}
	router, err := routing.NewORSRouteProvider(cfg.ORSAPIKey, cfg.ORSBaseURL, cfg.ORSProfile, cfg.HTTPTimeout, logger)
	if err != nil {
		return err
	}
	planner, err := services.NewRoutePlanner(geocoder, router)
	if err != nil {
		return err
	}

	checks := map[string]handlers.Check{}

	var sequencer ports.RequestSequencer = tokens.NewMemorySequencer()
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		rs, err := tokens.NewRedisSequencer(rdb, cfg.SessionTokenTTL)
		if err != nil {
			return err
		}
		sequencer = rs
		checks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		logger.Info("request tokens stored in redis", zap.String("addr", cfg.RedisAddr))
	}

	var recorder ports.PlanRecorder
	if cfg.DatabaseURL != "" {
		conn, err := openPlanLog(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer conn.Close()

		recorder = repositories.NewPostgresPlanLog(conn, logger)
		checks["postgres"] = conn.PingContext
		logger.Info("plan log enabled")
	}

	nav, err := services.NewNavigator(planner, sequencer, recorder, logger)
	if err != nil {
		return err
	}

	// Write timeout covers two sequential provider calls.
	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           api.NewRouter(nav, checks, logger),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      2*cfg.HTTPTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", srv.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func openPlanLog(ctx context.Context, databaseURL string) (*sql.DB, error) {
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := repositories.InitSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return conn, nil
}
