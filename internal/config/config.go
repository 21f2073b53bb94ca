// Package config loads and validates environment-based configuration.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: field %q: %s", e.Field, e.Message)
}

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Port   int
	AppEnv string

	// Routing provider (OpenRouteService). The key is never compiled in.
	ORSAPIKey  string
	ORSBaseURL string
	ORSProfile string

	// Geocoding provider (Nominatim).
	NominatimBaseURL   string
	NominatimUserAgent string

	// Timeout for every outbound provider call.
	HTTPTimeout time.Duration

	// Optional backends. Empty disables the plan log / uses the in-memory sequencer.
	DatabaseURL     string
	RedisAddr       string
	SessionTokenTTL time.Duration
}

// Load reads and validates environment variables.
// Returns a ConfigError for any missing or invalid value.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv:             Get("APP_ENV", "development"),
		ORSAPIKey:          strings.TrimSpace(os.Getenv("ORS_API_KEY")),
		ORSBaseURL:         Get("ORS_BASE_URL", "https://api.openrouteservice.org"),
		ORSProfile:         Get("ORS_PROFILE", "driving-car"),
		NominatimBaseURL:   Get("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org"),
		NominatimUserAgent: Get("NOMINATIM_USER_AGENT", "navigation-route-service/1.0"),
		DatabaseURL:        strings.TrimSpace(os.Getenv("DATABASE_URL")),
		RedisAddr:          strings.TrimSpace(os.Getenv("REDIS_ADDR")),
	}

	port, err := strconv.Atoi(Get("PORT", "8080"))
	if err != nil {
		return nil, &ConfigError{Field: "PORT", Message: "must be a valid integer"}
	}
	cfg.Port = port

	if cfg.HTTPTimeout, err = parseDuration("HTTP_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.SessionTokenTTL, err = parseDuration("SESSION_TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate re-checks required fields on an already-constructed Config.
func (c *Config) Validate() error {
	var errs []error
	if c.ORSAPIKey == "" {
		errs = append(errs, &ConfigError{Field: "ORS_API_KEY", Message: "required but not set"})
	}
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, &ConfigError{Field: "PORT", Message: "must be between 1 and 65535"})
	}
	if c.HTTPTimeout <= 0 {
		errs = append(errs, &ConfigError{Field: "HTTP_TIMEOUT", Message: "must be positive"})
	}
	for field, raw := range map[string]string{
		"ORS_BASE_URL":       c.ORSBaseURL,
		"NOMINATIM_BASE_URL": c.NominatimBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, &ConfigError{Field: field, Message: "must be an absolute URL"})
		}
	}
	return errors.Join(errs...)
}

// Get returns the environment value for key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, &ConfigError{Field: key, Message: "must be a duration such as 10s or 1h"}
	}
	return d, nil
}
