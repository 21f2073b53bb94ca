package config

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PORT", "APP_ENV", "ORS_BASE_URL", "ORS_PROFILE", "NOMINATIM_BASE_URL",
		"NOMINATIM_USER_AGENT", "HTTP_TIMEOUT", "DATABASE_URL", "REDIS_ADDR", "SESSION_TOKEN_TTL",
	} {
		t.Setenv(k, "")
	}
	t.Setenv("ORS_API_KEY", "test-key")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "test-key", cfg.ORSAPIKey)
	assert.Equal(t, "https://api.openrouteservice.org", cfg.ORSBaseURL)
	assert.Equal(t, "driving-car", cfg.ORSProfile)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.NominatimBaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, time.Hour, cfg.SessionTokenTTL)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.RedisAddr)
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("HTTP_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "localhost:6379")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		field string
	}{
		{name: "missing key", key: "ORS_API_KEY", value: "", field: "ORS_API_KEY"},
		{name: "port not int", key: "PORT", value: "http", field: "PORT"},
		{name: "port range", key: "PORT", value: "70000", field: "PORT"},
		{name: "bad timeout", key: "HTTP_TIMEOUT", value: "soon", field: "HTTP_TIMEOUT"},
		{name: "relative url", key: "ORS_BASE_URL", value: "/v2", field: "ORS_BASE_URL"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setBaseEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			require.Error(t, err)

			var ce *ConfigError
			require.True(t, errors.As(err, &ce), "expected ConfigError, got %v", err)
			assert.Equal(t, tc.field, ce.Field)
		})
	}
}
