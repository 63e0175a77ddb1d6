package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("GARMIN_EMAIL", "user@example.com")
	t.Setenv("GARMIN_PASSWORD", "secret")
	t.Setenv("INFLUXDB_TOKEN", "tok")
	t.Setenv("INFLUXDB_ORG", "home")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)
	t.Setenv("INFLUXDB_URL", "")
	t.Setenv("INFLUXDB_BUCKET", "")
	t.Setenv("RATE_LIMIT", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8086", cfg.InfluxURL)
	assert.Equal(t, "garmin", cfg.InfluxBucket)
	assert.Equal(t, "catgar.db", cfg.StateDBPath)
	assert.Equal(t, ".garmin-session.json", cfg.SessionPath)
	assert.Equal(t, time.Second, cfg.RateLimit)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	t.Setenv("INFLUXDB_URL", "http://influx:9999")
	t.Setenv("INFLUXDB_BUCKET", "fitness")
	t.Setenv("RATE_LIMIT", "250ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "user@example.com", cfg.GarminEmail)
	assert.Equal(t, "http://influx:9999", cfg.InfluxURL)
	assert.Equal(t, "fitness", cfg.InfluxBucket)
	assert.Equal(t, 250*time.Millisecond, cfg.RateLimit)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("GARMIN_EMAIL", "")
	t.Setenv("GARMIN_PASSWORD", "")
	t.Setenv("INFLUXDB_TOKEN", "")
	t.Setenv("INFLUXDB_ORG", "home")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GARMIN_EMAIL")
	assert.Contains(t, err.Error(), "GARMIN_PASSWORD")
	assert.Contains(t, err.Error(), "INFLUXDB_TOKEN")
	assert.NotContains(t, err.Error(), "INFLUXDB_ORG")
}

func TestLoad_InvalidRateLimitFallsBack(t *testing.T) {
	setRequired(t)
	t.Setenv("RATE_LIMIT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.RateLimit)
}
