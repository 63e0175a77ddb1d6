// Package config loads catgar configuration from the environment.
//
// Credentials are typically kept in a .env file next to the binary; any
// variable already present in the environment takes precedence.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	GarminEmail    string
	GarminPassword string

	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string

	StateDBPath string
	SessionPath string
	RateLimit   time.Duration

	LogLevel  string
	LogFormat string
}

// env var name -> viper key
var envBindings = map[string]string{
	"GARMIN_EMAIL":    "garmin_email",
	"GARMIN_PASSWORD": "garmin_password",
	"INFLUXDB_URL":    "influxdb_url",
	"INFLUXDB_TOKEN":  "influxdb_token",
	"INFLUXDB_ORG":    "influxdb_org",
	"INFLUXDB_BUCKET": "influxdb_bucket",
	"STATE_DB_PATH":   "state_db_path",
	"SESSION_PATH":    "session_path",
	"RATE_LIMIT":      "rate_limit",
	"LOG_LEVEL":       "log_level",
	"LOG_FORMAT":      "log_format",
}

// Load reads configuration from a .env file (if present) and the environment.
func Load() (*Config, error) {
	// A missing .env file is fine; the environment may carry everything.
	_ = godotenv.Load()

	v := viper.New()
	for env, key := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	v.SetDefault("influxdb_url", "http://localhost:8086")
	v.SetDefault("influxdb_bucket", "garmin")
	v.SetDefault("state_db_path", "catgar.db")
	v.SetDefault("session_path", ".garmin-session.json")
	v.SetDefault("rate_limit", "1s")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")

	cfg := &Config{
		GarminEmail:    v.GetString("garmin_email"),
		GarminPassword: v.GetString("garmin_password"),
		InfluxURL:      v.GetString("influxdb_url"),
		InfluxToken:    v.GetString("influxdb_token"),
		InfluxOrg:      v.GetString("influxdb_org"),
		InfluxBucket:   v.GetString("influxdb_bucket"),
		StateDBPath:    v.GetString("state_db_path"),
		SessionPath:    v.GetString("session_path"),
		RateLimit:      parseDuration(v.GetString("rate_limit"), time.Second),
		LogLevel:       v.GetString("log_level"),
		LogFormat:      v.GetString("log_format"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate reports every missing required variable in one error.
func (c *Config) validate() error {
	var missing []string
	if c.GarminEmail == "" {
		missing = append(missing, "GARMIN_EMAIL")
	}
	if c.GarminPassword == "" {
		missing = append(missing, "GARMIN_PASSWORD")
	}
	if c.InfluxToken == "" {
		missing = append(missing, "INFLUXDB_TOKEN")
	}
	if c.InfluxOrg == "" {
		missing = append(missing, "INFLUXDB_ORG")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// parseDuration parses a duration string with a default.
func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return d
}
