package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), "input %q", tt.input)
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	log.Info("syncing day", "day", "2025-03-14")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "syncing day", entry["msg"])
	assert.Equal(t, "2025-03-14", entry["day"])
	assert.Equal(t, "catgar", entry["service"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "text")

	log.Info("should be dropped")
	assert.Zero(t, buf.Len())

	log.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "text").With("component", "garmin")

	log.Info("hello")
	assert.Contains(t, buf.String(), "component=garmin")
}
