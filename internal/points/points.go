// Package points converts Garmin Connect API records into InfluxDB points.
//
// Each builder takes the loosely-typed JSON for one data category and
// returns zero or more points. Builders never fail: values that cannot be
// converted to a number are skipped with a debug log, and nil or
// mis-shaped input yields an empty result.
package points

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// Mapping pairs a Garmin API key with the InfluxDB field it is stored as.
type Mapping struct {
	Source string
	Field  string
}

// ignoredKeys are metadata or non-numeric keys that must never be captured
// as extra fields.
var ignoredKeys = map[string]struct{}{
	"calendarDate":        {},
	"startTimestampGMT":   {},
	"endTimestampGMT":     {},
	"startTimestampLocal": {},
	"endTimestampLocal":   {},
	"userProfilePK":       {},
	"startOfDayGMT":       {},
	"startOfDayLocal":     {},
	"userDailySummaryId":  {},
	// Wellness / daily-stats timestamp & string fields
	"wellnessStartTimeGmt":   {},
	"wellnessStartTimeLocal": {},
	"wellnessEndTimeGmt":     {},
	"wellnessEndTimeLocal":   {},
	"source":                 {},
	"stressQualifier":        {},
	// SpO2 / respiration timestamp fields
	"latestSpo2ReadingTimeGmt":   {},
	"latestSpo2ReadingTimeLocal": {},
	"latestRespirationTimeGMT":   {},
	"latestSpO2TimestampGMT":     {},
	"latestSpO2TimestampLocal":   {},
	// Sleep-related timestamp fields
	"tomorrowSleepStartTimestampGMT":   {},
	"tomorrowSleepEndTimestampGMT":     {},
	"tomorrowSleepStartTimestampLocal": {},
	"tomorrowSleepEndTimestampLocal":   {},
	// Body composition date fields
	"startDate": {},
	"endDate":   {},
}

// toFloat converts an API value to float64. Strings are parsed, booleans
// map to 0/1, containers and nil are rejected.
func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// mapFields applies a field mapping to data, returning the resulting
// InfluxDB fields. Missing and nil source keys are skipped; unconvertible
// values are logged and skipped.
func mapFields(data map[string]any, fm []Mapping, measurement string) map[string]any {
	fields := make(map[string]any)
	for _, m := range fm {
		v, ok := data[m.Source]
		if !ok || v == nil {
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			slog.Debug("skipping unconvertible field",
				"measurement", measurement, "key", m.Source, "value", v)
			continue
		}
		fields[m.Field] = f
	}
	return fields
}

// collectExtras returns numeric fields in data that are neither in the
// known key set nor in the shared ignored-metadata set. This lets newly
// added Garmin fields flow through without a code change.
func collectExtras(data map[string]any, known map[string]struct{}, measurement string) map[string]any {
	extras := make(map[string]any)
	for key, v := range data {
		if _, ok := known[key]; ok {
			continue
		}
		if _, ok := ignoredKeys[key]; ok {
			continue
		}
		if v == nil {
			continue
		}
		switch v.(type) {
		case map[string]any, []any:
			continue
		}
		f, ok := toFloat(v)
		if !ok {
			continue
		}
		slog.Debug("discovered extra numeric field",
			"measurement", measurement, "key", key, "value", f)
		extras[key] = f
	}
	return extras
}

// knownKeys builds the known-key set for collectExtras from a field map.
func knownKeys(fm []Mapping, more ...string) map[string]struct{} {
	known := make(map[string]struct{}, len(fm)+len(more))
	for _, m := range fm {
		known[m.Source] = struct{}{}
	}
	for _, k := range more {
		known[k] = struct{}{}
	}
	return known
}

// buildDaily converts one daily record into a single point timestamped at
// the day. Extra numeric vendor fields are captured under their own names.
// Returns nil when no usable field is present.
func buildDaily(measurement string, data map[string]any, fm []Mapping, day time.Time) []*write.Point {
	if len(data) == 0 {
		return nil
	}

	fields := mapFields(data, fm, measurement)
	for k, v := range collectExtras(data, knownKeys(fm), measurement) {
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil
	}

	return []*write.Point{write.NewPoint(measurement, nil, fields, day)}
}

// getMap returns data[key] as an object, or nil.
func getMap(data map[string]any, key string) map[string]any {
	m, _ := data[key].(map[string]any)
	return m
}

// getString returns data[key] as a string, or the fallback.
func getString(data map[string]any, key, fallback string) string {
	if s, ok := data[key].(string); ok && s != "" {
		return s
	}
	return fallback
}
