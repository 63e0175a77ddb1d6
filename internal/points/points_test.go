package points

import (
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDay = time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)

func fieldsOf(p *write.Point) map[string]any {
	out := map[string]any{}
	for _, f := range p.FieldList() {
		out[f.Key] = f.Value
	}
	return out
}

func tagsOf(p *write.Point) map[string]string {
	out := map[string]string{}
	for _, t := range p.TagList() {
		out[t.Key] = t.Value
	}
	return out
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"float64", 72.5, 72.5, true},
		{"int", 10000, 10000, true},
		{"numeric string", " 42.1 ", 42.1, true},
		{"bool true", true, 1, true},
		{"bool false", false, 0, true},
		{"non-numeric string", "resting", 0, false},
		{"nil", nil, 0, false},
		{"object", map[string]any{"a": 1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := toFloat(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDailyStats(t *testing.T) {
	stats := map[string]any{
		"totalSteps":         float64(10432),
		"restingHeartRate":   float64(52),
		"averageStressLevel": float64(31),
		"calendarDate":       "2025-03-14",    // ignored metadata
		"stressQualifier":    "BALANCED",      // ignored metadata
		"newVendorMetric":    float64(7),      // auto-captured extra
		"someNested":         map[string]any{}, // containers never captured
	}

	pts := DailyStats(stats, testDay)
	require.Len(t, pts, 1)

	fields := fieldsOf(pts[0])
	assert.Equal(t, 10432.0, fields["steps"])
	assert.Equal(t, 52.0, fields["resting_hr"])
	assert.Equal(t, 31.0, fields["avg_stress"])
	assert.Equal(t, 7.0, fields["newVendorMetric"])
	assert.NotContains(t, fields, "calendarDate")
	assert.NotContains(t, fields, "stressQualifier")
	assert.NotContains(t, fields, "someNested")
	assert.Equal(t, testDay, pts[0].Time())
}

func TestDailyStats_Empty(t *testing.T) {
	assert.Nil(t, DailyStats(nil, testDay))
	assert.Nil(t, DailyStats(map[string]any{}, testDay))
	assert.Nil(t, DailyStats(map[string]any{"calendarDate": "2025-03-14"}, testDay))
}

func TestSleep_NestedScores(t *testing.T) {
	sleepData := map[string]any{
		"dailySleepDTO": map[string]any{
			"sleepTimeSeconds": float64(27000),
			"deepSleepSeconds": float64(5400),
			"sleepScores": map[string]any{
				"overall":       map[string]any{"value": float64(82)},
				"totalDuration": float64(75),
				"stress":        map[string]any{"value": nil},
			},
		},
	}

	pts := Sleep(sleepData, testDay)
	require.Len(t, pts, 1)

	fields := fieldsOf(pts[0])
	assert.Equal(t, 27000.0, fields["sleep_time_sec"])
	assert.Equal(t, 5400.0, fields["deep_sleep_sec"])
	assert.Equal(t, 82.0, fields["score_overall"])
	assert.Equal(t, 75.0, fields["score_totalDuration"])
	assert.NotContains(t, fields, "score_stress")
}

func TestSleep_MissingDTO(t *testing.T) {
	assert.Nil(t, Sleep(map[string]any{"remSleepData": true}, testDay))
	assert.Nil(t, Sleep(nil, testDay))
}

func TestHeartRate(t *testing.T) {
	hrData := map[string]any{
		"heartRateValues": []any{
			[]any{float64(1742000000000), float64(61)},
			[]any{float64(1742000060000), float64(64)},
			[]any{float64(1742000120000), nil}, // gap in the series
		},
	}

	pts := HeartRate(hrData)
	require.Len(t, pts, 2)

	fields := fieldsOf(pts[0])
	assert.Equal(t, int64(61), fields["bpm"])
	assert.Equal(t, time.UnixMilli(1742000000000).UTC(), pts[0].Time())
	assert.Equal(t, int64(64), fieldsOf(pts[1])["bpm"])
}

func TestHeartRate_ListInput(t *testing.T) {
	hrData := []any{
		map[string]any{
			"heartRateValues": []any{[]any{float64(1742000000000), float64(58)}},
		},
	}
	pts := HeartRate(hrData)
	require.Len(t, pts, 1)
	assert.Equal(t, int64(58), fieldsOf(pts[0])["bpm"])
}

func TestHeartRate_NoSeries(t *testing.T) {
	assert.Empty(t, HeartRate(map[string]any{"restingHeartRate": float64(52)}))
	assert.Empty(t, HeartRate(nil))
}

func TestHRV_NestedSummary(t *testing.T) {
	hrvData := map[string]any{
		"hrvSummary": map[string]any{
			"weeklyAvg":    float64(48),
			"lastNightAvg": float64(51),
			"status":       "BALANCED",
			"baseline": map[string]any{
				"lowUpper":      float64(42),
				"balancedLow":   float64(45),
				"balancedUpper": float64(58),
			},
		},
	}

	pts := HRV(hrvData, testDay)
	require.Len(t, pts, 1)

	fields := fieldsOf(pts[0])
	assert.Equal(t, 48.0, fields["weekly_avg"])
	assert.Equal(t, 51.0, fields["last_night_avg"])
	assert.Equal(t, 42.0, fields["baseline_lowUpper"])
	assert.Equal(t, 45.0, fields["baseline_balancedLow"])
	assert.Equal(t, 58.0, fields["baseline_balancedUpper"])
	assert.NotContains(t, fields, "status")
}

func TestHRV_FlatRecord(t *testing.T) {
	pts := HRV(map[string]any{"weeklyAvg": float64(47)}, testDay)
	require.Len(t, pts, 1)
	assert.Equal(t, 47.0, fieldsOf(pts[0])["weekly_avg"])
}

func TestMaxMetrics_Shapes(t *testing.T) {
	asList := []any{
		map[string]any{"sport": "RUNNING", "vo2MaxValue": float64(49)},
		map[string]any{"sport": "CYCLING", "vo2MaxValue": float64(52)},
	}
	pts := MaxMetrics(asList, testDay)
	require.Len(t, pts, 2)
	assert.Equal(t, "RUNNING", tagsOf(pts[0])["sport"])
	assert.Equal(t, 49.0, fieldsOf(pts[0])["vo2max"])
	assert.Equal(t, "CYCLING", tagsOf(pts[1])["sport"])

	wrapped := map[string]any{
		"maxMetrics": []any{
			map[string]any{"metricsType": "generic", "fitnessAge": float64(31)},
		},
	}
	pts = MaxMetrics(wrapped, testDay)
	require.Len(t, pts, 1)
	assert.Equal(t, "generic", tagsOf(pts[0])["sport"])
	assert.Equal(t, 31.0, fieldsOf(pts[0])["fitness_age"])

	bare := map[string]any{"vo2MaxPreciseValue": float64(48.7)}
	pts = MaxMetrics(bare, testDay)
	require.Len(t, pts, 1)
	assert.Equal(t, "generic", tagsOf(pts[0])["sport"])

	assert.Empty(t, MaxMetrics(nil, testDay))
}

func TestBuildDaily_MeasurementNames(t *testing.T) {
	tests := []struct {
		name        string
		build       func() []*write.Point
		measurement string
	}{
		{"spo2", func() []*write.Point {
			return SpO2(map[string]any{"averageSpO2": float64(96)}, testDay)
		}, "spo2"},
		{"stress", func() []*write.Point {
			return Stress(map[string]any{"avgStressLevel": float64(28)}, testDay)
		}, "stress"},
		{"hydration", func() []*write.Point {
			return Hydration(map[string]any{"valueInML": float64(1500)}, testDay)
		}, "hydration"},
		{"floors", func() []*write.Point {
			return Floors(map[string]any{"floorsAscended": float64(12)}, testDay)
		}, "floors"},
		{"fitness age", func() []*write.Point {
			return FitnessAge(map[string]any{"fitnessAge": float64(30)}, testDay)
		}, "fitness_age"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pts := tt.build()
			require.Len(t, pts, 1)
			assert.Equal(t, tt.measurement, pts[0].Name())
		})
	}
}

func TestBodyComposition_WeightStaysInGrams(t *testing.T) {
	pts := BodyComposition(map[string]any{"weight": float64(72500), "bmi": float64(22.4)}, testDay)
	require.Len(t, pts, 1)
	fields := fieldsOf(pts[0])
	assert.Equal(t, 72500.0, fields["weight_grams"])
	assert.Equal(t, 22.4, fields["bmi"])
}
