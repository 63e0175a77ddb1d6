package syncer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catgar/catgar/internal/garmin"
	"github.com/catgar/catgar/internal/logging"
)

// fakeAPI returns canned responses per category; unset categories report
// no data.
type fakeAPI struct {
	dailyStats map[string]any
	sleep      map[string]any
	heartRate  map[string]any
	stress     map[string]any
	stressErr  error
	activities []map[string]any
	splits     map[string]any

	dailyStatsCalls int
}

func (f *fakeAPI) DailyStats(ctx context.Context, day time.Time) (map[string]any, error) {
	f.dailyStatsCalls++
	if f.dailyStats == nil {
		return nil, garmin.ErrNoData
	}
	return f.dailyStats, nil
}

func (f *fakeAPI) SleepData(ctx context.Context, day time.Time) (map[string]any, error) {
	if f.sleep == nil {
		return nil, garmin.ErrNoData
	}
	return f.sleep, nil
}

func (f *fakeAPI) HeartRates(ctx context.Context, day time.Time) (map[string]any, error) {
	if f.heartRate == nil {
		return nil, garmin.ErrNoData
	}
	return f.heartRate, nil
}

func (f *fakeAPI) Stress(ctx context.Context, day time.Time) (map[string]any, error) {
	if f.stressErr != nil {
		return nil, f.stressErr
	}
	if f.stress == nil {
		return nil, garmin.ErrNoData
	}
	return f.stress, nil
}

func (f *fakeAPI) BodyComposition(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) Respiration(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) SpO2(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) HRV(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) Hydration(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) TrainingReadiness(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) TrainingStatus(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) MaxMetrics(ctx context.Context, day time.Time) (any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) EnduranceScore(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) HillScore(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) FitnessAge(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) Floors(ctx context.Context, day time.Time) (map[string]any, error) {
	return nil, garmin.ErrNoData
}

func (f *fakeAPI) Activities(ctx context.Context, start, end time.Time) ([]map[string]any, error) {
	if f.activities == nil {
		return nil, garmin.ErrNoData
	}
	return f.activities, nil
}

func (f *fakeAPI) Activity(ctx context.Context, id int64) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) ActivitySplits(ctx context.Context, id int64) (map[string]any, error) {
	if f.splits == nil {
		return nil, garmin.ErrNoData
	}
	return f.splits, nil
}
func (f *fakeAPI) ActivityHRZones(ctx context.Context, id int64) (any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) ActivityWeather(ctx context.Context, id int64) (map[string]any, error) {
	return nil, garmin.ErrNoData
}
func (f *fakeAPI) ActivityDetails(ctx context.Context, id int64) (map[string]any, error) {
	return nil, garmin.ErrNoData
}

type fakeWriter struct {
	points []*write.Point
	err    error
}

func (w *fakeWriter) WritePoints(ctx context.Context, pts []*write.Point) error {
	if w.err != nil {
		return w.err
	}
	w.points = append(w.points, pts...)
	return nil
}

func testLogger() *logging.Logger {
	return logging.NewWithWriter(bytes.NewBuffer(nil), "error", "text")
}

func TestRun_SingleDay(t *testing.T) {
	api := &fakeAPI{
		dailyStats: map[string]any{"totalSteps": float64(9000)},
		heartRate: map[string]any{
			"heartRateValues": []any{
				[]any{float64(1742000000000), float64(60)},
				[]any{float64(1742000060000), float64(62)},
			},
		},
		stress: map[string]any{"avgStressLevel": float64(25)},
		activities: []map[string]any{{
			"activityId":     float64(77),
			"activityName":   "Lunch Walk",
			"startTimeLocal": "2025-03-14 12:30:00",
			"activityType":   map[string]any{"typeKey": "walking"},
			"distance":       float64(2100),
		}},
		splits: map[string]any{
			"lapDTOs": []any{
				map[string]any{"distance": float64(1000)},
				map[string]any{"distance": float64(1100)},
			},
		},
	}
	writer := &fakeWriter{}

	summary, err := NewRunner(api, writer, testLogger()).Run(
		context.Background(), day("2025-03-14"), day("2025-03-14"))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Days)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 1, summary.Counts["daily stats"])
	assert.Equal(t, 2, summary.Counts["heart rate"])
	assert.Equal(t, 1, summary.Counts["stress"])
	assert.Equal(t, 1, summary.Counts["activities"])
	assert.Equal(t, 2, summary.Counts["activity splits"])
	assert.Equal(t, 7, summary.Total)
	assert.Len(t, writer.points, 7)
}

func TestRun_NoDataIsNotAnError(t *testing.T) {
	summary, err := NewRunner(&fakeAPI{}, &fakeWriter{}, testLogger()).Run(
		context.Background(), day("2025-03-14"), day("2025-03-14"))

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Errors)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 1, summary.Days)
}

func TestRun_CollectorFailureContinues(t *testing.T) {
	api := &fakeAPI{
		dailyStats: map[string]any{"totalSteps": float64(4000)},
		stressErr:  errors.New("upstream exploded"),
	}
	writer := &fakeWriter{}

	summary, err := NewRunner(api, writer, testLogger()).Run(
		context.Background(), day("2025-03-14"), day("2025-03-14"))

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Errors)
	// The failing category does not stop the others.
	assert.Equal(t, 1, summary.Counts["daily stats"])
}

func TestRun_MultipleDays(t *testing.T) {
	api := &fakeAPI{dailyStats: map[string]any{"totalSteps": float64(1)}}

	summary, err := NewRunner(api, &fakeWriter{}, testLogger()).Run(
		context.Background(), day("2025-03-10"), day("2025-03-12"))

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Days)
	assert.Equal(t, 3, summary.Counts["daily stats"])
	assert.Equal(t, 3, api.dailyStatsCalls)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRunner(&fakeAPI{}, &fakeWriter{}, testLogger()).Run(
		ctx, day("2025-03-10"), day("2025-03-12"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProbeDay(t *testing.T) {
	r := NewRunner(&fakeAPI{dailyStats: map[string]any{"totalSteps": float64(1)}}, &fakeWriter{}, testLogger())
	assert.True(t, r.ProbeDay(context.Background(), day("2025-03-14")))

	empty := NewRunner(&fakeAPI{}, &fakeWriter{}, testLogger())
	assert.False(t, empty.ProbeDay(context.Background(), day("2025-03-14")))

	nilStats := NewRunner(&fakeAPI{dailyStats: map[string]any{"totalSteps": nil}}, &fakeWriter{}, testLogger())
	assert.False(t, nilStats.ProbeDay(context.Background(), day("2025-03-14")))
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Summary{
		Counts: map[string]int{
			"daily stats":     3,
			"heart rate":      2841,
			"activity splits": 12,
		},
		Days:   3,
		Errors: 1,
		Total:  2856,
	})

	out := buf.String()
	assert.Contains(t, out, "catGar Sync Summary")
	assert.Contains(t, out, "✓ daily stats")
	assert.Contains(t, out, "2,841")
	assert.Contains(t, out, "· sleep")
	assert.Contains(t, out, "activity splits")
	assert.NotContains(t, out, "activity weather")
	assert.Contains(t, out, "Errors")
}

func TestPrintSummary_NoErrorsRowWhenClean(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, Summary{Counts: map[string]int{}, Days: 1})
	assert.NotContains(t, buf.String(), "Errors")
}

func TestGroupDigits(t *testing.T) {
	assert.Equal(t, "0", groupDigits(0))
	assert.Equal(t, "999", groupDigits(999))
	assert.Equal(t, "1,000", groupDigits(1000))
	assert.Equal(t, "2,841,337", groupDigits(2841337))
}
