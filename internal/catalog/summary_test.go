package catalog

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/catgar/catgar/internal/logging"
)

// fakeQuerier serves canned values for a few measurements and errors for
// the rest.
type fakeQuerier struct {
	fields map[string]map[string][]float64 // measurement -> field -> values
	tags   map[string]map[string]map[string]int64
}

func (q *fakeQuerier) FieldValues(ctx context.Context, measurement, field string, days int) ([]float64, error) {
	if m, ok := q.fields[measurement]; ok {
		return m[field], nil
	}
	return nil, errors.New("measurement not found")
}

func (q *fakeQuerier) PointCount(ctx context.Context, measurement string, days int) (int64, error) {
	total := int64(0)
	for _, vals := range q.fields[measurement] {
		total += int64(len(vals))
	}
	return total, nil
}

func (q *fakeQuerier) DayCount(ctx context.Context, measurement string, days int) (int64, error) {
	if len(q.fields[measurement]) > 0 {
		return 7, nil
	}
	return 0, nil
}

func (q *fakeQuerier) TagValueCounts(ctx context.Context, measurement, tag string, days int) (map[string]int64, error) {
	if m, ok := q.tags[measurement]; ok {
		return m[tag], nil
	}
	return nil, nil
}

func testQuerier() *fakeQuerier {
	return &fakeQuerier{
		fields: map[string]map[string][]float64{
			"daily_stats": {
				"steps":      {8000, 9500, 10200, 7400, 11000, 9900, 8800},
				"resting_hr": {52, 51, 53, 52, 50, 51, 52},
			},
			"activity": {
				"distance_meters": {5000, 8000},
			},
		},
		tags: map[string]map[string]map[string]int64{
			"activity": {
				"type": {"running": 14, "cycling": 3},
			},
		},
	}
}

func quietLogger() *logging.Logger {
	return logging.NewWithWriter(bytes.NewBuffer(nil), "error", "text")
}

func TestCollect(t *testing.T) {
	summary := Collect(context.Background(), testQuerier(), 7, quietLogger())

	// Every catalog measurement gets a slot, even when queries fail.
	assert.Len(t, summary, len(All()))

	daily := summary["daily_stats"]
	assert.Len(t, daily.Fields["steps"], 7)
	assert.Equal(t, int64(14), daily.TotalPoints)
	assert.Equal(t, int64(7), daily.DaysWithData)

	act := summary["activity"]
	require.Contains(t, act.TagValues, "type")
	assert.Equal(t, int64(14), act.TagValues["type"]["running"])

	// Failed measurements stay empty rather than aborting the collect.
	assert.Empty(t, summary["hrv"].Fields)
}

func TestPrintSummary(t *testing.T) {
	summary := Collect(context.Background(), testQuerier(), 7, quietLogger())

	var buf bytes.Buffer
	PrintSummary(&buf, summary, 7)
	out := buf.String()

	assert.Contains(t, out, "catGar Data Summary")
	assert.Contains(t, out, "✓ daily_stats")
	assert.Contains(t, out, "· sleep")
	assert.Contains(t, out, "DAILY STATS")
	assert.Contains(t, out, "resting_hr")
	assert.Contains(t, out, "Tag: type")
	assert.Contains(t, out, "running")
	// Histograms render for the key daily metrics that have data.
	assert.Contains(t, out, "Daily Steps")
	assert.Contains(t, out, "█")
}

func TestPrintSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	PrintSummary(&buf, map[string]MeasurementSummary{}, 7)
	out := buf.String()

	assert.Contains(t, out, "Measurements with data: 0/21")
	assert.Contains(t, out, "No data available for distribution charts.")
}

func TestPrintCatalog(t *testing.T) {
	var buf bytes.Buffer
	PrintCatalog(&buf)
	out := buf.String()

	assert.Contains(t, out, "catGar Data Catalog")
	assert.Contains(t, out, "QUICK REFERENCE")
	assert.Contains(t, out, "DETAILED FIELD REFERENCE")
	assert.Contains(t, out, "Total data categories: 21")
	for _, c := range All() {
		assert.Contains(t, out, c.Measurement)
	}
	assert.Contains(t, out, `from(bucket: "garmin")`)
}

func TestTopTagValues(t *testing.T) {
	counts := map[string]int64{"running": 14, "cycling": 3, "walking": 14, "yoga": 1}
	top := topTagValues(counts, 3)
	require.Len(t, top, 3)

	// Sorted by count descending, ties broken by name.
	assert.Equal(t, "running", top[0].value)
	assert.Equal(t, "walking", top[1].value)
	assert.Equal(t, "cycling", top[2].value)
}
