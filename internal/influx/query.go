package influx

import (
	"context"
	"fmt"
)

// Flux queries backing the summary command. Measurement, field, and tag
// names come from the static catalog, never from user input.

// FieldValues returns all stored values for one measurement field over the
// last days days.
func (c *Client) FieldValues(ctx context.Context, measurement, field string, days int) ([]float64, error) {
	flux := fmt.Sprintf(`from(bucket: %q)
  |> range(start: -%dd)
  |> filter(fn: (r) => r._measurement == %q and r._field == %q)
  |> keep(columns: ["_time", "_value"])`, c.bucket, days, measurement, field)

	result, err := c.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("field values query for %s.%s: %w", measurement, field, err)
	}

	var values []float64
	for result.Next() {
		switch v := result.Record().Value().(type) {
		case float64:
			values = append(values, v)
		case int64:
			values = append(values, float64(v))
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("field values query for %s.%s: %w", measurement, field, err)
	}
	return values, nil
}

// PointCount returns the total number of stored values for a measurement
// over the last days days.
func (c *Client) PointCount(ctx context.Context, measurement string, days int) (int64, error) {
	flux := fmt.Sprintf(`from(bucket: %q)
  |> range(start: -%dd)
  |> filter(fn: (r) => r._measurement == %q)
  |> group()
  |> count(column: "_value")`, c.bucket, days, measurement)

	return c.scalarQuery(ctx, flux)
}

// DayCount returns the number of distinct days with data for a measurement
// over the last days days.
func (c *Client) DayCount(ctx context.Context, measurement string, days int) (int64, error) {
	flux := fmt.Sprintf(`import "date"
from(bucket: %q)
  |> range(start: -%dd)
  |> filter(fn: (r) => r._measurement == %q)
  |> map(fn: (r) => ({r with _day: date.truncate(t: r._time, unit: 1d)}))
  |> group()
  |> unique(column: "_day")
  |> count(column: "_day")`, c.bucket, days, measurement)

	return c.scalarQuery(ctx, flux)
}

// TagValueCounts returns the stored-point count per value of a tag on a
// measurement over the last days days.
func (c *Client) TagValueCounts(ctx context.Context, measurement, tag string, days int) (map[string]int64, error) {
	flux := fmt.Sprintf(`from(bucket: %q)
  |> range(start: -%dd)
  |> filter(fn: (r) => r._measurement == %q)
  |> group(columns: [%q])
  |> count(column: "_value")`, c.bucket, days, measurement, tag)

	result, err := c.queryAPI.Query(ctx, flux)
	if err != nil {
		return nil, fmt.Errorf("tag values query for %s.%s: %w", measurement, tag, err)
	}

	counts := make(map[string]int64)
	for result.Next() {
		rec := result.Record()
		val, ok := rec.ValueByKey(tag).(string)
		if !ok || val == "" {
			continue
		}
		if n, ok := rec.Value().(int64); ok {
			counts[val] += n
		}
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("tag values query for %s.%s: %w", measurement, tag, err)
	}
	return counts, nil
}

func (c *Client) scalarQuery(ctx context.Context, flux string) (int64, error) {
	result, err := c.queryAPI.Query(ctx, flux)
	if err != nil {
		return 0, fmt.Errorf("scalar query: %w", err)
	}

	var n int64
	for result.Next() {
		if v, ok := result.Record().Value().(int64); ok {
			n = v
		}
	}
	if err := result.Err(); err != nil {
		return 0, fmt.Errorf("scalar query: %w", err)
	}
	return n, nil
}
