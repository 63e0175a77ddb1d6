package catalog

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/catgar/catgar/internal/logging"
)

// Querier is the read-only slice of the metrics store the summary needs.
type Querier interface {
	FieldValues(ctx context.Context, measurement, field string, days int) ([]float64, error)
	PointCount(ctx context.Context, measurement string, days int) (int64, error)
	DayCount(ctx context.Context, measurement string, days int) (int64, error)
	TagValueCounts(ctx context.Context, measurement, tag string, days int) (map[string]int64, error)
}

// MeasurementSummary holds what the database actually contains for one
// measurement over the report window.
type MeasurementSummary struct {
	DaysWithData int64
	TotalPoints  int64
	Fields       map[string][]float64
	TagValues    map[string]map[string]int64
}

// Collect queries the store for every catalog measurement. Individual
// query failures are logged at debug and leave that slot empty; a partial
// report is better than none.
func Collect(ctx context.Context, q Querier, days int, log *logging.Logger) map[string]MeasurementSummary {
	summary := make(map[string]MeasurementSummary)

	for _, cat := range All() {
		entry := MeasurementSummary{
			Fields:    map[string][]float64{},
			TagValues: map[string]map[string]int64{},
		}

		for _, f := range cat.Fields {
			values, err := q.FieldValues(ctx, cat.Measurement, f.InfluxField, days)
			if err != nil {
				log.Debug("field query failed",
					"measurement", cat.Measurement, "field", f.InfluxField, "error", err)
				continue
			}
			if len(values) > 0 {
				entry.Fields[f.InfluxField] = values
			}
		}

		if n, err := q.PointCount(ctx, cat.Measurement, days); err == nil {
			entry.TotalPoints = n
		}
		if n, err := q.DayCount(ctx, cat.Measurement, days); err == nil {
			entry.DaysWithData = n
		}

		for _, tag := range cat.Tags {
			counts, err := q.TagValueCounts(ctx, cat.Measurement, tag, days)
			if err != nil {
				log.Debug("tag query failed",
					"measurement", cat.Measurement, "tag", tag, "error", err)
				continue
			}
			if len(counts) > 0 {
				entry.TagValues[tag] = counts
			}
		}

		summary[cat.Measurement] = entry
	}

	return summary
}

// distributionFields are the key metrics charted in the report footer.
var distributionFields = []struct {
	measurement string
	field       string
	label       string
}{
	{"daily_stats", "steps", "Daily Steps"},
	{"daily_stats", "resting_hr", "Resting Heart Rate"},
	{"daily_stats", "avg_stress", "Average Stress"},
	{"sleep", "sleep_time_sec", "Sleep Time (sec)"},
	{"training_readiness", "score", "Training Readiness"},
	{"body_composition", "weight_grams", "Weight (g)"},
}

// PrintSummary renders the live data report: availability per
// measurement, per-field statistics, tag distributions, and histograms
// for a handful of key metrics.
func PrintSummary(w io.Writer, summary map[string]MeasurementSummary, days int) {
	cats := All()
	fieldsWithData := 0
	measurementsWithData := 0

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("═", 80))
	fmt.Fprintln(w, "  catGar Data Summary")
	fmt.Fprintf(w, "  Actual data in InfluxDB, last %d days\n", days)
	fmt.Fprintln(w, strings.Repeat("═", 80))
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, "  DATA AVAILABILITY")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "  %-25s %11s  %10s  %13s\n", "Measurement", "Days w/Data", "Points", "Fields w/Data")
	fmt.Fprintf(w, "  %s %s  %s  %s\n",
		strings.Repeat("─", 25), strings.Repeat("─", 11), strings.Repeat("─", 10), strings.Repeat("─", 13))

	for _, cat := range cats {
		entry := summary[cat.Measurement]
		fieldsWithData += len(entry.Fields)
		marker := "·"
		if entry.DaysWithData > 0 {
			marker = "✓"
			measurementsWithData++
		}
		fmt.Fprintf(w, "  %s %-23s %11d  %10d  %13d\n",
			marker, cat.Measurement, entry.DaysWithData, entry.TotalPoints, len(entry.Fields))
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Measurements with data: %d/%d\n", measurementsWithData, len(cats))
	fmt.Fprintf(w, "  Fields with data:       %d\n", fieldsWithData)
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, "  FIELD STATISTICS")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for _, cat := range cats {
		entry := summary[cat.Measurement]
		if len(entry.Fields) == 0 {
			continue
		}

		fmt.Fprintln(w)
		fmt.Fprintf(w, "  ▸ %s (%s)\n", strings.ToUpper(cat.DisplayName), cat.Measurement)
		fmt.Fprintf(w, "    %-30s %6s %10s %10s %10s %10s %10s\n",
			"Field", "Count", "Min", "Mean", "Median", "Max", "StDev")
		fmt.Fprintf(w, "    %s %s %s %s %s %s %s\n",
			strings.Repeat("─", 30), strings.Repeat("─", 6), strings.Repeat("─", 10),
			strings.Repeat("─", 10), strings.Repeat("─", 10), strings.Repeat("─", 10),
			strings.Repeat("─", 10))

		for _, f := range cat.Fields {
			vals := entry.Fields[f.InfluxField]
			if len(vals) == 0 {
				continue
			}
			st := ComputeStats(vals)
			fmt.Fprintf(w, "    %-30s %6d %10s %10s %10s %10s %10s\n",
				f.InfluxField, st.Count,
				FormatValue(st.Min), FormatValue(st.Mean), FormatValue(st.Median),
				FormatValue(st.Max), FormatValue(st.Stdev))
		}

		for _, tag := range cat.Tags {
			counts := entry.TagValues[tag]
			if len(counts) == 0 {
				continue
			}
			fmt.Fprintln(w)
			fmt.Fprintf(w, "    Tag: %s\n", tag)
			for _, kv := range topTagValues(counts, 10) {
				fmt.Fprintf(w, "      %-30s %6d points\n", kv.value, kv.count)
			}
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, "  DISTRIBUTIONS (key metrics)")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	shownAny := false
	for _, df := range distributionFields {
		vals := summary[df.measurement].Fields[df.field]
		if len(vals) < 2 {
			continue
		}
		shownAny = true
		st := ComputeStats(vals)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  %s  (n=%d, mean=%s, median=%s)\n",
			df.label, st.Count, FormatValue(st.Mean), FormatValue(st.Median))
		bins := 10
		if len(vals) < bins {
			bins = len(vals)
		}
		for _, line := range Histogram(vals, bins, 30) {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}

	if !shownAny {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  No data available for distribution charts.")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("═", 80))
	fmt.Fprintln(w)
}

type tagCount struct {
	value string
	count int64
}

func topTagValues(counts map[string]int64, limit int) []tagCount {
	out := make([]tagCount, 0, len(counts))
	for v, c := range counts {
		out = append(out, tagCount{value: v, count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return out[i].value < out[j].value
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}
