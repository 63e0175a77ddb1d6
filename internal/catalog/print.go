package catalog

import (
	"fmt"
	"io"
	"strings"
)

// PrintCatalog writes the full static data-catalog reference: a quick
// overview table, the per-measurement field reference, and usage notes
// with example Flux queries.
func PrintCatalog(w io.Writer) {
	cats := All()

	totalFields := 0
	for _, c := range cats {
		totalFields += len(c.Fields)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w, "  catGar Data Catalog")
	fmt.Fprintln(w, "  Complete reference of all Garmin health & fitness data persisted to InfluxDB")
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total data categories: %d\n", len(cats))
	fmt.Fprintf(w, "Total tracked fields:  %d\n", totalFields)
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, "  QUICK REFERENCE")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "  %-25s %-30s %6s  %s\n", "Measurement", "Frequency", "Fields", "Tags")
	fmt.Fprintf(w, "  %s %s %s  %s\n",
		strings.Repeat("─", 25), strings.Repeat("─", 30), strings.Repeat("─", 6), strings.Repeat("─", 15))
	for _, c := range cats {
		tags := "-"
		if len(c.Tags) > 0 {
			tags = strings.Join(c.Tags, ", ")
		}
		fmt.Fprintf(w, "  %-25s %-30s %6d  %s\n", c.Measurement, c.Frequency, len(c.Fields), tags)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, "  DETAILED FIELD REFERENCE")
	fmt.Fprintln(w, strings.Repeat("─", 80))

	for i, c := range cats {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "  [%d/%d] %s\n", i+1, len(cats), strings.ToUpper(c.DisplayName))
		fmt.Fprintf(w, "  Measurement:  %s\n", c.Measurement)
		fmt.Fprintf(w, "  Description:  %s\n", c.Description)
		fmt.Fprintf(w, "  Garmin API:   %s\n", c.GarminAPI)
		fmt.Fprintf(w, "  Frequency:    %s\n", c.Frequency)
		if len(c.Tags) > 0 {
			fmt.Fprintf(w, "  Tags:         %s\n", strings.Join(c.Tags, ", "))
		}
		fmt.Fprintf(w, "  Notes:        %s\n", c.Notes)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "    %-45s %-30s %s\n", "Garmin Key", "InfluxDB Field", "Description")
		fmt.Fprintf(w, "    %s %s %s\n",
			strings.Repeat("─", 45), strings.Repeat("─", 30), strings.Repeat("─", 40))
		for _, f := range c.Fields {
			fmt.Fprintf(w, "    %-45s %-30s %s\n", f.GarminKey, f.InfluxField, f.Description)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w, "  USAGE NOTES")
	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  • All daily measurements use second-precision timestamps at midnight (00:00:00).")
	fmt.Fprintln(w, "  • Heart rate uses millisecond-precision timestamps from the watch.")
	fmt.Fprintln(w, "  • Activities are timestamped at their start time with second precision.")
	fmt.Fprintln(w, "  • Additional numeric fields from Garmin are auto-discovered and stored.")
	fmt.Fprintln(w, "  • All numeric values are stored as floats in InfluxDB.")
	fmt.Fprintln(w, "  • Data is stored in the InfluxDB bucket configured via INFLUXDB_BUCKET (default: 'garmin').")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Example InfluxDB queries:")
	fmt.Fprintln(w, `    from(bucket: "garmin") |> range(start: -7d) |> filter(fn: (r) => r._measurement == "daily_stats")`)
	fmt.Fprintln(w, `    from(bucket: "garmin") |> range(start: -30d) |> filter(fn: (r) => r._measurement == "sleep" and r._field == "sleep_time_sec")`)
	fmt.Fprintln(w, `    from(bucket: "garmin") |> range(start: -30d) |> filter(fn: (r) => r._measurement == "activity" and r.type == "running")`)
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 80))
	fmt.Fprintln(w)
}
