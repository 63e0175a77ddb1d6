package syncer

import (
	"fmt"
	"io"
	"strconv"
)

// summaryOrder fixes the row order of the sync summary table. Activity
// detail categories only appear when they wrote points.
var summaryOrder = []string{
	"daily stats", "sleep", "heart rate", "body composition",
	"respiration", "SpO2", "stress", "HRV", "hydration",
	"training readiness", "training status", "max metrics",
	"endurance score", "hill score", "fitness age", "floors",
	"activities",
	"activity details", "activity splits", "activity HR zones",
	"activity weather", "activity track",
}

// PrintSummary renders the end-of-run box table.
func PrintSummary(w io.Writer, summary Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "┌──────────────────────────────────────────┐")
	fmt.Fprintln(w, "│           catGar Sync Summary            │")
	fmt.Fprintln(w, "├────────────────────────┬─────────────────┤")
	fmt.Fprintln(w, "│ Measurement            │ Points Written  │")
	fmt.Fprintln(w, "├────────────────────────┼─────────────────┤")

	total := 0
	for _, name := range summaryOrder {
		count := summary.Counts[name]
		if count == 0 && isDetailCategory(name) {
			continue
		}
		total += count
		marker := "·"
		if count > 0 {
			marker = "✓"
		}
		fmt.Fprintf(w, "│ %s %-20s │ %15s │\n", marker, name, groupDigits(count))
	}

	fmt.Fprintln(w, "├────────────────────────┼─────────────────┤")
	fmt.Fprintf(w, "│ %-22s │ %15s │\n", "Total", groupDigits(total))
	fmt.Fprintf(w, "│ %-22s │ %15s │\n", "Days synced", groupDigits(summary.Days))
	if summary.Errors > 0 {
		fmt.Fprintf(w, "│ %-22s │ %15s │\n", "Errors", groupDigits(summary.Errors))
	}
	fmt.Fprintln(w, "└────────────────────────┴─────────────────┘")
	fmt.Fprintln(w)
}

func isDetailCategory(name string) bool {
	switch name {
	case "activity details", "activity splits", "activity HR zones",
		"activity weather", "activity track":
		return true
	}
	return false
}

// groupDigits formats n with thousands separators.
func groupDigits(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
