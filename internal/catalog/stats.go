package catalog

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Stats summarizes a series of field values.
type Stats struct {
	Count  int
	Min    float64
	Max    float64
	Mean   float64
	Median float64
	Stdev  float64
}

// ComputeStats returns summary statistics for values, or nil when empty.
func ComputeStats(values []float64) *Stats {
	n := len(values)
	if n == 0 {
		return nil
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	sum := 0.0
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var median float64
	if n%2 == 1 {
		median = sorted[n/2]
	} else {
		median = (sorted[n/2-1] + sorted[n/2]) / 2
	}

	stdev := 0.0
	if n >= 2 {
		ss := 0.0
		for _, v := range sorted {
			d := v - mean
			ss += d * d
		}
		stdev = math.Sqrt(ss / float64(n-1))
	}

	return &Stats{
		Count:  n,
		Min:    sorted[0],
		Max:    sorted[n-1],
		Mean:   mean,
		Median: median,
		Stdev:  stdev,
	}
}

// FormatValue renders a numeric value for display: whole numbers below a
// million without decimals, everything else to one decimal place.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1_000_000 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.1f", v)
}

// Histogram builds a compact horizontal ASCII histogram, one line per bin.
func Histogram(values []float64, bins, width int) []string {
	if len(values) == 0 {
		return nil
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	if lo == hi {
		return []string{fmt.Sprintf("  [%s] %s (%d)",
			FormatValue(lo), strings.Repeat("█", width), len(values))}
	}

	step := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, v := range values {
		idx := int((v - lo) / step)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}

	lines := make([]string, 0, bins)
	for i, c := range counts {
		binLo := lo + float64(i)*step
		binHi := lo + float64(i+1)*step
		barLen := 0
		if maxCount > 0 {
			barLen = c * width / maxCount
		}
		label := fmt.Sprintf("%8s-%-8s", FormatValue(binLo), FormatValue(binHi))
		lines = append(lines, fmt.Sprintf("  %s %s %d", label, strings.Repeat("█", barLen), c))
	}

	return lines
}
