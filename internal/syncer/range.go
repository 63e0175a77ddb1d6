package syncer

import (
	"context"
	"fmt"
	"time"
)

// backfillMaxDays bounds how far back a full backfill will probe.
const backfillMaxDays = 365 * 5

// Options selects the date range for a sync run.
type Options struct {
	// Date syncs a single explicit day (YYYY-MM-DD). Takes precedence
	// over Days and Backfill.
	Date string
	// Days syncs the past N days ending today. Zero means unset.
	Days int
	// Backfill searches for the oldest day with data and syncs forward.
	Backfill bool
}

// ErrUpToDate is returned by ResolveRange when the ledger shows every day
// through today has already been synced.
type ErrUpToDate struct {
	LastDay time.Time
}

func (e ErrUpToDate) Error() string {
	return fmt.Sprintf("already synced up to %s", e.LastDay.Format("2006-01-02"))
}

// DayProber reports whether Garmin has any data for a given day.
type DayProber func(ctx context.Context, day time.Time) bool

// LastSyncFunc returns the last fully synced day, if any.
type LastSyncFunc func() (time.Time, bool, error)

// ResolveRange turns Options into an inclusive [start, end] day range.
//
// Precedence: explicit date, then backfill, then days, then auto mode.
// Auto mode resumes the day after the last successful sync and returns
// ErrUpToDate when there is nothing left to do; with no recorded sync it
// falls back to just today.
func ResolveRange(ctx context.Context, opts Options, today time.Time, lastSync LastSyncFunc, probe DayProber) (start, end time.Time, err error) {
	today = truncateDay(today)

	switch {
	case opts.Date != "":
		start, err = time.Parse("2006-01-02", opts.Date)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", opts.Date, err)
		}
		return start, start, nil

	case opts.Backfill:
		earliest := today.AddDate(0, 0, -backfillMaxDays)
		start = FindOldestAvailable(ctx, probe, earliest, today)
		return start, today, nil

	case opts.Days > 0:
		start = today.AddDate(0, 0, -(opts.Days - 1))
		return start, today, nil

	default:
		last, ok, err := lastSync()
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if ok {
			start = truncateDay(last).AddDate(0, 0, 1)
			if start.After(today) {
				return time.Time{}, time.Time{}, ErrUpToDate{LastDay: truncateDay(last)}
			}
			return start, today, nil
		}
		return today, today, nil
	}
}

// FindOldestAvailable binary-searches for the oldest day in
// [earliest, latest] that has data, narrowing the window in O(log n)
// probes instead of checking every day. Returns latest when the whole
// range is empty.
func FindOldestAvailable(ctx context.Context, probe DayProber, earliest, latest time.Time) time.Time {
	earliest = truncateDay(earliest)
	latest = truncateDay(latest)

	low := 0
	high := daysBetween(earliest, latest)

	if high <= 0 {
		return latest
	}

	// Earliest day already has data: the whole window is available.
	if probe(ctx, earliest) {
		return earliest
	}

	// Latest day has no data: nothing to backfill.
	if !probe(ctx, latest) {
		return latest
	}

	for low < high {
		if ctx.Err() != nil {
			break
		}
		mid := (low + high) / 2
		if probe(ctx, earliest.AddDate(0, 0, mid)) {
			high = mid
		} else {
			low = mid + 1
		}
	}

	return earliest.AddDate(0, 0, low)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
