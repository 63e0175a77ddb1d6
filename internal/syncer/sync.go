// Package syncer drives a sync run: it resolves the date range, pulls
// every wellness and activity category from Garmin Connect day by day,
// converts the responses to points, and writes them to InfluxDB.
//
// A failing category is logged and counted but never aborts the run;
// the remaining categories and days still sync.
package syncer

import (
	"context"
	"errors"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/catgar/catgar/internal/garmin"
	"github.com/catgar/catgar/internal/logging"
	"github.com/catgar/catgar/internal/points"
)

// HealthAPI is the slice of the Garmin client the syncer consumes.
type HealthAPI interface {
	DailyStats(ctx context.Context, day time.Time) (map[string]any, error)
	SleepData(ctx context.Context, day time.Time) (map[string]any, error)
	HeartRates(ctx context.Context, day time.Time) (map[string]any, error)
	BodyComposition(ctx context.Context, day time.Time) (map[string]any, error)
	Respiration(ctx context.Context, day time.Time) (map[string]any, error)
	SpO2(ctx context.Context, day time.Time) (map[string]any, error)
	Stress(ctx context.Context, day time.Time) (map[string]any, error)
	HRV(ctx context.Context, day time.Time) (map[string]any, error)
	Hydration(ctx context.Context, day time.Time) (map[string]any, error)
	TrainingReadiness(ctx context.Context, day time.Time) (map[string]any, error)
	TrainingStatus(ctx context.Context, day time.Time) (map[string]any, error)
	MaxMetrics(ctx context.Context, day time.Time) (any, error)
	EnduranceScore(ctx context.Context, day time.Time) (map[string]any, error)
	HillScore(ctx context.Context, day time.Time) (map[string]any, error)
	FitnessAge(ctx context.Context, day time.Time) (map[string]any, error)
	Floors(ctx context.Context, day time.Time) (map[string]any, error)
	Activities(ctx context.Context, start, end time.Time) ([]map[string]any, error)
	Activity(ctx context.Context, activityID int64) (map[string]any, error)
	ActivitySplits(ctx context.Context, activityID int64) (map[string]any, error)
	ActivityHRZones(ctx context.Context, activityID int64) (any, error)
	ActivityWeather(ctx context.Context, activityID int64) (map[string]any, error)
	ActivityDetails(ctx context.Context, activityID int64) (map[string]any, error)
}

// PointWriter writes converted points to the metrics store.
type PointWriter interface {
	WritePoints(ctx context.Context, pts []*write.Point) error
}

// Summary aggregates the results of a sync run across all days.
type Summary struct {
	Counts map[string]int
	Days   int
	Errors int
	Total  int
}

func (s *Summary) add(name string, n int) {
	if s.Counts == nil {
		s.Counts = map[string]int{}
	}
	s.Counts[name] += n
	s.Total += n
}

// Runner syncs a day range from the health API into the point writer.
type Runner struct {
	api    HealthAPI
	writer PointWriter
	log    *logging.Logger
}

func NewRunner(api HealthAPI, writer PointWriter, log *logging.Logger) *Runner {
	return &Runner{api: api, writer: writer, log: log}
}

// ProbeDay reports whether Garmin has daily stats for the given day. Used
// by the backfill binary search.
func (r *Runner) ProbeDay(ctx context.Context, day time.Time) bool {
	stats, err := r.api.DailyStats(ctx, day)
	if err != nil {
		return false
	}
	for _, k := range []string{"totalSteps", "totalDistanceMeters", "restingHeartRate"} {
		if v, ok := stats[k]; ok && v != nil {
			return true
		}
	}
	return false
}

// Run syncs every day in [start, end] inclusive and returns the combined
// summary. Per-category errors are accumulated in the summary rather than
// returned; only a cancelled context stops the run early.
func (r *Runner) Run(ctx context.Context, start, end time.Time) (Summary, error) {
	summary := Summary{Counts: map[string]int{}}

	for day := truncateDay(start); !day.After(truncateDay(end)); day = day.AddDate(0, 0, 1) {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		r.log.Info("syncing day", "day", day.Format(garmin.DateFormat))
		r.syncDay(ctx, day, &summary)
		summary.Days++
	}

	return summary, nil
}

type collector struct {
	name  string
	fetch func(ctx context.Context, day time.Time) ([]*write.Point, error)
}

func (r *Runner) collectors() []collector {
	return []collector{
		{"daily stats", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.DailyStats(ctx, day)
			return points.DailyStats(data, day), err
		}},
		{"sleep", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.SleepData(ctx, day)
			return points.Sleep(data, day), err
		}},
		{"heart rate", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.HeartRates(ctx, day)
			return points.HeartRate(data), err
		}},
		{"body composition", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.BodyComposition(ctx, day)
			return points.BodyComposition(data, day), err
		}},
		{"respiration", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.Respiration(ctx, day)
			return points.Respiration(data, day), err
		}},
		{"SpO2", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.SpO2(ctx, day)
			return points.SpO2(data, day), err
		}},
		{"stress", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.Stress(ctx, day)
			return points.Stress(data, day), err
		}},
		{"HRV", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.HRV(ctx, day)
			return points.HRV(data, day), err
		}},
		{"hydration", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.Hydration(ctx, day)
			return points.Hydration(data, day), err
		}},
		{"training readiness", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.TrainingReadiness(ctx, day)
			return points.TrainingReadiness(data, day), err
		}},
		{"training status", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.TrainingStatus(ctx, day)
			return points.TrainingStatus(data, day), err
		}},
		{"max metrics", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.MaxMetrics(ctx, day)
			return points.MaxMetrics(data, day), err
		}},
		{"endurance score", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.EnduranceScore(ctx, day)
			return points.EnduranceScore(data, day), err
		}},
		{"hill score", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.HillScore(ctx, day)
			return points.HillScore(data, day), err
		}},
		{"fitness age", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.FitnessAge(ctx, day)
			return points.FitnessAge(data, day), err
		}},
		{"floors", func(ctx context.Context, day time.Time) ([]*write.Point, error) {
			data, err := r.api.Floors(ctx, day)
			return points.Floors(data, day), err
		}},
	}
}

func (r *Runner) syncDay(ctx context.Context, day time.Time, summary *Summary) {
	for _, col := range r.collectors() {
		pts, err := col.fetch(ctx, day)
		if err != nil {
			if errors.Is(err, garmin.ErrNoData) {
				r.log.Info("no data", "category", col.name)
			} else {
				r.log.Warn("collector failed", "category", col.name, "error", err)
				summary.Errors++
			}
			continue
		}
		if len(pts) == 0 {
			r.log.Info("no data", "category", col.name)
			continue
		}
		if err := r.writer.WritePoints(ctx, pts); err != nil {
			r.log.Warn("write failed", "category", col.name, "error", err)
			summary.Errors++
			continue
		}
		summary.add(col.name, len(pts))
		r.log.Info("wrote points", "category", col.name, "points", len(pts))
	}

	r.syncActivities(ctx, day, summary)
}

func (r *Runner) syncActivities(ctx context.Context, day time.Time, summary *Summary) {
	activities, err := r.api.Activities(ctx, day, day)
	if err != nil {
		if errors.Is(err, garmin.ErrNoData) {
			r.log.Info("no data", "category", "activities")
		} else {
			r.log.Warn("collector failed", "category", "activities", "error", err)
			summary.Errors++
		}
		return
	}

	pts := points.Activities(activities)
	if len(pts) > 0 {
		if err := r.writer.WritePoints(ctx, pts); err != nil {
			r.log.Warn("write failed", "category", "activities", "error", err)
			summary.Errors++
			return
		}
		summary.add("activities", len(pts))
		r.log.Info("wrote points", "category", "activities", "points", len(pts))
	} else {
		r.log.Info("no data", "category", "activities")
	}

	for _, act := range activities {
		meta, ok := points.ActivityMeta(act)
		if !ok {
			continue
		}
		r.syncActivityDetails(ctx, meta, summary)
	}
}

// syncActivityDetails pulls the per-activity detail endpoints. These are
// best effort: failures are logged at debug and never counted as errors,
// since many activity types lack splits, weather, or GPS tracks.
func (r *Runner) syncActivityDetails(ctx context.Context, meta points.Meta, summary *Summary) {
	details := []struct {
		name  string
		fetch func(ctx context.Context) ([]*write.Point, error)
	}{
		{"activity details", func(ctx context.Context) ([]*write.Point, error) {
			data, err := r.api.Activity(ctx, meta.ID)
			return points.ActivityDetail(data, meta), err
		}},
		{"activity splits", func(ctx context.Context) ([]*write.Point, error) {
			data, err := r.api.ActivitySplits(ctx, meta.ID)
			return points.ActivitySplits(data, meta), err
		}},
		{"activity HR zones", func(ctx context.Context) ([]*write.Point, error) {
			data, err := r.api.ActivityHRZones(ctx, meta.ID)
			return points.ActivityHRZones(data, meta), err
		}},
		{"activity weather", func(ctx context.Context) ([]*write.Point, error) {
			data, err := r.api.ActivityWeather(ctx, meta.ID)
			return points.ActivityWeather(data, meta), err
		}},
		{"activity track", func(ctx context.Context) ([]*write.Point, error) {
			data, err := r.api.ActivityDetails(ctx, meta.ID)
			return points.ActivityTrack(data, meta), err
		}},
	}

	for _, d := range details {
		pts, err := d.fetch(ctx)
		if err != nil {
			r.log.Debug("activity detail unavailable", "category", d.name, "activity_id", meta.ID, "error", err)
			continue
		}
		if len(pts) == 0 {
			continue
		}
		if err := r.writer.WritePoints(ctx, pts); err != nil {
			r.log.Debug("activity detail write failed", "category", d.name, "activity_id", meta.ID, "error", err)
			continue
		}
		summary.add(d.name, len(pts))
		r.log.Info("wrote points", "category", d.name, "activity_id", meta.ID, "points", len(pts))
	}
}
