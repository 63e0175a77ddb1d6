package garmin

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// DateFormat is the calendar-date layout used by the Garmin Connect API.
const DateFormat = "2006-01-02"

// DailyStats returns the daily wellness summary (steps, calories, heart
// rate, stress, body battery) for the given day.
func (c *Client) DailyStats(ctx context.Context, day time.Time) (map[string]any, error) {
	dn, err := c.displayName(ctx)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	err = c.getJSON(ctx, "/usersummary-service/usersummary/daily/"+url.PathEscape(dn),
		url.Values{"calendarDate": {day.Format(DateFormat)}}, &out)
	return out, err
}

// SleepData returns the nightly sleep record, including stages and scores.
func (c *Client) SleepData(ctx context.Context, day time.Time) (map[string]any, error) {
	dn, err := c.displayName(ctx)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	err = c.getJSON(ctx, "/wellness-service/wellness/dailySleepData/"+url.PathEscape(dn),
		url.Values{
			"date":                  {day.Format(DateFormat)},
			"nonSleepBufferMinutes": {"60"},
		}, &out)
	return out, err
}

// HeartRates returns the continuous heart-rate series for the day.
func (c *Client) HeartRates(ctx context.Context, day time.Time) (map[string]any, error) {
	dn, err := c.displayName(ctx)
	if err != nil {
		return nil, err
	}
	var out map[string]any
	err = c.getJSON(ctx, "/wellness-service/wellness/dailyHeartRate/"+url.PathEscape(dn),
		url.Values{"date": {day.Format(DateFormat)}}, &out)
	return out, err
}

// BodyComposition returns smart-scale readings for the day. The API wraps
// daily values in a totalAverage object; that inner object is returned so
// callers see flat weight/bmi/bodyFat keys.
func (c *Client) BodyComposition(ctx context.Context, day time.Time) (map[string]any, error) {
	ds := day.Format(DateFormat)
	var out map[string]any
	err := c.getJSON(ctx, "/weight-service/weight/dateRange",
		url.Values{"startDate": {ds}, "endDate": {ds}}, &out)
	if err != nil {
		return nil, err
	}
	if avg, ok := out["totalAverage"].(map[string]any); ok {
		return avg, nil
	}
	return out, nil
}

// Respiration returns the daily respiration-rate summary.
func (c *Client) Respiration(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/wellness-service/wellness/daily/respiration/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// SpO2 returns the daily blood-oxygen summary.
func (c *Client) SpO2(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/wellness-service/wellness/daily/spo2/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// Stress returns the daily stress summary.
func (c *Client) Stress(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/wellness-service/wellness/dailyStress/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// HRV returns the daily heart-rate-variability record.
func (c *Client) HRV(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/hrv-service/hrv/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// Hydration returns the daily hydration log.
func (c *Client) Hydration(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/usersummary-service/usersummary/hydration/daily/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// TrainingReadiness returns the training-readiness record for the day.
// The endpoint responds with a single-element list; the first entry is
// returned.
func (c *Client) TrainingReadiness(ctx context.Context, day time.Time) (map[string]any, error) {
	var out any
	err := c.getJSON(ctx, "/metrics-service/metrics/trainingreadiness/"+day.Format(DateFormat), nil, &out)
	if err != nil {
		return nil, err
	}
	return firstObject(out), nil
}

// TrainingStatus returns the aggregated training-status record.
func (c *Client) TrainingStatus(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/metrics-service/metrics/trainingstatus/aggregated/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// MaxMetrics returns VO2-max style metrics for the day. The response shape
// varies (list, wrapper object, or bare object); it is returned as-is for
// the point builder to normalize.
func (c *Client) MaxMetrics(ctx context.Context, day time.Time) (any, error) {
	ds := day.Format(DateFormat)
	var out any
	err := c.getJSON(ctx, fmt.Sprintf("/metrics-service/metrics/maxmet/daily/%s/%s", ds, ds), nil, &out)
	return out, err
}

// EnduranceScore returns the endurance-score record for the day.
func (c *Client) EnduranceScore(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/metrics-service/metrics/endurancescore",
		url.Values{"calendarDate": {day.Format(DateFormat)}}, &out)
	return out, err
}

// HillScore returns the hill-score record for the day.
func (c *Client) HillScore(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/metrics-service/metrics/hillscore",
		url.Values{"calendarDate": {day.Format(DateFormat)}}, &out)
	return out, err
}

// FitnessAge returns the fitness-age record for the day.
func (c *Client) FitnessAge(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/fitnessage-service/fitnessage/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// Floors returns the daily floors-climbed record.
func (c *Client) Floors(ctx context.Context, day time.Time) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, "/wellness-service/wellness/floors/"+day.Format(DateFormat), nil, &out)
	return out, err
}

// Activities returns the activity summaries recorded between start and end
// (inclusive).
func (c *Client) Activities(ctx context.Context, start, end time.Time) ([]map[string]any, error) {
	var out []map[string]any
	err := c.getJSON(ctx, "/activitylist-service/activities/search/activities",
		url.Values{
			"startDate": {start.Format(DateFormat)},
			"endDate":   {end.Format(DateFormat)},
			"start":     {"0"},
			"limit":     {"100"},
		}, &out)
	return out, err
}

// Activity returns the enriched summary for a single activity.
func (c *Client) Activity(ctx context.Context, activityID int64) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d", activityID), nil, &out)
	return out, err
}

// ActivitySplits returns the per-lap breakdown of an activity.
func (c *Client) ActivitySplits(ctx context.Context, activityID int64) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/splits", activityID), nil, &out)
	return out, err
}

// ActivityHRZones returns time-in-zone data for an activity. The response
// may be a list of zones or a wrapper object.
func (c *Client) ActivityHRZones(ctx context.Context, activityID int64) (any, error) {
	var out any
	err := c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/hrTimeInZones", activityID), nil, &out)
	return out, err
}

// ActivityWeather returns weather conditions recorded for an activity.
func (c *Client) ActivityWeather(ctx context.Context, activityID int64) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/weather", activityID), nil, &out)
	return out, err
}

// ActivityDetails returns the high-resolution sample stream (GPS track and
// per-sample metrics) for an activity.
func (c *Client) ActivityDetails(ctx context.Context, activityID int64) (map[string]any, error) {
	var out map[string]any
	err := c.getJSON(ctx, fmt.Sprintf("/activity-service/activity/%d/details", activityID),
		url.Values{
			"maxChartSize":    {"2000"},
			"maxPolylineSize": {"4000"},
		}, &out)
	return out, err
}

// firstObject unwraps a single-object JSON response that may arrive either
// bare or as a one-element array.
func firstObject(v any) map[string]any {
	switch x := v.(type) {
	case map[string]any:
		return x
	case []any:
		if len(x) > 0 {
			if m, ok := x[0].(map[string]any); ok {
				return m
			}
		}
	}
	return nil
}
