package points

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

var dailyStatsFields = []Mapping{
	{"totalSteps", "steps"},
	{"totalDistanceMeters", "distance_meters"},
	{"activeKilocalories", "active_kcal"},
	{"totalKilocalories", "total_kcal"},
	{"restingHeartRate", "resting_hr"},
	{"maxHeartRate", "max_hr"},
	{"minHeartRate", "min_hr"},
	{"averageHeartRate", "avg_hr"},
	{"moderateIntensityMinutes", "moderate_intensity_min"},
	{"vigorousIntensityMinutes", "vigorous_intensity_min"},
	{"floorsAscended", "floors_ascended"},
	{"floorsDescended", "floors_descended"},
	{"averageStressLevel", "avg_stress"},
	{"maxStressLevel", "max_stress"},
	{"bodyBatteryChargedValue", "body_battery_charged"},
	{"bodyBatteryDrainedValue", "body_battery_drained"},
	{"bodyBatteryHighestValue", "body_battery_high"},
	{"bodyBatteryLowestValue", "body_battery_low"},
}

// DailyStats converts the daily wellness summary into a daily_stats point.
func DailyStats(stats map[string]any, day time.Time) []*write.Point {
	return buildDaily("daily_stats", stats, dailyStatsFields, day)
}

var sleepFields = []Mapping{
	{"sleepTimeSeconds", "sleep_time_sec"},
	{"deepSleepSeconds", "deep_sleep_sec"},
	{"lightSleepSeconds", "light_sleep_sec"},
	{"remSleepSeconds", "rem_sleep_sec"},
	{"awakeSleepSeconds", "awake_sec"},
	{"averageSpO2Value", "avg_spo2"},
	{"lowestSpO2Value", "lowest_spo2"},
	{"averageRespirationValue", "avg_respiration"},
	{"lowestRespirationValue", "lowest_respiration"},
	{"highestRespirationValue", "highest_respiration"},
	{"averageSpO2HRSleep", "avg_hr_sleep"},
}

// sleepScoreKeys are the entries of the nested sleepScores object that are
// persisted, as score_<key> fields.
var sleepScoreKeys = []string{"overall", "totalDuration", "stress", "revitalizationScore"}

// Sleep converts the nightly sleep record into a sleep point. The summary
// lives under dailySleepDTO; sleep scores are nested one level further and
// may be raw numbers or {value: N} objects.
func Sleep(sleepData map[string]any, day time.Time) []*write.Point {
	summary := getMap(sleepData, "dailySleepDTO")
	if len(summary) == 0 {
		return nil
	}

	fields := mapFields(summary, sleepFields, "sleep")

	if scores := getMap(summary, "sleepScores"); len(scores) > 0 {
		for _, key := range sleepScoreKeys {
			v, ok := scores[key]
			if !ok || v == nil {
				continue
			}
			if obj, ok := v.(map[string]any); ok {
				v = obj["value"]
			}
			if f, ok := toFloat(v); ok {
				fields["score_"+key] = f
			}
		}
	}

	for k, v := range collectExtras(summary, knownKeys(sleepFields, "sleepScores"), "sleep") {
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil
	}

	return []*write.Point{write.NewPoint("sleep", nil, fields, day)}
}

// HeartRate converts the continuous heart-rate series into one heart_rate
// point per sample. Samples arrive as [timestamp_ms, bpm] pairs under
// heartRateValues; a list of such records is also accepted.
func HeartRate(hrData any) []*write.Point {
	var records []map[string]any
	switch x := hrData.(type) {
	case map[string]any:
		records = append(records, x)
	case []any:
		for _, e := range x {
			if m, ok := e.(map[string]any); ok {
				records = append(records, m)
			}
		}
	}

	var pts []*write.Point
	for _, rec := range records {
		values, ok := rec["heartRateValues"].([]any)
		if !ok {
			continue
		}
		for _, raw := range values {
			pair, ok := raw.([]any)
			if !ok || len(pair) != 2 || pair[0] == nil || pair[1] == nil {
				continue
			}
			tsMS, ok := toFloat(pair[0])
			if !ok {
				continue
			}
			bpm, ok := toFloat(pair[1])
			if !ok {
				continue
			}
			pts = append(pts, write.NewPoint("heart_rate", nil,
				map[string]any{"bpm": int64(bpm)},
				time.UnixMilli(int64(tsMS)).UTC()))
		}
	}
	return pts
}

var bodyCompositionFields = []Mapping{
	{"weight", "weight_grams"},
	{"bmi", "bmi"},
	{"bodyFat", "body_fat_pct"},
	{"bodyWater", "body_water_pct"},
	{"muscleMass", "muscle_mass_grams"},
	{"skeletalMuscleMass", "skeletal_muscle_mass_grams"},
	{"boneMass", "bone_mass_grams"},
	{"metabolicAge", "metabolic_age"},
	{"visceralFat", "visceral_fat"},
	{"weightChange", "weight_change"},
	{"physiqueRating", "physique_rating"},
}

// BodyComposition converts smart-scale readings into a body_composition point.
func BodyComposition(bodyData map[string]any, day time.Time) []*write.Point {
	return buildDaily("body_composition", bodyData, bodyCompositionFields, day)
}

var respirationFields = []Mapping{
	{"avgWakingRespirationValue", "avg_waking_respiration"},
	{"highestRespirationValue", "highest_respiration"},
	{"lowestRespirationValue", "lowest_respiration"},
	{"avgSleepRespirationValue", "avg_sleep_respiration"},
}

// Respiration converts the daily respiration summary into a respiration point.
func Respiration(respData map[string]any, day time.Time) []*write.Point {
	return buildDaily("respiration", respData, respirationFields, day)
}

// spo2Fields keep the vendor key names as field names.
var spo2Fields = []Mapping{
	{"averageSpO2", "averageSpO2"},
	{"lowestSpO2", "lowestSpO2"},
	{"latestSpO2", "latestSpO2"},
}

// SpO2 converts the daily blood-oxygen summary into a spo2 point.
func SpO2(spo2Data map[string]any, day time.Time) []*write.Point {
	return buildDaily("spo2", spo2Data, spo2Fields, day)
}

var stressFields = []Mapping{
	{"avgStressLevel", "avg_stress"},
	{"maxStressLevel", "max_stress"},
	{"totalStressDuration", "total_stress_duration"},
	{"lowStressDuration", "low_stress_duration"},
	{"mediumStressDuration", "medium_stress_duration"},
	{"highStressDuration", "high_stress_duration"},
	{"totalRestStressDuration", "rest_stress_duration"},
}

// Stress converts the daily stress summary into a stress point.
func Stress(stressData map[string]any, day time.Time) []*write.Point {
	return buildDaily("stress", stressData, stressFields, day)
}

var hrvFields = []Mapping{
	{"weeklyAvg", "weekly_avg"},
	{"lastNight", "last_night"},
	{"lastNightAvg", "last_night_avg"},
	{"lastNight5MinHigh", "last_night_5min_high"},
}

var hrvBaselineKeys = []string{"lowUpper", "balancedLow", "balancedUpper"}

// HRV converts the daily heart-rate-variability record into an hrv point.
// The summary may sit under hrvSummary or at the top level; the baseline
// range is a nested object flattened to baseline_<key> fields.
func HRV(hrvData map[string]any, day time.Time) []*write.Point {
	if len(hrvData) == 0 {
		return nil
	}
	summary := hrvData
	if s := getMap(hrvData, "hrvSummary"); len(s) > 0 {
		summary = s
	}

	fields := mapFields(summary, hrvFields, "hrv")

	if baseline := getMap(summary, "baseline"); len(baseline) > 0 {
		for _, key := range hrvBaselineKeys {
			if v, ok := baseline[key]; ok && v != nil {
				if f, ok := toFloat(v); ok {
					fields["baseline_"+key] = f
				}
			}
		}
	}

	for k, v := range collectExtras(summary, knownKeys(hrvFields, "baseline", "status"), "hrv") {
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil
	}

	return []*write.Point{write.NewPoint("hrv", nil, fields, day)}
}

var hydrationFields = []Mapping{
	{"valueInML", "intake_ml"},
	{"goalInML", "goal_ml"},
	{"sweatLossInML", "sweat_loss_ml"},
}

// Hydration converts the daily hydration log into a hydration point.
func Hydration(hydrationData map[string]any, day time.Time) []*write.Point {
	return buildDaily("hydration", hydrationData, hydrationFields, day)
}

var trainingReadinessFields = []Mapping{
	{"score", "score"},
	{"sleepScore", "sleep_score"},
	{"recoveryTime", "recovery_time"},
	{"acuteLoad", "acute_load"},
	{"hrvStatus", "hrv_status"},
	{"trainingLoad", "training_load"},
}

// TrainingReadiness converts the readiness record into a training_readiness point.
func TrainingReadiness(readinessData map[string]any, day time.Time) []*write.Point {
	return buildDaily("training_readiness", readinessData, trainingReadinessFields, day)
}

var trainingStatusFields = []Mapping{
	{"trainingLoadBalance", "load_balance"},
	{"ltTimestamp", "lt_timestamp"},
	{"vo2MaxValue", "vo2max"},
	{"loadFocus", "load_focus"},
	{"lactateThresholdHeartRate", "lt_heart_rate"},
	{"lactateThresholdSpeed", "lt_speed"},
}

// TrainingStatus converts the training-status record into a training_status point.
func TrainingStatus(statusData map[string]any, day time.Time) []*write.Point {
	return buildDaily("training_status", statusData, trainingStatusFields, day)
}

var maxMetricsFields = []Mapping{
	{"vo2MaxPreciseValue", "vo2max_precise"},
	{"vo2MaxValue", "vo2max"},
	{"fitnessAge", "fitness_age"},
}

// MaxMetrics converts VO2-max style metrics into max_metrics points, one
// per entry, tagged by sport. The response may be a list, a
// {maxMetrics: [...]} wrapper, or a bare object.
func MaxMetrics(metricsData any, day time.Time) []*write.Point {
	var entries []any
	switch x := metricsData.(type) {
	case nil:
		return nil
	case []any:
		entries = x
	case map[string]any:
		if wrapped, ok := x["maxMetrics"].([]any); ok {
			entries = wrapped
		} else if len(x) > 0 {
			entries = []any{x}
		}
	}

	var pts []*write.Point
	for _, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		sport := getString(entry, "sport", getString(entry, "metricsType", "generic"))

		fields := mapFields(entry, maxMetricsFields, "max_metrics")
		known := knownKeys(maxMetricsFields, "sport", "metricsType", "fitnessAgeDescription")
		for k, v := range collectExtras(entry, known, "max_metrics") {
			fields[k] = v
		}
		if len(fields) == 0 {
			continue
		}

		pts = append(pts, write.NewPoint("max_metrics",
			map[string]string{"sport": sport}, fields, day))
	}
	return pts
}

var enduranceScoreFields = []Mapping{
	{"overallScore", "overall_score"},
	{"enduranceScore", "endurance_score"},
}

// EnduranceScore converts the endurance-score record into an endurance_score point.
func EnduranceScore(scoreData map[string]any, day time.Time) []*write.Point {
	return buildDaily("endurance_score", scoreData, enduranceScoreFields, day)
}

var hillScoreFields = []Mapping{
	{"overallScore", "overall_score"},
	{"hillScore", "hill_score"},
}

// HillScore converts the hill-score record into a hill_score point.
func HillScore(scoreData map[string]any, day time.Time) []*write.Point {
	return buildDaily("hill_score", scoreData, hillScoreFields, day)
}

var fitnessAgeFields = []Mapping{
	{"fitnessAge", "fitness_age"},
	{"chronologicalAge", "chronological_age"},
	{"bmi", "bmi"},
	{"healthyBmiTop", "healthy_bmi_top"},
	{"healthyBmiBottom", "healthy_bmi_bottom"},
	{"vigorousMinutes", "vigorous_minutes"},
	{"vigorousMinutesGoal", "vigorous_minutes_goal"},
	{"restingHr", "resting_hr"},
	{"restingHrGoal", "resting_hr_goal"},
}

// FitnessAge converts the fitness-age record into a fitness_age point.
func FitnessAge(ageData map[string]any, day time.Time) []*write.Point {
	return buildDaily("fitness_age", ageData, fitnessAgeFields, day)
}

var floorsFields = []Mapping{
	{"floorsAscended", "floors_ascended"},
	{"floorsDescended", "floors_descended"},
	{"floorsAscendedGoal", "floors_ascended_goal"},
}

// Floors converts the daily floors record into a floors point.
func Floors(floorsData map[string]any, day time.Time) []*write.Point {
	return buildDaily("floors", floorsData, floorsFields, day)
}
