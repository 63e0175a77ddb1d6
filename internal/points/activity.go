package points

import (
	"strconv"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// activityTimeLayout is the timestamp layout of startTimeLocal/startTimeGMT.
const activityTimeLayout = "2006-01-02 15:04:05"

// Meta identifies one activity for the per-activity collectors.
type Meta struct {
	ID    int64
	Type  string
	Name  string
	Start time.Time
}

// ActivityMeta extracts the identity of an activity summary: id, type key,
// name, and start time (local preferred, GMT fallback). ok is false when
// the id or a parseable start time is missing.
func ActivityMeta(act map[string]any) (Meta, bool) {
	id, ok := toFloat(act["activityId"])
	if !ok || id == 0 {
		return Meta{}, false
	}

	start, ok := activityStart(act)
	if !ok {
		return Meta{}, false
	}

	actType := "unknown"
	if t := getMap(act, "activityType"); t != nil {
		actType = getString(t, "typeKey", "unknown")
	}

	return Meta{
		ID:    int64(id),
		Type:  actType,
		Name:  getString(act, "activityName", ""),
		Start: start,
	}, true
}

func activityStart(act map[string]any) (time.Time, bool) {
	ts := getString(act, "startTimeLocal", getString(act, "startTimeGMT", ""))
	if ts == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(activityTimeLayout, ts)
	if err != nil {
		return time.Time{}, false
	}
	return t.UTC(), true
}

var activityFields = []Mapping{
	{"distance", "distance_meters"},
	{"duration", "duration_sec"},
	{"elapsedDuration", "elapsed_sec"},
	{"movingDuration", "moving_sec"},
	{"averageHR", "avg_hr"},
	{"maxHR", "max_hr"},
	{"calories", "calories"},
	{"averageSpeed", "avg_speed"},
	{"maxSpeed", "max_speed"},
	{"elevationGain", "elevation_gain"},
	{"elevationLoss", "elevation_loss"},
	{"averageRunningCadenceInStepsPerMinute", "avg_cadence"},
	{"steps", "steps"},
	{"vO2MaxValue", "vo2max"},
	{"avgPower", "avg_power"},
	{"maxPower", "max_power"},
}

// Activities converts activity summaries into activity points, tagged by
// type and name and timestamped at the start time. Entries without a start
// time or without any usable field are skipped.
func Activities(activities []map[string]any) []*write.Point {
	var pts []*write.Point
	for _, act := range activities {
		start, ok := activityStart(act)
		if !ok {
			continue
		}

		actType := "unknown"
		if t := getMap(act, "activityType"); t != nil {
			actType = getString(t, "typeKey", "unknown")
		}

		fields := mapFields(act, activityFields, "activity")
		if len(fields) == 0 {
			continue
		}

		pts = append(pts, write.NewPoint("activity",
			map[string]string{
				"type": actType,
				"name": getString(act, "activityName", ""),
			},
			fields, start))
	}
	return pts
}

var activityDetailFields = []Mapping{
	{"trainingEffect", "training_effect_aerobic"},
	{"anaerobicTrainingEffect", "training_effect_anaerobic"},
	{"performanceCondition", "performance_condition"},
	{"lactateThreshold", "lactate_threshold"},
	{"normalizedPower", "normalized_power"},
	{"groundContactTime", "ground_contact_time"},
	{"groundContactBalanceLeft", "ground_contact_balance_left"},
	{"strideLength", "stride_length"},
	{"verticalOscillation", "vertical_oscillation"},
	{"verticalRatio", "vertical_ratio"},
	{"trainingStressScore", "training_stress_score"},
	{"intensityFactor", "intensity_factor"},
	{"functionalThresholdPower", "ftp"},
	{"minTemperature", "min_temperature"},
	{"maxTemperature", "max_temperature"},
	{"minElevation", "min_elevation"},
	{"maxElevation", "max_elevation"},
	{"maxRunCadence", "max_cadence"},
	{"maxBikeCadence", "max_bike_cadence"},
	{"lapCount", "lap_count"},
	{"waterEstimated", "water_estimated_ml"},
}

// ActivityDetail converts the enriched per-activity summary into an
// activity_detail point. The metrics live under summaryDTO when present.
func ActivityDetail(detailData map[string]any, meta Meta) []*write.Point {
	if len(detailData) == 0 {
		return nil
	}
	summary := detailData
	if s := getMap(detailData, "summaryDTO"); len(s) > 0 {
		summary = s
	}

	fields := mapFields(summary, activityDetailFields, "activity_detail")
	if len(fields) == 0 {
		return nil
	}

	return []*write.Point{write.NewPoint("activity_detail", activityTags(meta), fields, meta.Start)}
}

var activitySplitFields = []Mapping{
	{"distance", "distance_meters"},
	{"duration", "duration_sec"},
	{"movingDuration", "moving_sec"},
	{"averageHR", "avg_hr"},
	{"maxHR", "max_hr"},
	{"averageSpeed", "avg_speed"},
	{"maxSpeed", "max_speed"},
	{"calories", "calories"},
	{"elevationGain", "elevation_gain"},
	{"elevationLoss", "elevation_loss"},
	{"averageRunCadence", "avg_cadence"},
	{"maxRunCadence", "max_cadence"},
	{"averagePower", "avg_power"},
	{"maxPower", "max_power"},
	{"startLatitude", "start_lat"},
	{"startLongitude", "start_lon"},
	{"endLatitude", "end_lat"},
	{"endLongitude", "end_lon"},
	{"totalExerciseReps", "total_reps"},
}

// ActivitySplits converts per-lap data into activity_split points, one per
// lap, tagged with the 1-based split number. Laps come from lapDTOs with
// splitSummaries as a fallback.
func ActivitySplits(splitsData map[string]any, meta Meta) []*write.Point {
	if len(splitsData) == 0 {
		return nil
	}

	laps, ok := splitsData["lapDTOs"].([]any)
	if !ok || len(laps) == 0 {
		laps, _ = splitsData["splitSummaries"].([]any)
	}

	var pts []*write.Point
	for i, raw := range laps {
		lap, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		fields := mapFields(lap, activitySplitFields, "activity_split")
		if len(fields) == 0 {
			continue
		}

		tags := activityTags(meta)
		tags["split_num"] = strconv.Itoa(i + 1)
		pts = append(pts, write.NewPoint("activity_split", tags, fields, meta.Start))
	}
	return pts
}

var activityHRZoneFields = []Mapping{
	{"secsInZone", "secs_in_zone"},
	{"zoneLowBoundary", "zone_low_bpm"},
	{"zoneHighBoundary", "zone_high_bpm"},
}

// ActivityHRZones converts time-in-zone data into activity_hr_zone points,
// one per zone. Zones may arrive as a bare list or under hrTimeInZones /
// heartRateZones.
func ActivityHRZones(zonesData any, meta Meta) []*write.Point {
	var zones []any
	switch x := zonesData.(type) {
	case []any:
		zones = x
	case map[string]any:
		if z, ok := x["hrTimeInZones"].([]any); ok {
			zones = z
		} else if z, ok := x["heartRateZones"].([]any); ok {
			zones = z
		}
	}

	var pts []*write.Point
	for _, raw := range zones {
		zone, ok := raw.(map[string]any)
		if !ok {
			continue
		}

		zoneNum, ok := toFloat(zone["zoneNumber"])
		if !ok {
			zoneNum, ok = toFloat(zone["zone"])
		}
		if !ok {
			continue
		}

		fields := mapFields(zone, activityHRZoneFields, "activity_hr_zone")
		if len(fields) == 0 {
			continue
		}

		tags := activityTags(meta)
		tags["zone"] = strconv.Itoa(int(zoneNum))
		pts = append(pts, write.NewPoint("activity_hr_zone", tags, fields, meta.Start))
	}
	return pts
}

var activityWeatherFields = []Mapping{
	{"temperature", "temperature_c"},
	{"apparentTemperature", "feels_like_c"},
	{"dewPoint", "dew_point_c"},
	{"relativeHumidity", "humidity_pct"},
	{"windDirection", "wind_direction_deg"},
	{"windSpeed", "wind_speed_mps"},
	{"windGust", "wind_gust_mps"},
}

// ActivityWeather converts weather conditions into an activity_weather point.
func ActivityWeather(weatherData map[string]any, meta Meta) []*write.Point {
	if len(weatherData) == 0 {
		return nil
	}

	fields := mapFields(weatherData, activityWeatherFields, "activity_weather")
	if len(fields) == 0 {
		return nil
	}

	return []*write.Point{write.NewPoint("activity_weather", activityTags(meta), fields, meta.Start)}
}

// ActivityTrack converts the high-resolution sample stream into
// activity_track points, one per GPS sample. Sample values are positional
// arrays located via the metricDescriptors index mapping; every numeric
// metric present at a sample is captured alongside lat/lon.
func ActivityTrack(detailData map[string]any, meta Meta) []*write.Point {
	if len(detailData) == 0 {
		return nil
	}

	descriptors, _ := detailData["metricDescriptors"].([]any)
	samples, _ := detailData["activityDetailMetrics"].([]any)
	if len(descriptors) == 0 || len(samples) == 0 {
		return nil
	}

	keyToIdx := make(map[string]int)
	for _, raw := range descriptors {
		desc, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		key := getString(desc, "key", "")
		idx, idxOK := toFloat(desc["metricsIndex"])
		if key != "" && idxOK {
			keyToIdx[key] = int(idx)
		}
	}

	latIdx, latOK := keyToIdx["directLatitude"]
	lonIdx, lonOK := keyToIdx["directLongitude"]
	if !latOK || !lonOK {
		return nil
	}

	var pts []*write.Point
	for sampleNum, raw := range samples {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		metrics, ok := entry["metrics"].([]any)
		if !ok || latIdx >= len(metrics) || lonIdx >= len(metrics) {
			continue
		}

		lat, latOK := toFloat(metrics[latIdx])
		lon, lonOK := toFloat(metrics[lonIdx])
		if !latOK || !lonOK {
			continue
		}

		fields := map[string]any{
			"lat": lat,
			"lon": lon,
		}
		for key, idx := range keyToIdx {
			if key == "directLatitude" || key == "directLongitude" {
				continue
			}
			if idx >= len(metrics) || metrics[idx] == nil {
				continue
			}
			if f, ok := toFloat(metrics[idx]); ok {
				fields[key] = f
			}
		}

		tags := activityTags(meta)
		tags["point_idx"] = strconv.Itoa(sampleNum)
		pts = append(pts, write.NewPoint("activity_track", tags, fields, meta.Start))
	}
	return pts
}

// activityTags returns the common tag set for activity-scoped measurements.
func activityTags(meta Meta) map[string]string {
	return map[string]string{
		"type":        meta.Type,
		"name":        meta.Name,
		"activity_id": strconv.FormatInt(meta.ID, 10),
	}
}
