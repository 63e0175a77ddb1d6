// Package catalog describes every measurement written to InfluxDB: its
// fields, tags, and source endpoint. The catalog backs the reference
// printout and the live data-summary report.
package catalog

// Field maps a Garmin response key to its InfluxDB field name.
type Field struct {
	GarminKey   string
	InfluxField string
	Description string
}

// Category is one InfluxDB measurement with its full field reference.
type Category struct {
	Measurement string
	DisplayName string
	Description string
	GarminAPI   string
	Frequency   string
	Fields      []Field
	Tags        []string
	Notes       string
}

// All returns the complete catalog in display order.
func All() []Category {
	return []Category{
		{
			Measurement: "daily_stats",
			DisplayName: "daily stats",
			Description: "Daily summary of steps, calories, heart rate, stress, body battery, and activity intensity.",
			GarminAPI:   "DailyStats(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"totalSteps", "steps", "Total steps for the day"},
				{"totalDistanceMeters", "distance_meters", "Total distance walked/run in meters"},
				{"activeKilocalories", "active_kcal", "Calories burned through activity"},
				{"totalKilocalories", "total_kcal", "Total calories burned (active + resting)"},
				{"restingHeartRate", "resting_hr", "Resting heart rate (bpm)"},
				{"maxHeartRate", "max_hr", "Maximum heart rate recorded (bpm)"},
				{"minHeartRate", "min_hr", "Minimum heart rate recorded (bpm)"},
				{"averageHeartRate", "avg_hr", "Average heart rate (bpm)"},
				{"moderateIntensityMinutes", "moderate_intensity_min", "Minutes of moderate-intensity activity"},
				{"vigorousIntensityMinutes", "vigorous_intensity_min", "Minutes of vigorous-intensity activity"},
				{"floorsAscended", "floors_ascended", "Floors climbed up"},
				{"floorsDescended", "floors_descended", "Floors descended"},
				{"averageStressLevel", "avg_stress", "Average stress level (0-100)"},
				{"maxStressLevel", "max_stress", "Maximum stress level (0-100)"},
				{"bodyBatteryChargedValue", "body_battery_charged", "Body battery energy gained"},
				{"bodyBatteryDrainedValue", "body_battery_drained", "Body battery energy used"},
				{"bodyBatteryHighestValue", "body_battery_high", "Highest body battery level"},
				{"bodyBatteryLowestValue", "body_battery_low", "Lowest body battery level"},
			},
			Notes: "Core daily wellness snapshot. Great for trend analysis over weeks/months.",
		},
		{
			Measurement: "sleep",
			DisplayName: "sleep",
			Description: "Nightly sleep duration, stages, respiration, SpO2, heart rate, and sleep quality scores.",
			GarminAPI:   "SleepData(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"sleepTimeSeconds", "sleep_time_sec", "Total sleep time in seconds"},
				{"deepSleepSeconds", "deep_sleep_sec", "Deep sleep duration in seconds"},
				{"lightSleepSeconds", "light_sleep_sec", "Light sleep duration in seconds"},
				{"remSleepSeconds", "rem_sleep_sec", "REM sleep duration in seconds"},
				{"awakeSleepSeconds", "awake_sec", "Time awake during sleep in seconds"},
				{"averageSpO2Value", "avg_spo2", "Average blood oxygen during sleep (%)"},
				{"lowestSpO2Value", "lowest_spo2", "Lowest blood oxygen during sleep (%)"},
				{"averageRespirationValue", "avg_respiration", "Average respiration rate during sleep (breaths/min)"},
				{"lowestRespirationValue", "lowest_respiration", "Lowest respiration rate during sleep"},
				{"highestRespirationValue", "highest_respiration", "Highest respiration rate during sleep"},
				{"averageSpO2HRSleep", "avg_hr_sleep", "Average heart rate during sleep (bpm)"},
				{"sleepScores.overall", "score_overall", "Overall sleep quality score"},
				{"sleepScores.totalDuration", "score_totalDuration", "Sleep duration score"},
				{"sleepScores.stress", "score_stress", "Sleep stress score"},
				{"sleepScores.revitalizationScore", "score_revitalizationScore", "Sleep revitalization score"},
			},
			Notes: "Sleep data is nested under dailySleepDTO. Sleep scores may be raw numbers or {value: N} objects.",
		},
		{
			Measurement: "heart_rate",
			DisplayName: "heart rate",
			Description: "Continuous heart rate readings throughout the day, typically every 15-60 seconds.",
			GarminAPI:   "HeartRates(day)",
			Frequency:   "per-reading (sub-minute intervals)",
			Fields: []Field{
				{"heartRateValues[timestamp_ms, bpm]", "bpm", "Heart rate in beats per minute"},
			},
			Notes: "High-frequency time series. Timestamps are in milliseconds. Expect 500-2000+ points per day.",
		},
		{
			Measurement: "activity",
			DisplayName: "activities",
			Description: "Individual workout/activity sessions (runs, rides, walks, etc.) with performance metrics.",
			GarminAPI:   "Activities(day, day)",
			Frequency:   "per-activity",
			Fields: []Field{
				{"distance", "distance_meters", "Total distance in meters"},
				{"duration", "duration_sec", "Activity duration in seconds"},
				{"elapsedDuration", "elapsed_sec", "Total elapsed time in seconds"},
				{"movingDuration", "moving_sec", "Moving time in seconds"},
				{"averageHR", "avg_hr", "Average heart rate (bpm)"},
				{"maxHR", "max_hr", "Maximum heart rate (bpm)"},
				{"calories", "calories", "Calories burned during activity"},
				{"averageSpeed", "avg_speed", "Average speed (m/s)"},
				{"maxSpeed", "max_speed", "Maximum speed (m/s)"},
				{"elevationGain", "elevation_gain", "Total elevation gained (meters)"},
				{"elevationLoss", "elevation_loss", "Total elevation lost (meters)"},
				{"averageRunningCadenceInStepsPerMinute", "avg_cadence", "Average running cadence (steps/min)"},
				{"steps", "steps", "Steps during activity"},
				{"vO2MaxValue", "vo2max", "VO2 max estimate from activity"},
				{"avgPower", "avg_power", "Average power output (watts)"},
				{"maxPower", "max_power", "Maximum power output (watts)"},
			},
			Tags:  []string{"type", "name"},
			Notes: "Tagged by activity type (running, cycling, etc.) and activity name. Zero or more per day.",
		},
		{
			Measurement: "activity_detail",
			DisplayName: "activity details",
			Description: "Enriched per-activity metrics: training effect, performance condition, running dynamics, and power metrics.",
			GarminAPI:   "Activity(activityID)",
			Frequency:   "per-activity",
			Fields: []Field{
				{"trainingEffect", "training_effect_aerobic", "Aerobic training effect (0-5)"},
				{"anaerobicTrainingEffect", "training_effect_anaerobic", "Anaerobic training effect (0-5)"},
				{"performanceCondition", "performance_condition", "Real-time performance condition indicator"},
				{"lactateThreshold", "lactate_threshold", "Estimated lactate threshold HR"},
				{"normalizedPower", "normalized_power", "Normalized power (watts)"},
				{"groundContactTime", "ground_contact_time", "Ground contact time (ms)"},
				{"strideLength", "stride_length", "Average stride length (meters)"},
				{"verticalOscillation", "vertical_oscillation", "Vertical oscillation (cm)"},
				{"verticalRatio", "vertical_ratio", "Vertical ratio (%)"},
				{"trainingStressScore", "training_stress_score", "Training Stress Score (TSS)"},
				{"intensityFactor", "intensity_factor", "Intensity Factor (IF)"},
				{"minTemperature", "min_temperature", "Minimum temperature during activity (°C)"},
				{"maxTemperature", "max_temperature", "Maximum temperature during activity (°C)"},
				{"minElevation", "min_elevation", "Minimum elevation (meters)"},
				{"maxElevation", "max_elevation", "Maximum elevation (meters)"},
				{"lapCount", "lap_count", "Number of laps/splits"},
			},
			Tags:  []string{"type", "name", "activity_id"},
			Notes: "Fetched per-activity. Contains advanced running dynamics and training metrics.",
		},
		{
			Measurement: "activity_split",
			DisplayName: "activity splits",
			Description: "Per-split/lap breakdown of each activity with distance, pace, HR, elevation, and cadence.",
			GarminAPI:   "ActivitySplits(activityID)",
			Frequency:   "per-split (multiple per activity)",
			Fields: []Field{
				{"distance", "distance_meters", "Split distance in meters"},
				{"duration", "duration_sec", "Split duration in seconds"},
				{"movingDuration", "moving_sec", "Moving time in seconds"},
				{"averageHR", "avg_hr", "Average heart rate (bpm)"},
				{"maxHR", "max_hr", "Maximum heart rate (bpm)"},
				{"averageSpeed", "avg_speed", "Average speed (m/s)"},
				{"maxSpeed", "max_speed", "Maximum speed (m/s)"},
				{"calories", "calories", "Calories burned in split"},
				{"elevationGain", "elevation_gain", "Elevation gained in split (meters)"},
				{"elevationLoss", "elevation_loss", "Elevation lost in split (meters)"},
				{"averageRunCadence", "avg_cadence", "Average cadence (steps/min)"},
				{"startLatitude", "start_lat", "Split start latitude"},
				{"startLongitude", "start_lon", "Split start longitude"},
				{"endLatitude", "end_lat", "Split end latitude"},
				{"endLongitude", "end_lon", "Split end longitude"},
			},
			Tags:  []string{"type", "name", "activity_id", "split_num"},
			Notes: "GPS coordinates per split enable map reconstruction. Tagged by split number within the activity.",
		},
		{
			Measurement: "activity_hr_zone",
			DisplayName: "activity HR zones",
			Description: "Time spent in each heart-rate zone during an activity.",
			GarminAPI:   "ActivityHRZones(activityID)",
			Frequency:   "per-zone (typically 5 zones per activity)",
			Fields: []Field{
				{"secsInZone", "secs_in_zone", "Seconds spent in this HR zone"},
				{"zoneLowBoundary", "zone_low_bpm", "Zone lower boundary (bpm)"},
				{"zoneHighBoundary", "zone_high_bpm", "Zone upper boundary (bpm)"},
			},
			Tags:  []string{"type", "name", "activity_id", "zone"},
			Notes: "Typically 5 HR zones per activity. Useful for training intensity analysis.",
		},
		{
			Measurement: "activity_weather",
			DisplayName: "activity weather",
			Description: "Weather conditions (temperature, humidity, wind) during an activity.",
			GarminAPI:   "ActivityWeather(activityID)",
			Frequency:   "per-activity",
			Fields: []Field{
				{"temperature", "temperature_c", "Temperature (°C)"},
				{"apparentTemperature", "feels_like_c", "Apparent/feels-like temperature (°C)"},
				{"dewPoint", "dew_point_c", "Dew point temperature (°C)"},
				{"relativeHumidity", "humidity_pct", "Relative humidity (%)"},
				{"windDirection", "wind_direction_deg", "Wind direction (degrees)"},
				{"windSpeed", "wind_speed_mps", "Wind speed (m/s)"},
				{"windGust", "wind_gust_mps", "Wind gust speed (m/s)"},
			},
			Tags:  []string{"type", "name", "activity_id"},
			Notes: "Correlate weather with performance. Not available for indoor activities.",
		},
		{
			Measurement: "activity_track",
			DisplayName: "activity track",
			Description: "High-resolution GPS track points extracted from activity details, enabling full route reconstruction.",
			GarminAPI:   "ActivityDetails(activityID)",
			Frequency:   "per-point (hundreds to thousands per activity)",
			Fields: []Field{
				{"directLatitude", "lat", "Latitude in decimal degrees"},
				{"directLongitude", "lon", "Longitude in decimal degrees"},
			},
			Tags:  []string{"type", "name", "activity_id", "point_idx"},
			Notes: "Full-resolution GPS track. Additional per-point metrics (HR, speed, elevation, cadence, etc.) are auto-captured when available.",
		},
		{
			Measurement: "body_composition",
			DisplayName: "body composition",
			Description: "Body weight, BMI, body fat percentage, muscle mass, and related metrics from a smart scale.",
			GarminAPI:   "BodyComposition(day)",
			Frequency:   "daily (when measured)",
			Fields: []Field{
				{"weight", "weight_grams", "Body weight in grams"},
				{"bmi", "bmi", "Body Mass Index"},
				{"bodyFat", "body_fat_pct", "Body fat percentage"},
				{"bodyWater", "body_water_pct", "Body water percentage"},
				{"muscleMass", "muscle_mass_grams", "Muscle mass in grams"},
				{"skeletalMuscleMass", "skeletal_muscle_mass_grams", "Skeletal muscle mass in grams"},
				{"boneMass", "bone_mass_grams", "Bone mass in grams"},
				{"metabolicAge", "metabolic_age", "Estimated metabolic age (years)"},
				{"visceralFat", "visceral_fat", "Visceral fat rating"},
				{"weightChange", "weight_change", "Weight change from previous measurement"},
				{"physiqueRating", "physique_rating", "Body physique rating"},
			},
			Notes: "Requires a Garmin-compatible smart scale. Weight is in grams (divide by 1000 for kg).",
		},
		{
			Measurement: "respiration",
			DisplayName: "respiration",
			Description: "Daily respiration rate summary (waking and sleeping averages).",
			GarminAPI:   "Respiration(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"avgWakingRespirationValue", "avg_waking_respiration", "Average waking respiration rate (breaths/min)"},
				{"highestRespirationValue", "highest_respiration", "Highest respiration rate (breaths/min)"},
				{"lowestRespirationValue", "lowest_respiration", "Lowest respiration rate (breaths/min)"},
				{"avgSleepRespirationValue", "avg_sleep_respiration", "Average sleep respiration rate (breaths/min)"},
			},
			Notes: "Normal adult range is 12-20 breaths/min. Useful for respiratory health tracking.",
		},
		{
			Measurement: "spo2",
			DisplayName: "SpO2",
			Description: "Blood oxygen saturation (SpO2) readings: average, lowest, and latest.",
			GarminAPI:   "SpO2(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"averageSpO2", "averageSpO2", "Average blood oxygen saturation (%)"},
				{"lowestSpO2", "lowestSpO2", "Lowest blood oxygen saturation (%)"},
				{"latestSpO2", "latestSpO2", "Most recent SpO2 reading (%)"},
			},
			Notes: "Normal SpO2 is 95-100%. Drops below 90% may indicate health concerns.",
		},
		{
			Measurement: "stress",
			DisplayName: "stress",
			Description: "Daily stress levels and duration breakdown by intensity.",
			GarminAPI:   "Stress(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"avgStressLevel", "avg_stress", "Average stress level (0-100)"},
				{"maxStressLevel", "max_stress", "Maximum stress level (0-100)"},
				{"totalStressDuration", "total_stress_duration", "Total time under stress (seconds)"},
				{"lowStressDuration", "low_stress_duration", "Time at low stress (seconds)"},
				{"mediumStressDuration", "medium_stress_duration", "Time at medium stress (seconds)"},
				{"highStressDuration", "high_stress_duration", "Time at high stress (seconds)"},
				{"totalRestStressDuration", "rest_stress_duration", "Time at rest / no stress (seconds)"},
			},
			Notes: "Stress is derived from heart rate variability (HRV). 0-25=rest, 26-50=low, 51-75=medium, 76-100=high.",
		},
		{
			Measurement: "hrv",
			DisplayName: "HRV",
			Description: "Heart Rate Variability: weekly average, nightly values, and personal baseline range.",
			GarminAPI:   "HRV(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"weeklyAvg", "weekly_avg", "7-day rolling HRV average (ms)"},
				{"lastNight", "last_night", "HRV during last night's sleep (ms)"},
				{"lastNightAvg", "last_night_avg", "Average nightly HRV (ms)"},
				{"lastNight5MinHigh", "last_night_5min_high", "Highest 5-minute HRV window during sleep (ms)"},
				{"baseline.lowUpper", "baseline_lowUpper", "Upper bound of low HRV baseline (ms)"},
				{"baseline.balancedLow", "baseline_balancedLow", "Lower bound of balanced HRV range (ms)"},
				{"baseline.balancedUpper", "baseline_balancedUpper", "Upper bound of balanced HRV range (ms)"},
			},
			Notes: "HRV data may be under the hrvSummary key or flat. Higher HRV generally indicates better recovery.",
		},
		{
			Measurement: "hydration",
			DisplayName: "hydration",
			Description: "Daily fluid intake tracking and hydration goals.",
			GarminAPI:   "Hydration(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"valueInML", "intake_ml", "Fluid intake in milliliters"},
				{"goalInML", "goal_ml", "Daily hydration goal in milliliters"},
				{"sweatLossInML", "sweat_loss_ml", "Estimated sweat loss in milliliters"},
			},
			Notes: "Hydration tracking is manual entry. Sweat loss is estimated from activities.",
		},
		{
			Measurement: "training_readiness",
			DisplayName: "training readiness",
			Description: "Training readiness score based on sleep, recovery, and training load.",
			GarminAPI:   "TrainingReadiness(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"score", "score", "Overall training readiness score (0-100)"},
				{"sleepScore", "sleep_score", "Sleep contribution to readiness"},
				{"recoveryTime", "recovery_time", "Recommended recovery time (hours)"},
				{"acuteLoad", "acute_load", "Recent training load (acute)"},
				{"hrvStatus", "hrv_status", "HRV status score"},
				{"trainingLoad", "training_load", "Current training load value"},
			},
			Notes: "Higher scores = more ready to train. Below 33 suggests rest is needed.",
		},
		{
			Measurement: "training_status",
			DisplayName: "training status",
			Description: "Training load balance, VO2 max, and lactate threshold metrics.",
			GarminAPI:   "TrainingStatus(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"trainingLoadBalance", "load_balance", "Training load balance ratio"},
				{"ltTimestamp", "lt_timestamp", "Lactate threshold test timestamp"},
				{"vo2MaxValue", "vo2max", "VO2 max estimate (ml/kg/min)"},
				{"loadFocus", "load_focus", "Training load focus area"},
				{"lactateThresholdHeartRate", "lt_heart_rate", "Heart rate at lactate threshold (bpm)"},
				{"lactateThresholdSpeed", "lt_speed", "Speed at lactate threshold (m/s)"},
			},
			Notes: "Advanced training metrics. VO2 max is a key indicator of cardiovascular fitness.",
		},
		{
			Measurement: "max_metrics",
			DisplayName: "max metrics",
			Description: "VO2 max and fitness age estimates, broken down by sport type.",
			GarminAPI:   "MaxMetrics(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"vo2MaxPreciseValue", "vo2max_precise", "Precise VO2 max value (ml/kg/min)"},
				{"vo2MaxValue", "vo2max", "Rounded VO2 max value"},
				{"fitnessAge", "fitness_age", "Estimated fitness age (years)"},
			},
			Tags:  []string{"sport"},
			Notes: "Tagged by sport (running, cycling, etc.). May contain multiple entries per day.",
		},
		{
			Measurement: "endurance_score",
			DisplayName: "endurance score",
			Description: "Endurance score reflecting aerobic endurance fitness.",
			GarminAPI:   "EnduranceScore(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"overallScore", "overall_score", "Overall endurance score"},
				{"enduranceScore", "endurance_score", "Specific endurance component score"},
			},
			Notes: "Builds over time with consistent aerobic training. Higher is better.",
		},
		{
			Measurement: "hill_score",
			DisplayName: "hill score",
			Description: "Hill score reflecting climbing/uphill fitness.",
			GarminAPI:   "HillScore(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"overallScore", "overall_score", "Overall hill fitness score"},
				{"hillScore", "hill_score", "Specific hill component score"},
			},
			Notes: "Improves with elevation-heavy workouts. Useful for trail runners and hikers.",
		},
		{
			Measurement: "fitness_age",
			DisplayName: "fitness age",
			Description: "Estimated fitness age compared to chronological age, with contributing metrics.",
			GarminAPI:   "FitnessAge(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"fitnessAge", "fitness_age", "Estimated fitness age (years)"},
				{"chronologicalAge", "chronological_age", "Actual age (years)"},
				{"bmi", "bmi", "Body Mass Index"},
				{"healthyBmiTop", "healthy_bmi_top", "Upper bound of healthy BMI range"},
				{"healthyBmiBottom", "healthy_bmi_bottom", "Lower bound of healthy BMI range"},
				{"vigorousMinutes", "vigorous_minutes", "Weekly vigorous activity minutes"},
				{"vigorousMinutesGoal", "vigorous_minutes_goal", "Weekly vigorous minutes goal"},
				{"restingHr", "resting_hr", "Resting heart rate (bpm)"},
				{"restingHrGoal", "resting_hr_goal", "Resting heart rate goal (bpm)"},
			},
			Notes: "A fitness age lower than chronological age indicates above-average fitness for your age.",
		},
		{
			Measurement: "floors",
			DisplayName: "floors",
			Description: "Daily floors (flights of stairs) climbed and descended.",
			GarminAPI:   "Floors(day)",
			Frequency:   "daily",
			Fields: []Field{
				{"floorsAscended", "floors_ascended", "Floors climbed up"},
				{"floorsDescended", "floors_descended", "Floors descended"},
				{"floorsAscendedGoal", "floors_ascended_goal", "Daily floors goal"},
			},
			Notes: "One floor ≈ 3 meters (10 feet) of elevation gain.",
		},
	}
}
