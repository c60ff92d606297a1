package advisor

import "math"

// Recovery score weights and defaults. These are tuned heuristics; the
// weights sum to 1.0 and each missing metric falls back to a neutral-ish
// default rather than zero.
const (
	weightSleepHours   = 0.30
	weightSleepQuality = 0.20
	weightEnergy       = 0.25
	weightStress       = 0.25

	defaultSleepScore        = 70.0
	defaultSleepQualityScore = 60.0
	defaultEnergyScore       = 60.0
	defaultStressScore       = 60.0

	targetSleepHours = 8.0
	fatiguePerDay    = 10.0
)

// RecoveryScore computes a 0-100 composite readiness score from yesterday's
// sleep and today's subjective energy and stress, penalized by consecutive
// training days. Logs are ordered most-recent-first: index 0 is today,
// index 1 is yesterday.
//
// Components:
//
//	sleepScore        = min(100, sleepHours/8 * 100)
//	sleepQualityScore = sleepQuality * 10
//	energyScore       = energyLevel * 10
//	stressScore       = (11 - stressLevel) * 10
//	fatiguePenalty    = max(0, (consecutiveWorkoutDays - 1) * 10)
//
// The weighted sum minus the penalty is clamped to [0,100] and rounded.
func RecoveryScore(daily []DailyLog, consecutiveWorkoutDays int) int {
	var today, yesterday *DailyLog
	if len(daily) > 0 {
		today = &daily[0]
	}
	if len(daily) > 1 {
		yesterday = &daily[1]
	}

	sleepScore := defaultSleepScore
	if yesterday != nil && yesterday.SleepHours != nil {
		sleepScore = math.Min(100, *yesterday.SleepHours/targetSleepHours*100)
	}

	sleepQualityScore := defaultSleepQualityScore
	if yesterday != nil && yesterday.SleepQuality != nil {
		sleepQualityScore = float64(*yesterday.SleepQuality) * 10
	}

	energyScore := defaultEnergyScore
	if today != nil && today.EnergyLevel != nil {
		energyScore = float64(*today.EnergyLevel) * 10
	}

	stressScore := defaultStressScore
	if today != nil && today.StressLevel != nil {
		stressScore = float64(11-*today.StressLevel) * 10
	}

	fatiguePenalty := math.Max(0, float64(consecutiveWorkoutDays-1)*fatiguePerDay)

	raw := sleepScore*weightSleepHours +
		sleepQualityScore*weightSleepQuality +
		energyScore*weightEnergy +
		stressScore*weightStress -
		fatiguePenalty

	return int(math.Round(clamp(raw, 0, 100)))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
