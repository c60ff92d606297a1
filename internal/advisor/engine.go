package advisor

import (
	"math"
	"sort"
	"time"
)

// trendWindowDays is how many of the most recent daily logs feed the
// energy and sleep trend analysis.
const trendWindowDays = 5

// rollingAvgDays is the window for the snapshot's rolling averages.
const rollingAvgDays = 3

// Advise is the single entry point of the engine. It runs each analytic
// once over the supplied log snapshots and evaluates the rule cascade.
// The reference time is explicit so two calls with identical inputs
// produce identical output.
//
// Daily logs should cover roughly the last 5-30 days and exercise logs at
// least 28 days for the volume baseline; input ordering does not matter.
func Advise(daily []DailyLog, exercises []ExerciseLog, profile *UserProfile, now time.Time) Recommendation {
	// Sort once, most-recent-first; the scorers document this ordering.
	sorted := make([]DailyLog, len(daily))
	copy(sorted, daily)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LogDate.After(sorted[j].LogDate)
	})

	streak := WorkoutStreak(sorted, now)

	in := engineInputs{
		ConsecutiveWorkoutDays: streak,
		RecoveryScore:          RecoveryScore(sorted, streak),
		EnergyTrend:            Trend(energySamples(sorted, trendWindowDays)),
		SleepTrend:             Trend(sleepQualitySamples(sorted, trendWindowDays)),
		VolumeRatio:            VolumeRatio(exercises, now),
		Stress:                 ClassifyStress(sorted),
	}

	out := evaluate(in)
	reasons := supplementaryReasons(in, []Reason{out.Reason})

	return Recommendation{
		ShouldRest:          out.ShouldRest,
		SuggestedRestType:   out.RestType,
		Confidence:          out.Confidence,
		Reasons:             reasons,
		AlternativeActivity: alternativeActivity(out.RestType),
		TodaysPlan:          todaysPlan(out.ShouldRest, out.RestType, profile),
		Metrics:             buildSnapshot(sorted, in),
	}
}

func buildSnapshot(sorted []DailyLog, in engineInputs) MetricsSnapshot {
	snap := MetricsSnapshot{
		ConsecutiveWorkoutDays: in.ConsecutiveWorkoutDays,
		RecoveryScore:          in.RecoveryScore,
		AvgEnergy3d:            rollingAverage(energySamples(sorted, rollingAvgDays), 1),
		AvgSleepQuality3d:      rollingAverage(sleepQualitySamples(sorted, rollingAvgDays), 1),
		AvgStress3d:            rollingAverage(stressSamples(sorted, rollingAvgDays), 1),
	}
	if in.VolumeRatio != nil {
		rounded := roundTo(*in.VolumeRatio, 2)
		snap.VolumeRatio = &rounded
	}
	return snap
}

func energySamples(daily []DailyLog, n int) []*float64 {
	samples := make([]*float64, 0, n)
	for _, l := range daily[:minInt(n, len(daily))] {
		samples = append(samples, intSample(l.EnergyLevel))
	}
	return samples
}

func sleepQualitySamples(daily []DailyLog, n int) []*float64 {
	samples := make([]*float64, 0, n)
	for _, l := range daily[:minInt(n, len(daily))] {
		samples = append(samples, intSample(l.SleepQuality))
	}
	return samples
}

func stressSamples(daily []DailyLog, n int) []*float64 {
	samples := make([]*float64, 0, n)
	for _, l := range daily[:minInt(n, len(daily))] {
		samples = append(samples, intSample(l.StressLevel))
	}
	return samples
}

func intSample(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}

// rollingAverage averages the non-nil samples, rounded to the given number
// of decimals. Nil samples are excluded, never treated as zero; with no
// samples at all the average itself is nil.
func rollingAverage(samples []*float64, decimals int) *float64 {
	var sum float64
	count := 0
	for _, s := range samples {
		if s == nil {
			continue
		}
		sum += *s
		count++
	}
	if count == 0 {
		return nil
	}
	avg := roundTo(sum/float64(count), decimals)
	return &avg
}

func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
