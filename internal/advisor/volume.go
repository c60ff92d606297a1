package advisor

import (
	"strconv"
	"time"
)

const (
	// minExerciseHistory is the minimum number of exercise logs required
	// before a volume ratio is meaningful; below this the baseline is noise.
	minExerciseHistory = 14

	// defaultReps is assumed when a prescription is absent or unparsable.
	defaultReps = 10
)

// VolumeRatio compares this week's training volume against a two-week
// baseline window taken 2-4 weeks back, normalized to a weekly rate.
// It returns nil when there is not enough history to compare: fewer than
// 14 total logs, an empty baseline window, or zero baseline volume.
//
// Volume of a single log is completedSets * parsedReps, where parsedReps
// is the leading integer of the prescription ("8-12" -> 8). A log with no
// recorded sets contributes no volume.
func VolumeRatio(exercises []ExerciseLog, now time.Time) *float64 {
	if len(exercises) < minExerciseHistory {
		return nil
	}

	thisWeekStart := now.AddDate(0, 0, -7)
	baselineStart := now.AddDate(0, 0, -28)
	baselineEnd := now.AddDate(0, 0, -14)

	var thisWeekVolume float64
	var baselineVolume float64
	baselineCount := 0

	for _, e := range exercises {
		switch {
		case !e.LogDate.Before(thisWeekStart) && !e.LogDate.After(now):
			thisWeekVolume += logVolume(e)
		case !e.LogDate.Before(baselineStart) && e.LogDate.Before(baselineEnd):
			baselineVolume += logVolume(e)
			baselineCount++
		}
	}

	if baselineCount == 0 {
		return nil
	}

	// The baseline spans two weeks; halve it to a weekly rate.
	weeklyBaseline := baselineVolume / 2
	if weeklyBaseline == 0 {
		return nil
	}

	ratio := thisWeekVolume / weeklyBaseline
	return &ratio
}

func logVolume(e ExerciseLog) float64 {
	if e.CompletedSets == nil {
		return 0
	}
	return float64(*e.CompletedSets * parseLeadingReps(e.PrescribedReps))
}

// parseLeadingReps extracts the leading integer from a rep prescription
// such as "8-12" or "10". Anything unparsable falls back to defaultReps.
func parseLeadingReps(reps string) int {
	if reps == "" {
		return defaultReps
	}
	end := 0
	for end < len(reps) && reps[end] >= '0' && reps[end] <= '9' {
		end++
	}
	if end == 0 {
		return defaultReps
	}
	n, err := strconv.Atoi(reps[:end])
	if err != nil {
		return defaultReps
	}
	return n
}
