package advisor

import (
	"sort"
	"time"
)

// WorkoutStreak counts consecutive calendar days with a completed workout,
// ending at today or yesterday relative to now. A streak whose most recent
// completed workout is more than one day old is stale and counts as 0.
//
// Input logs may arrive in any order; they are sorted here rather than
// trusting the caller.
func WorkoutStreak(daily []DailyLog, now time.Time) int {
	if len(daily) == 0 {
		return 0
	}

	sorted := make([]DailyLog, len(daily))
	copy(sorted, daily)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].LogDate.After(sorted[j].LogDate)
	})

	today := dayOf(now)

	// Find the most recent day with a completed workout.
	start := -1
	for i, l := range sorted {
		if l.WorkoutCompleted {
			start = i
			break
		}
	}
	if start == -1 {
		return 0
	}

	anchor := dayOf(sorted[start].LogDate)
	if daysBetween(anchor, today) > 1 {
		return 0
	}

	streak := 1
	prev := anchor
	for _, l := range sorted[start+1:] {
		day := dayOf(l.LogDate)
		if day.Equal(prev) {
			continue // duplicate entry for an already-counted day
		}
		if daysBetween(day, prev) != 1 || !l.WorkoutCompleted {
			break
		}
		streak++
		prev = day
	}

	return streak
}

// dayOf normalizes a timestamp to its calendar day boundary in UTC.
func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from earlier to later day boundaries.
func daysBetween(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
