package advisor

const (
	stressSampleDays  = 3
	stressHighCutoff  = 7.0
	stressModerateMin = 4.0
)

// ClassifyStress buckets the average of the 3 most recent reported stress
// levels. Logs are ordered most-recent-first; days without a stress report
// are skipped. With no reports at all the classification defaults to
// moderate rather than assuming the user is calm.
func ClassifyStress(daily []DailyLog) StressBucket {
	var sum float64
	count := 0
	for _, l := range daily {
		if l.StressLevel == nil {
			continue
		}
		sum += float64(*l.StressLevel)
		count++
		if count == stressSampleDays {
			break
		}
	}

	if count == 0 {
		return StressModerate
	}

	avg := sum / float64(count)
	switch {
	case avg >= stressHighCutoff:
		return StressHigh
	case avg >= stressModerateMin:
		return StressModerate
	default:
		return StressLow
	}
}
