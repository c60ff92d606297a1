package advisor

// Trend classifies the direction of a metric series. Samples are ordered
// most-recent-first; nil entries (days where the metric was not reported)
// are dropped before analysis. With fewer than 2 usable samples there is
// nothing to compare, so the series is reported stable.
//
// The valid samples are split at floor(n/2): the first half is "recent",
// the remainder "older". A recent-minus-older average difference beyond
// ±1 point (on the 1-10 self-report scales) counts as a real move.
func Trend(samples []*float64) Direction {
	var valid []float64
	for _, s := range samples {
		if s != nil {
			valid = append(valid, *s)
		}
	}
	if len(valid) < 2 {
		return TrendStable
	}

	mid := len(valid) / 2
	recent := mean(valid[:mid])
	older := mean(valid[mid:])

	diff := recent - older
	switch {
	case diff < -1:
		return TrendDeclining
	case diff > 1:
		return TrendImproving
	default:
		return TrendStable
	}
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
