package advisor

import "fmt"

// Decision boundaries for the rule cascade. These encode tuned heuristics;
// do not adjust them casually.
const (
	forcedRestStreak  = 5   // consecutive training days forcing complete rest
	cautionStreak     = 4   // consecutive training days suggesting recovery
	lowRecoveryScore  = 40  // below this, rest is required
	fairRecoveryScore = 60  // below this, training is advisory-only
	volumeSpikeRatio  = 1.2 // this week vs baseline ratio that triggers a deload
	maxExtraReasons   = 3
)

// engineInputs holds the per-invocation analytics the cascade decides on.
type engineInputs struct {
	ConsecutiveWorkoutDays int
	RecoveryScore          int
	EnergyTrend            Direction
	SleepTrend             Direction
	VolumeRatio            *float64
	Stress                 StressBucket
}

// outcome is what a matched rule contributes to the recommendation.
type outcome struct {
	ShouldRest bool
	RestType   RestType
	Confidence Confidence
	Reason     Reason
}

// rule pairs a predicate with an outcome builder. The cascade below is
// evaluated top to bottom and the first match wins; priority lives in the
// ordering of the slice, not in control flow.
type rule struct {
	Name    string
	Applies func(in engineInputs) bool
	Build   func(in engineInputs) outcome
}

var cascade = []rule{
	{
		Name:    "forced_rest_streak",
		Applies: func(in engineInputs) bool { return in.ConsecutiveWorkoutDays >= forcedRestStreak },
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: true,
				RestType:   RestComplete,
				Confidence: ConfidenceHigh,
				Reason: Reason{
					Kind: ReasonStreak,
					Text: fmt.Sprintf("You've trained %d days in a row; a full rest day protects the gains.", in.ConsecutiveWorkoutDays),
				},
			}
		},
	},
	{
		Name:    "poor_recovery",
		Applies: func(in engineInputs) bool { return in.RecoveryScore < lowRecoveryScore },
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: true,
				RestType:   RestActiveRecovery,
				Confidence: ConfidenceHigh,
				Reason: Reason{
					Kind: ReasonRecoveryLow,
					Text: fmt.Sprintf("Recovery score is %d/100; your body is asking for a break.", in.RecoveryScore),
				},
			}
		},
	},
	{
		Name: "double_decline",
		Applies: func(in engineInputs) bool {
			return in.EnergyTrend == TrendDeclining && in.SleepTrend == TrendDeclining
		},
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: true,
				RestType:   RestActiveRecovery,
				Confidence: ConfidenceMedium,
				Reason: Reason{
					Kind: ReasonEnergyTrend,
					Text: "Energy has been sliding this week, and sleep is not making up for it.",
				},
			}
		},
	},
	{
		Name: "volume_spike",
		Applies: func(in engineInputs) bool {
			return in.VolumeRatio != nil && *in.VolumeRatio > volumeSpikeRatio
		},
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: true,
				RestType:   RestDeload,
				Confidence: ConfidenceMedium,
				Reason: Reason{
					Kind: ReasonVolumeSpike,
					Text: fmt.Sprintf("Training volume is %.0f%% of your recent baseline; time to deload.", *in.VolumeRatio*100),
				},
			}
		},
	},
	{
		Name:    "high_stress",
		Applies: func(in engineInputs) bool { return in.Stress == StressHigh },
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: true,
				RestType:   RestActiveRecovery,
				Confidence: ConfidenceMedium,
				Reason: Reason{
					Kind: ReasonStressHigh,
					Text: "Stress has been running high the last few days; light movement beats loading.",
				},
			}
		},
	},
	{
		Name:    "long_streak_caution",
		Applies: func(in engineInputs) bool { return in.ConsecutiveWorkoutDays >= cautionStreak },
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: true,
				RestType:   RestActiveRecovery,
				Confidence: ConfidenceLow,
				Reason: Reason{
					Kind: ReasonStreak,
					Text: fmt.Sprintf("%d straight training days; an easy day now keeps the streak sustainable.", in.ConsecutiveWorkoutDays),
				},
			}
		},
	},
	{
		Name:    "fair_recovery_advisory",
		Applies: func(in engineInputs) bool { return in.RecoveryScore < fairRecoveryScore },
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: false,
				RestType:   NormalTraining,
				Confidence: ConfidenceLow,
				Reason: Reason{
					Kind: ReasonRecoveryLow,
					Text: fmt.Sprintf("Recovery score is a middling %d/100; train, but keep an eye on how you feel.", in.RecoveryScore),
				},
			}
		},
	},
	{
		Name:    "all_clear",
		Applies: func(in engineInputs) bool { return true },
		Build: func(in engineInputs) outcome {
			return outcome{
				ShouldRest: false,
				RestType:   NormalTraining,
				Confidence: ConfidenceLow,
				Reason: Reason{
					Kind: ReasonAllClear,
					Text: "All signals look good. Train as planned.",
				},
			}
		},
	},
}

// evaluate walks the cascade and returns the first matching outcome.
// The final all_clear rule always matches, so a result is guaranteed.
func evaluate(in engineInputs) outcome {
	for _, r := range cascade {
		if r.Applies(in) {
			return r.Build(in)
		}
	}
	// Unreachable while the cascade ends with all_clear.
	return cascade[len(cascade)-1].Build(in)
}

// supplementaryReasons appends up to maxExtraReasons secondary observations
// to the primary reason, skipping any topic the primary already covers.
// De-duplication is by ReasonKind, never by matching rendered text.
func supplementaryReasons(in engineInputs, existing []Reason) []Reason {
	seen := make(map[ReasonKind]bool, len(existing))
	for _, r := range existing {
		seen[r.Kind] = true
	}

	candidates := []struct {
		kind    ReasonKind
		applies bool
		text    string
	}{
		{ReasonRecoveryLow, in.RecoveryScore < fairRecoveryScore,
			fmt.Sprintf("Recovery score is low (%d/100).", in.RecoveryScore)},
		{ReasonEnergyTrend, in.EnergyTrend == TrendDeclining,
			"Energy levels are trending down."},
		{ReasonSleepTrend, in.SleepTrend == TrendDeclining,
			"Sleep quality is trending down."},
	}

	reasons := existing
	added := 0
	for _, c := range candidates {
		if added == maxExtraReasons {
			break
		}
		if !c.applies || seen[c.kind] {
			continue
		}
		reasons = append(reasons, Reason{Kind: c.kind, Text: c.text})
		seen[c.kind] = true
		added++
	}
	return reasons
}
