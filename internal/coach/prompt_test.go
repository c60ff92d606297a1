package coach

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
)

func fp(v float64) *float64 { return &v }

func sampleRecommendation() advisor.Recommendation {
	ratio := 1.35
	return advisor.Recommendation{
		ShouldRest:        true,
		SuggestedRestType: advisor.RestDeload,
		Confidence:        advisor.ConfidenceMedium,
		Reasons: []advisor.Reason{
			{Kind: advisor.ReasonVolumeSpike, Text: "Training volume is 135% of your recent baseline; time to deload."},
			{Kind: advisor.ReasonRecoveryLow, Text: "Recovery score is low (52/100)."},
		},
		AlternativeActivity: "Run your planned session at roughly 60% of the usual load.",
		TodaysPlan:          "Deload day: same movements, lighter weights, fewer sets.",
		Metrics: advisor.MetricsSnapshot{
			ConsecutiveWorkoutDays: 3,
			RecoveryScore:          52,
			AvgEnergy3d:            fp(5.7),
			VolumeRatio:            &ratio,
		},
	}
}

func TestBuildPrompt_ContainsDecisionAndMetrics(t *testing.T) {
	prompt := BuildPrompt(sampleRecommendation(), &advisor.UserProfile{CurrentPhase: advisor.PhaseCutting})

	for _, want := range []string{
		"rest (deload)",
		"Confidence: medium",
		"Recovery score: 52/100",
		"Consecutive training days: 3",
		"1.35x",
		"Training phase: cutting",
		"[volume_spike]",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("expected prompt to contain %q", want)
		}
	}
}

func TestBuildPrompt_MissingDataLabeledNotInvented(t *testing.T) {
	rec := sampleRecommendation()
	rec.Metrics.AvgSleepQuality3d = nil
	rec.Metrics.VolumeRatio = nil

	prompt := BuildPrompt(rec, nil)

	if !strings.Contains(prompt, "3-day avg sleep quality: not reported") {
		t.Error("expected missing sleep quality to be labeled, not zeroed")
	}
	if !strings.Contains(prompt, "Volume vs baseline: not enough history") {
		t.Error("expected missing volume ratio to be labeled")
	}
	if !strings.Contains(prompt, "Training phase: maintenance") {
		t.Error("expected default phase without a profile")
	}
}

func TestBuildPrompt_TrainingDecision(t *testing.T) {
	rec := sampleRecommendation()
	rec.ShouldRest = false
	rec.SuggestedRestType = advisor.NormalTraining
	rec.AlternativeActivity = ""

	prompt := BuildPrompt(rec, nil)

	if !strings.Contains(prompt, "Decision: train") {
		t.Error("expected a train decision line")
	}
	if strings.Contains(prompt, "Suggested alternative") {
		t.Error("no alternative line expected when training")
	}
}
