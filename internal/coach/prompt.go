// Package coach folds a recommendation into context for a conversational
// coaching assistant: it assembles a structured prompt from the engine's
// output and can optionally send it to the Claude API.
package coach

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
)

// BuildPrompt renders the recommendation and its supporting metrics as a
// markdown prompt for the coaching assistant. Every line is grounded in
// the engine's output; the assistant sees exactly what the dashboard shows.
func BuildPrompt(rec advisor.Recommendation, profile *advisor.UserProfile) string {
	var sb strings.Builder

	sb.WriteString("## Athlete Context\n\n")
	phase := advisor.PhaseMaintenance
	if profile != nil {
		phase = profile.CurrentPhase
	}
	sb.WriteString(fmt.Sprintf("- Training phase: %s\n", phase))
	sb.WriteString("\n")

	sb.WriteString("## Today's Recommendation\n\n")
	if rec.ShouldRest {
		sb.WriteString(fmt.Sprintf("- Decision: rest (%s)\n", rec.SuggestedRestType))
	} else {
		sb.WriteString("- Decision: train\n")
	}
	sb.WriteString(fmt.Sprintf("- Confidence: %s\n", rec.Confidence))
	if rec.AlternativeActivity != "" {
		sb.WriteString(fmt.Sprintf("- Suggested alternative: %s\n", rec.AlternativeActivity))
	}
	sb.WriteString("\n")

	if len(rec.Reasons) > 0 {
		sb.WriteString("### Reasons\n\n")
		for _, r := range rec.Reasons {
			sb.WriteString(fmt.Sprintf("- [%s] %s\n", r.Kind, r.Text))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Current Metrics\n\n")
	m := rec.Metrics
	sb.WriteString(fmt.Sprintf("- Recovery score: %d/100\n", m.RecoveryScore))
	sb.WriteString(fmt.Sprintf("- Consecutive training days: %d\n", m.ConsecutiveWorkoutDays))
	writeMetric(&sb, "3-day avg energy", m.AvgEnergy3d, "%.1f/10")
	writeMetric(&sb, "3-day avg sleep quality", m.AvgSleepQuality3d, "%.1f/10")
	writeMetric(&sb, "3-day avg stress", m.AvgStress3d, "%.1f/10")
	if m.VolumeRatio != nil {
		sb.WriteString(fmt.Sprintf("- Volume vs baseline: %.2fx\n", *m.VolumeRatio))
	} else {
		sb.WriteString("- Volume vs baseline: not enough history\n")
	}
	sb.WriteString("\n")

	sb.WriteString("## Plan\n\n")
	sb.WriteString(rec.TodaysPlan)
	sb.WriteString("\n")

	return sb.String()
}

func writeMetric(sb *strings.Builder, label string, value *float64, format string) {
	if value == nil {
		sb.WriteString(fmt.Sprintf("- %s: not reported\n", label))
		return
	}
	sb.WriteString(fmt.Sprintf("- %s: "+format+"\n", label, *value))
}
