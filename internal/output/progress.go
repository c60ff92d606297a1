package output

import (
	"fmt"
	"strings"
)

// ScoreBar renders a visual bar for a 0-100 recovery score.
// Example: "████████░░ 80/100"
// Bands match the engine's decision thresholds: 60+ is clear to train,
// 40-59 is advisory, below 40 forces rest.
func ScoreBar(score float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((score / 100.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case score >= 60:
		style = func(s string) string { return StyleGood.Render(s) }
	case score >= 40:
		style = func(s string) string { return StyleCaution.Render(s) }
	default:
		style = func(s string) string { return StyleRest.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f/100", score)))
}

// TrendWord renders a styled trend label. For the wellness metrics shown
// on the dashboard, improving is always the good direction.
func TrendWord(direction string) string {
	switch direction {
	case "improving":
		return StyleGood.Render("▲ improving")
	case "declining":
		return StyleRest.Render("▼ declining")
	default:
		return StyleMuted.Render("─ stable")
	}
}

// TrendArrow returns a styled indicator for a numeric delta.
// The higherIsBetter parameter flips which direction renders as good,
// so stress (lower is better) colors correctly.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.1f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.1f", delta)
	}

	if isImproved {
		return StyleGood.Render(arrow)
	}
	return StyleRest.Render(arrow)
}

// renderWidth is the terminal width sections are laid out for.
var renderWidth = 80

// SetWidth sets the layout width used by Section rules. Widths below 20
// are ignored; the dashboard is unreadable narrower than that anyway.
func SetWidth(w int) {
	if w >= 20 {
		renderWidth = w
	}
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", renderWidth-2))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
