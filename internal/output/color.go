// Package output provides styled terminal rendering helpers for trainwatch.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorGood is used for green-light recommendations and improving trends.
	ColorGood = lipgloss.Color("#66bb6a")

	// ColorRest is used for rest recommendations and declining trends.
	ColorRest = lipgloss.Color("#ef5350")

	// ColorCaution is used for deload and advisory states.
	ColorCaution = lipgloss.Color("#fff59d")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleGood is used for train-as-planned output.
	StyleGood = lipgloss.NewStyle().
			Foreground(ColorGood)

	// StyleRest is used for rest-day output.
	StyleRest = lipgloss.NewStyle().
			Foreground(ColorRest)

	// StyleCaution is used for deload and advisory output.
	StyleCaution = lipgloss.NewStyle().
			Foreground(ColorCaution)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for metric labels.
	StyleLabel = lipgloss.NewStyle().
			Width(24)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleGood = plain
		StyleRest = plain
		StyleCaution = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(24)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoColor disables color when stdout is not a terminal, so piping
// `trainwatch today` into a file or another program yields plain text.
func AutoColor() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		SetNoColor(true)
	}
}
