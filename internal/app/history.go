package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
	"github.com/blackwell-systems/trainwatch/internal/output"
)

var historyDays int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent wellness entries and trends",
	Long: `Shows the wellness log for the last N days alongside the trend the
advisor sees in each metric. Trends compare the recent half of the window
against the older half, so a single bad night does not flip them.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyDays, "days", 14, "Days of history to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	logs, err := db.ListDailyLogs(time.Now().AddDate(0, 0, -historyDays))
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(logs)
	}

	if len(logs) == 0 {
		fmt.Printf("No entries in the last %d days.\n", historyDays)
		return nil
	}

	fmt.Println(output.Section(fmt.Sprintf("Last %d Days", historyDays)))
	fmt.Println()

	tbl := output.NewTable("Date", "Workout", "Energy", "Sleep", "Quality", "Stress")
	for _, l := range logs {
		workout := ""
		if l.WorkoutCompleted {
			workout = "✓"
		}
		tbl.AddRow(
			l.LogDate.Format("2006-01-02"),
			workout,
			formatIntMetric(l.EnergyLevel),
			formatHours(l.SleepHours),
			formatIntMetric(l.SleepQuality),
			formatIntMetric(l.StressLevel),
		)
	}
	tbl.Print()
	fmt.Println()

	fmt.Println(output.Section("Trends"))
	fmt.Println()
	fmt.Printf("  Energy         %s\n", trendFor(logs, true, func(l advisor.DailyLog) *float64 { return intSample(l.EnergyLevel) }))
	fmt.Printf("  Sleep quality  %s\n", trendFor(logs, true, func(l advisor.DailyLog) *float64 { return intSample(l.SleepQuality) }))
	fmt.Printf("  Sleep hours    %s\n", trendFor(logs, true, func(l advisor.DailyLog) *float64 { return l.SleepHours }))
	fmt.Printf("  Stress         %s\n", trendFor(logs, false, func(l advisor.DailyLog) *float64 { return intSample(l.StressLevel) }))
	return nil
}

// trendFor extracts one metric from the log window (most recent first,
// matching the store's ordering) and renders its trend direction plus the
// numeric shift between the recent and older half of the window. For
// stress, lower is better, which flips the arrow coloring.
func trendFor(logs []advisor.DailyLog, higherIsBetter bool, pick func(advisor.DailyLog) *float64) string {
	samples := make([]*float64, 0, len(logs))
	for _, l := range logs {
		samples = append(samples, pick(l))
	}

	delta, ok := halfWindowDelta(samples)
	if !higherIsBetter {
		// TrendWord colors "improving" as good, which reads backwards for
		// stress; the arrow alone carries the right coloring there.
		if !ok {
			return output.TrendArrow(0, false)
		}
		return output.TrendArrow(delta, false)
	}

	word := output.TrendWord(string(advisor.Trend(samples)))
	if !ok {
		return word
	}
	return word + "  " + output.TrendArrow(delta, higherIsBetter)
}

// halfWindowDelta is the recent-half minus older-half average of the
// non-nil samples, the same split the trend classifier uses. It reports
// false with fewer than 2 usable samples.
func halfWindowDelta(samples []*float64) (float64, bool) {
	var valid []float64
	for _, s := range samples {
		if s != nil {
			valid = append(valid, *s)
		}
	}
	if len(valid) < 2 {
		return 0, false
	}

	mid := len(valid) / 2
	return avgOf(valid[:mid]) - avgOf(valid[mid:]), true
}

func avgOf(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func intSample(v *int) *float64 {
	if v == nil {
		return nil
	}
	f := float64(*v)
	return &f
}
