package app

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
	"github.com/blackwell-systems/trainwatch/internal/output"
	"github.com/blackwell-systems/trainwatch/internal/store"
)

var (
	logDate         string
	logEnergy       int
	logSleepHours   float64
	logSleepQuality int
	logStress       int
	logWorkout      bool
	logList         bool
	logDays         int
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Record today's wellness self-report",
	Long: `Log how you're doing today. Each flag is optional; anything you skip
is stored as "not reported" and the advisor falls back to documented defaults
rather than treating it as zero. Logging the same day again replaces the entry.

Examples:
  trainwatch log --energy 7 --stress 3 --workout
  trainwatch log --sleep-hours 6.5 --sleep-quality 5
  trainwatch log --date 2026-03-08 --energy 4
  trainwatch log --list --days 14`,
	Args: cobra.NoArgs,
	RunE: runLog,
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "Date to log (YYYY-MM-DD, default today)")
	logCmd.Flags().IntVar(&logEnergy, "energy", 0, "Energy level, 1-10")
	logCmd.Flags().Float64Var(&logSleepHours, "sleep-hours", 0, "Hours slept last night")
	logCmd.Flags().IntVar(&logSleepQuality, "sleep-quality", 0, "Sleep quality, 1-10")
	logCmd.Flags().IntVar(&logStress, "stress", 0, "Stress level, 1-10")
	logCmd.Flags().BoolVar(&logWorkout, "workout", false, "Mark today's workout as completed")
	logCmd.Flags().BoolVar(&logList, "list", false, "List logged wellness entries")
	logCmd.Flags().IntVar(&logDays, "days", 14, "Days of history for --list")
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if logList {
		return runLogList(db)
	}

	date, err := parseDateFlag(logDate)
	if err != nil {
		return err
	}

	entry := advisor.DailyLog{
		LogDate:          date,
		WorkoutCompleted: logWorkout,
	}

	flags := cmd.Flags()
	if flags.Changed("energy") {
		if err := checkScale("energy", logEnergy); err != nil {
			return err
		}
		entry.EnergyLevel = &logEnergy
	}
	if flags.Changed("sleep-hours") {
		if logSleepHours < 0 || logSleepHours > 24 {
			return fmt.Errorf("sleep-hours %.1f is not a plausible night", logSleepHours)
		}
		entry.SleepHours = &logSleepHours
	}
	if flags.Changed("sleep-quality") {
		if err := checkScale("sleep-quality", logSleepQuality); err != nil {
			return err
		}
		entry.SleepQuality = &logSleepQuality
	}
	if flags.Changed("stress") {
		if err := checkScale("stress", logStress); err != nil {
			return err
		}
		entry.StressLevel = &logStress
	}

	if err := db.UpsertDailyLog(entry); err != nil {
		return err
	}

	fmt.Printf("Logged %s", date.Format("2006-01-02"))
	if entry.WorkoutCompleted {
		fmt.Print(" (workout completed)")
	}
	fmt.Println()
	return nil
}

func runLogList(db *store.DB) error {
	logs, err := db.ListDailyLogs(time.Now().AddDate(0, 0, -logDays))
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(logs)
	}

	if len(logs) == 0 {
		fmt.Println("No wellness entries yet. Use 'trainwatch log --energy 7 ...' to start.")
		return nil
	}

	fmt.Println(output.Section("Wellness Log"))
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
	return nil
}

func checkScale(name string, v int) error {
	if v < 1 || v > 10 {
		return fmt.Errorf("%s must be between 1 and 10, got %d", name, v)
	}
	return nil
}

// parseDateFlag parses a YYYY-MM-DD flag value, defaulting to today.
func parseDateFlag(s string) (time.Time, error) {
	if s == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q (want YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

func formatIntMetric(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func formatHours(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1fh", *v)
}
