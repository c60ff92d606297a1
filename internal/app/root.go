// Package app contains the Cobra command tree for trainwatch.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
	"github.com/blackwell-systems/trainwatch/internal/config"
	"github.com/blackwell-systems/trainwatch/internal/output"
	"github.com/blackwell-systems/trainwatch/internal/store"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "trainwatch",
	Short: "Rest-or-train advisor for your training log",
	Long: `trainwatch tells you whether today should be a training day, an easy
day, or a rest day. Log your daily wellness and completed workouts; the
advisor scores recovery, tracks streaks and training volume, and makes the
call with its reasons attached.

Run 'trainwatch today' for the daily recommendation.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	fmt.Println("trainwatch", appVersion)

	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	now := time.Now()
	logs, err := db.ListDailyLogs(now.AddDate(0, 0, -cfg.WellnessDays))
	if err != nil {
		return err
	}

	// With history on hand, the bare command doubles as a quick dashboard.
	if len(logs) > 0 {
		rec, _, err := adviseNow(db, cfg, now)
		if err != nil {
			return err
		}
		fmt.Println()
		switch {
		case !rec.ShouldRest:
			fmt.Printf("  %s\n", output.StyleGood.Render("TRAIN today"))
		case rec.SuggestedRestType == advisor.RestDeload:
			fmt.Printf("  %s\n", output.StyleCaution.Render("DELOAD today"))
		default:
			fmt.Printf("  %s\n", output.StyleRest.Render("REST today ("+string(rec.SuggestedRestType)+")"))
		}
		fmt.Printf("  Recovery  %s\n", output.ScoreBar(float64(rec.Metrics.RecoveryScore), 20))
		fmt.Printf("  Streak    %d training days\n", rec.Metrics.ConsecutiveWorkoutDays)
		fmt.Println()
		fmt.Println(output.StyleMuted.Render("Run 'trainwatch today' for the full recommendation."))
		return nil
	}

	fmt.Println()
	fmt.Println("No history yet. Use a subcommand:")
	fmt.Println("  today     Today's rest-or-train recommendation")
	fmt.Println("  log       Record today's wellness self-report")
	fmt.Println("  workout   Record a completed exercise")
	fmt.Println("  history   Show recent wellness entries and trends")
	fmt.Println("  profile   Show or set your training phase")
	fmt.Println("  coach     Assemble (or ask) the AI coaching prompt")
	fmt.Println("  seed      Generate demo history")
	return nil
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/trainwatch/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}

// setupOutput applies the output preferences from flags and config.
func setupOutput(cfg *config.Config) {
	output.SetWidth(cfg.Output.Width)
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
		return
	}
	output.AutoColor()
}

// openStore loads config and opens the database; callers must Close it.
func openStore() (*config.Config, *store.DB, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	setupOutput(cfg)

	db, err := store.Open(cfg.DBPath())
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}
	return cfg, db, nil
}
