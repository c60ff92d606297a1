package app

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
	"github.com/blackwell-systems/trainwatch/internal/config"
	"github.com/blackwell-systems/trainwatch/internal/output"
	"github.com/blackwell-systems/trainwatch/internal/store"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Today's rest-or-train recommendation",
	Long: `Runs the advisory engine over your recent wellness and workout history
and prints the decision for today: train as planned, deload, active recovery,
or full rest, with the reasons behind it.`,
	Args: cobra.NoArgs,
	RunE: runToday,
}

func init() {
	rootCmd.AddCommand(todayCmd)
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	rec, profile, err := adviseNow(db, cfg, time.Now())
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rec)
	}

	renderRecommendation(rec, profile)
	return nil
}

// adviseNow loads the engine's inputs and runs it at the given reference
// time. The three store reads are independent, so they run concurrently.
func adviseNow(db *store.DB, cfg *config.Config, now time.Time) (advisor.Recommendation, *advisor.UserProfile, error) {
	var (
		daily     []advisor.DailyLog
		exercises []advisor.ExerciseLog
		profile   *advisor.UserProfile
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		daily, err = db.ListDailyLogs(now.AddDate(0, 0, -cfg.WellnessDays))
		return err
	})
	g.Go(func() error {
		var err error
		exercises, err = db.ListExerciseLogs(now.AddDate(0, 0, -cfg.ExerciseDays))
		return err
	})
	g.Go(func() error {
		var err error
		profile, err = db.GetProfile()
		return err
	})
	if err := g.Wait(); err != nil {
		return advisor.Recommendation{}, nil, fmt.Errorf("loading history: %w", err)
	}

	if profile == nil && cfg.DefaultPhase != "" {
		profile = &advisor.UserProfile{CurrentPhase: advisor.Phase(cfg.DefaultPhase)}
	}

	return advisor.Advise(daily, exercises, profile, now), profile, nil
}

// renderRecommendation prints the styled dashboard view of a recommendation.
func renderRecommendation(rec advisor.Recommendation, profile *advisor.UserProfile) {
	fmt.Println(output.Section("Today's Call"))
	fmt.Println()

	switch {
	case !rec.ShouldRest:
		fmt.Printf("  %s\n", output.StyleGood.Render("TRAIN: "+string(rec.SuggestedRestType)))
	case rec.SuggestedRestType == advisor.RestDeload:
		fmt.Printf("  %s\n", output.StyleCaution.Render("DELOAD"))
	default:
		fmt.Printf("  %s\n", output.StyleRest.Render("REST: "+string(rec.SuggestedRestType)))
	}
	fmt.Printf("  %s\n", output.StyleMuted.Render("confidence: "+string(rec.Confidence)))
	fmt.Println()

	fmt.Printf("  Recovery  %s\n", output.ScoreBar(float64(rec.Metrics.RecoveryScore), 20))
	fmt.Println()

	for _, r := range rec.Reasons {
		fmt.Printf("  • %s\n", r.Text)
	}
	fmt.Println()

	fmt.Println(output.Section("Metrics"))
	fmt.Println()
	tbl := output.NewTable("Metric", "Value")
	tbl.AddRow("Consecutive training days", fmt.Sprintf("%d", rec.Metrics.ConsecutiveWorkoutDays))
	tbl.AddRow("3-day avg energy", formatAvg(rec.Metrics.AvgEnergy3d))
	tbl.AddRow("3-day avg sleep quality", formatAvg(rec.Metrics.AvgSleepQuality3d))
	tbl.AddRow("3-day avg stress", formatAvg(rec.Metrics.AvgStress3d))
	if rec.Metrics.VolumeRatio != nil {
		tbl.AddRow("Volume vs baseline", fmt.Sprintf("%.2fx", *rec.Metrics.VolumeRatio))
	} else {
		tbl.AddRow("Volume vs baseline", "n/a")
	}
	fmt.Print(indent(tbl.Render()))
	fmt.Println()

	fmt.Println(output.Section("Plan"))
	fmt.Println()
	fmt.Printf("  %s\n", rec.TodaysPlan)
	if rec.AlternativeActivity != "" {
		fmt.Printf("  %s\n", output.StyleMuted.Render("Instead: "+rec.AlternativeActivity))
	}
}

func formatAvg(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f/10", *v)
}

func indent(s string) string {
	if s == "" {
		return ""
	}
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		sb.WriteString("  " + line + "\n")
	}
	return sb.String()
}
