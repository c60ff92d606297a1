package app

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trainwatch/internal/coach"
	"github.com/blackwell-systems/trainwatch/internal/output"
)

var (
	coachAI    bool
	coachModel string
)

var coachCmd = &cobra.Command{
	Use:   "coach",
	Short: "Assemble (or ask) the AI coaching prompt",
	Long: `Builds a coaching prompt from today's recommendation and metrics. By
default it prints the prompt so you can paste it into any assistant; with
--ai it sends the prompt to the Claude API directly.

Requires ANTHROPIC_API_KEY when --ai is set.`,
	Args: cobra.NoArgs,
	RunE: runCoach,
}

func init() {
	coachCmd.Flags().BoolVar(&coachAI, "ai", false, "Send the prompt to the Claude API")
	coachCmd.Flags().StringVar(&coachModel, "model", "", "Claude model to use with --ai")
	rootCmd.AddCommand(coachCmd)
}

func runCoach(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	rec, profile, err := adviseNow(db, cfg, time.Now())
	if err != nil {
		return err
	}

	prompt := coach.BuildPrompt(rec, profile)

	if !coachAI {
		fmt.Println(prompt)
		return nil
	}

	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	reply, err := coach.Ask(prompt, apiKey, coachModel)
	if err != nil {
		return fmt.Errorf("asking coach: %w", err)
	}

	fmt.Println(output.Section("Coach"))
	fmt.Println()
	fmt.Println(reply)
	return nil
}
