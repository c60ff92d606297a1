package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
	"github.com/blackwell-systems/trainwatch/internal/output"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or set your training phase",
	Long: `The training phase shapes the plan text the advisor prints on training
days. Valid phases: cutting, recomp, maintenance.`,
	Args: cobra.NoArgs,
	RunE: runProfileShow,
}

var profileSetCmd = &cobra.Command{
	Use:   "set [phase]",
	Short: "Set the current training phase",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileSet,
}

func init() {
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	cfg, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	profile, err := db.GetProfile()
	if err != nil {
		return err
	}

	if profile == nil {
		fmt.Printf("No profile set. Using default phase %s from config.\n",
			output.StyleBold.Render(cfg.DefaultPhase))
		fmt.Println("Set one with 'trainwatch profile set <cutting|recomp|maintenance>'.")
		return nil
	}

	fmt.Printf("Training phase: %s\n", output.StyleBold.Render(string(profile.CurrentPhase)))
	return nil
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	phase, err := parsePhase(args[0])
	if err != nil {
		return err
	}

	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.SaveProfile(advisor.UserProfile{CurrentPhase: phase}); err != nil {
		return err
	}

	fmt.Printf("Training phase set to %s\n", phase)
	return nil
}

func parsePhase(s string) (advisor.Phase, error) {
	switch advisor.Phase(s) {
	case advisor.PhaseCutting, advisor.PhaseRecomp, advisor.PhaseMaintenance:
		return advisor.Phase(s), nil
	}
	return "", fmt.Errorf("unknown phase %q (valid: cutting, recomp, maintenance)", s)
}
