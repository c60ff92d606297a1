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
	workoutDate string
	workoutSets int
	workoutReps string
	workoutList bool
	workoutDays int
)

var workoutCmd = &cobra.Command{
	Use:   "workout [exercise]",
	Short: "Record a completed exercise",
	Long: `Record a set/rep entry for an exercise. These entries feed the volume
tracker: once two weeks of history exist, the advisor compares this week's
volume against your baseline and flags spikes.

Examples:
  trainwatch workout "back squat" --sets 5 --reps 5
  trainwatch workout bench --sets 4 --reps 8-10
  trainwatch workout --list`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWorkout,
}

func init() {
	workoutCmd.Flags().StringVar(&workoutDate, "date", "", "Date of the session (YYYY-MM-DD, default today)")
	workoutCmd.Flags().IntVar(&workoutSets, "sets", 3, "Sets completed")
	workoutCmd.Flags().StringVar(&workoutReps, "reps", "10", "Prescribed reps (e.g. \"5\", \"8-10\", \"5x5\")")
	workoutCmd.Flags().BoolVar(&workoutList, "list", false, "List recorded exercises")
	workoutCmd.Flags().IntVar(&workoutDays, "days", 14, "Days of history for --list")
	rootCmd.AddCommand(workoutCmd)
}

func runWorkout(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if workoutList {
		return runWorkoutList(db)
	}

	if len(args) == 0 {
		return fmt.Errorf("exercise name is required (e.g. 'trainwatch workout squat --sets 5 --reps 5')")
	}
	exercise := args[0]

	date, err := parseDateFlag(workoutDate)
	if err != nil {
		return err
	}
	if workoutSets < 1 {
		return fmt.Errorf("sets must be at least 1, got %d", workoutSets)
	}

	entry := advisor.ExerciseLog{
		LogDate:        date,
		Exercise:       exercise,
		CompletedSets:  &workoutSets,
		PrescribedReps: workoutReps,
	}
	if err := db.InsertExerciseLog(entry); err != nil {
		return err
	}

	fmt.Printf("Logged %s: %d sets of %s on %s\n",
		exercise, workoutSets, workoutReps, date.Format("2006-01-02"))
	return nil
}

func runWorkoutList(db *store.DB) error {
	logs, err := db.ListExerciseLogs(time.Now().AddDate(0, 0, -workoutDays))
	if err != nil {
		return err
	}

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(logs)
	}

	if len(logs) == 0 {
		fmt.Println("No exercises recorded yet.")
		return nil
	}

	fmt.Println(output.Section("Exercise Log"))
	fmt.Println()

	tbl := output.NewTable("Date", "Exercise", "Sets", "Reps")
	for _, l := range logs {
		sets := "-"
		if l.CompletedSets != nil {
			sets = fmt.Sprintf("%d", *l.CompletedSets)
		}
		tbl.AddRow(l.LogDate.Format("2006-01-02"), l.Exercise, sets, l.PrescribedReps)
	}
	tbl.Print()
	return nil
}
