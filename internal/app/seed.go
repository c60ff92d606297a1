package app

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
)

var (
	seedDays int
	seedSeed int64
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Generate demo history",
	Long: `Fills the database with plausible fake wellness and workout history so
you can try the advisor without weeks of real logging. Existing entries for
the same dates are replaced.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().IntVar(&seedDays, "days", 35, "Days of history to generate")
	seedCmd.Flags().Int64Var(&seedSeed, "seed", 0, "Random seed (0 = random)")
	rootCmd.AddCommand(seedCmd)
}

var seedExercises = []string{"back squat", "bench press", "deadlift", "overhead press", "barbell row", "pull-up"}

func runSeed(cmd *cobra.Command, args []string) error {
	_, db, err := openStore()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	faker := gofakeit.New(seedSeed)

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var dailyCount, exerciseCount int
	// Rolling fatigue makes the data correlated: energy sinks and stress
	// climbs after consecutive training days, the way a real log would.
	fatigue := 0
	for i := seedDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)

		trained := faker.Float32() < 0.7
		if fatigue >= 4 {
			trained = false
		}
		if trained {
			fatigue++
		} else {
			fatigue = 0
		}

		energy := clampScale(faker.Number(6, 9) - fatigue)
		sleepHours := round1(faker.Float64Range(5.5, 8.5) - float64(fatigue)*0.3)
		sleepQuality := clampScale(faker.Number(5, 9) - fatigue/2)
		stress := clampScale(faker.Number(2, 5) + fatigue)

		entry := advisor.DailyLog{
			LogDate:          date,
			WorkoutCompleted: trained,
			EnergyLevel:      &energy,
			SleepHours:       &sleepHours,
			SleepQuality:     &sleepQuality,
			StressLevel:      &stress,
		}
		if err := db.UpsertDailyLog(entry); err != nil {
			return fmt.Errorf("seeding day %s: %w", date.Format("2006-01-02"), err)
		}
		dailyCount++

		if !trained {
			continue
		}
		nLifts := faker.Number(2, 4)
		for j := 0; j < nLifts; j++ {
			sets := faker.Number(3, 5)
			ex := advisor.ExerciseLog{
				LogDate:        date,
				Exercise:       seedExercises[faker.Number(0, len(seedExercises)-1)],
				CompletedSets:  &sets,
				PrescribedReps: faker.RandomString([]string{"5", "8", "10", "8-10", "12"}),
			}
			if err := db.InsertExerciseLog(ex); err != nil {
				return fmt.Errorf("seeding exercises for %s: %w", date.Format("2006-01-02"), err)
			}
			exerciseCount++
		}
	}

	fmt.Printf("Seeded %d daily logs and %d exercise entries over %d days.\n",
		dailyCount, exerciseCount, seedDays)
	fmt.Println("Run 'trainwatch today' to see the recommendation.")
	return nil
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

func round1(v float64) float64 {
	if v < 0 {
		return 0
	}
	return float64(int(v*10+0.5)) / 10
}
