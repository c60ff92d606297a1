package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func ipt(v int) *int         { return &v }
func fpt(v float64) *float64 { return &v }

func TestDailyLog_RoundTrip(t *testing.T) {
	db := testDB(t)

	logged := advisor.DailyLog{
		LogDate:          time.Date(2026, 3, 9, 7, 30, 0, 0, time.UTC),
		WorkoutCompleted: true,
		EnergyLevel:      ipt(7),
		SleepHours:       fpt(7.5),
		SleepQuality:     ipt(8),
		StressLevel:      ipt(3),
	}
	require.NoError(t, db.UpsertDailyLog(logged))

	logs, err := db.ListDailyLogs(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, logs, 1)

	got := logs[0]
	assert.Equal(t, time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), got.LogDate, "dates normalize to day boundaries")
	assert.True(t, got.WorkoutCompleted)
	require.NotNil(t, got.EnergyLevel)
	assert.Equal(t, 7, *got.EnergyLevel)
	require.NotNil(t, got.SleepHours)
	assert.Equal(t, 7.5, *got.SleepHours)
}

func TestDailyLog_AbsentMetricsStayAbsent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.UpsertDailyLog(advisor.DailyLog{
		LogDate:          time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		WorkoutCompleted: false,
	}))

	logs, err := db.ListDailyLogs(time.Time{})
	require.NoError(t, err)
	require.Len(t, logs, 1)

	// NULL columns must come back as nil pointers, never as zeroes.
	assert.Nil(t, logs[0].EnergyLevel)
	assert.Nil(t, logs[0].SleepHours)
	assert.Nil(t, logs[0].SleepQuality)
	assert.Nil(t, logs[0].StressLevel)
}

func TestDailyLog_UpsertReplacesSameDay(t *testing.T) {
	db := testDB(t)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	require.NoError(t, db.UpsertDailyLog(advisor.DailyLog{LogDate: date, EnergyLevel: ipt(4)}))
	require.NoError(t, db.UpsertDailyLog(advisor.DailyLog{LogDate: date, EnergyLevel: ipt(8), WorkoutCompleted: true}))

	logs, err := db.ListDailyLogs(time.Time{})
	require.NoError(t, err)
	require.Len(t, logs, 1, "one row per calendar day")
	assert.Equal(t, 8, *logs[0].EnergyLevel)
	assert.True(t, logs[0].WorkoutCompleted)
}

func TestDailyLog_UpsertKeepsSingleRawRow(t *testing.T) {
	db := testDB(t)
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, db.UpsertDailyLog(advisor.DailyLog{LogDate: date, EnergyLevel: ipt(5 + i)}))
	}

	// Check the table itself, not just the list query: the UNIQUE
	// constraint must hold at the row level.
	var count int
	err := db.Conn().QueryRow(
		"SELECT COUNT(*) FROM daily_logs WHERE log_date = ?", "2026-03-09",
	).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDailyLog_ListOrderedMostRecentFirst(t *testing.T) {
	db := testDB(t)
	for _, daysAgo := range []int{3, 1, 2, 0} {
		require.NoError(t, db.UpsertDailyLog(advisor.DailyLog{
			LogDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -daysAgo),
		}))
	}

	logs, err := db.ListDailyLogs(time.Time{})
	require.NoError(t, err)
	require.Len(t, logs, 4)
	for i := 1; i < len(logs); i++ {
		assert.True(t, logs[i-1].LogDate.After(logs[i].LogDate))
	}
}

func TestExerciseLog_RoundTripAndCount(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.InsertExerciseLog(advisor.ExerciseLog{
		LogDate:        time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Exercise:       "bench press",
		CompletedSets:  ipt(4),
		PrescribedReps: "8-12",
	}))
	require.NoError(t, db.InsertExerciseLog(advisor.ExerciseLog{
		LogDate:  time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC),
		Exercise: "row",
	}))

	count, err := db.CountExerciseLogs()
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	logs, err := db.ListExerciseLogs(time.Time{})
	require.NoError(t, err)
	require.Len(t, logs, 2)

	var bench advisor.ExerciseLog
	for _, l := range logs {
		if l.Exercise == "bench press" {
			bench = l
		}
	}
	require.NotNil(t, bench.CompletedSets)
	assert.Equal(t, 4, *bench.CompletedSets)
	assert.Equal(t, "8-12", bench.PrescribedReps)
}

func TestExerciseLog_SinceFilter(t *testing.T) {
	db := testDB(t)
	base := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for _, daysAgo := range []int{1, 10, 40} {
		require.NoError(t, db.InsertExerciseLog(advisor.ExerciseLog{
			LogDate:  base.AddDate(0, 0, -daysAgo),
			Exercise: "squat",
		}))
	}

	logs, err := db.ListExerciseLogs(base.AddDate(0, 0, -28))
	require.NoError(t, err)
	assert.Len(t, logs, 2, "logs older than the window are excluded")
}

func TestProfile_SaveAndGet(t *testing.T) {
	db := testDB(t)

	p, err := db.GetProfile()
	require.NoError(t, err)
	assert.Nil(t, p, "no profile until one is saved")

	require.NoError(t, db.SaveProfile(advisor.UserProfile{CurrentPhase: advisor.PhaseCutting}))
	require.NoError(t, db.SaveProfile(advisor.UserProfile{CurrentPhase: advisor.PhaseRecomp}))

	p, err = db.GetProfile()
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, advisor.PhaseRecomp, p.CurrentPhase, "saving again overwrites the single row")
}
