package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/blackwell-systems/trainwatch/internal/advisor"
)

// dateLayout is how calendar dates are stored; one row per day.
const dateLayout = "2006-01-02"

// UpsertDailyLog inserts or updates the wellness entry for a calendar day.
// Re-logging the same day replaces it; there is never more than one row
// per date.
func (db *DB) UpsertDailyLog(l advisor.DailyLog) error {
	_, err := db.conn.Exec(`
		INSERT INTO daily_logs
			(log_date, workout_completed, energy_level, sleep_hours, sleep_quality, stress_level, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(log_date) DO UPDATE SET
			workout_completed = excluded.workout_completed,
			energy_level      = excluded.energy_level,
			sleep_hours       = excluded.sleep_hours,
			sleep_quality     = excluded.sleep_quality,
			stress_level      = excluded.stress_level,
			updated_at        = excluded.updated_at`,
		l.LogDate.UTC().Format(dateLayout),
		l.WorkoutCompleted,
		nullableInt(l.EnergyLevel),
		nullableFloat(l.SleepHours),
		nullableInt(l.SleepQuality),
		nullableInt(l.StressLevel),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upserting daily log: %w", err)
	}
	return nil
}

// ListDailyLogs returns daily logs on or after since, most recent first.
func (db *DB) ListDailyLogs(since time.Time) ([]advisor.DailyLog, error) {
	rows, err := db.conn.Query(`
		SELECT log_date, workout_completed, energy_level, sleep_hours, sleep_quality, stress_level
		FROM daily_logs
		WHERE log_date >= ?
		ORDER BY log_date DESC`,
		since.UTC().Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("querying daily logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var logs []advisor.DailyLog
	for rows.Next() {
		var (
			date    string
			l       advisor.DailyLog
			energy  sql.NullInt64
			hours   sql.NullFloat64
			quality sql.NullInt64
			stress  sql.NullInt64
		)
		if err := rows.Scan(&date, &l.WorkoutCompleted, &energy, &hours, &quality, &stress); err != nil {
			return nil, fmt.Errorf("scanning daily log: %w", err)
		}
		l.LogDate, err = time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing log date %q: %w", date, err)
		}
		l.EnergyLevel = intPtr(energy)
		l.SleepHours = floatPtr(hours)
		l.SleepQuality = intPtr(quality)
		l.StressLevel = intPtr(stress)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// InsertExerciseLog records one completed exercise entry.
func (db *DB) InsertExerciseLog(l advisor.ExerciseLog) error {
	_, err := db.conn.Exec(`
		INSERT INTO exercise_logs (log_date, exercise, completed_sets, prescribed_reps, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		l.LogDate.UTC().Format(dateLayout),
		l.Exercise,
		nullableInt(l.CompletedSets),
		nullableString(l.PrescribedReps),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting exercise log: %w", err)
	}
	return nil
}

// ListExerciseLogs returns exercise logs on or after since, most recent first.
func (db *DB) ListExerciseLogs(since time.Time) ([]advisor.ExerciseLog, error) {
	rows, err := db.conn.Query(`
		SELECT log_date, exercise, completed_sets, prescribed_reps
		FROM exercise_logs
		WHERE log_date >= ?
		ORDER BY log_date DESC, id DESC`,
		since.UTC().Format(dateLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("querying exercise logs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var logs []advisor.ExerciseLog
	for rows.Next() {
		var (
			date string
			l    advisor.ExerciseLog
			sets sql.NullInt64
			reps sql.NullString
		)
		if err := rows.Scan(&date, &l.Exercise, &sets, &reps); err != nil {
			return nil, fmt.Errorf("scanning exercise log: %w", err)
		}
		l.LogDate, err = time.ParseInLocation(dateLayout, date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing log date %q: %w", date, err)
		}
		l.CompletedSets = intPtr(sets)
		l.PrescribedReps = reps.String
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// CountExerciseLogs returns the total number of exercise entries recorded.
func (db *DB) CountExerciseLogs() (int, error) {
	var count int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM exercise_logs").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting exercise logs: %w", err)
	}
	return count, nil
}

// SaveProfile stores the user's current training phase.
func (db *DB) SaveProfile(p advisor.UserProfile) error {
	_, err := db.conn.Exec(`
		INSERT INTO profile (id, current_phase, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			current_phase = excluded.current_phase,
			updated_at    = excluded.updated_at`,
		string(p.CurrentPhase),
		time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

// GetProfile returns the stored profile, or nil if none has been set.
func (db *DB) GetProfile() (*advisor.UserProfile, error) {
	var phase string
	err := db.conn.QueryRow("SELECT current_phase FROM profile WHERE id = 1").Scan(&phase)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}
	return &advisor.UserProfile{CurrentPhase: advisor.Phase(phase)}, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}

func floatPtr(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}
