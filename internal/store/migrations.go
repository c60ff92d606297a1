package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		// One row per calendar day. Metric columns are nullable because a
		// self-report may cover only some metrics; NULL means "not
		// reported", never zero.
		`CREATE TABLE IF NOT EXISTS daily_logs (
			id                INTEGER PRIMARY KEY AUTOINCREMENT,
			log_date          TEXT NOT NULL UNIQUE,
			workout_completed BOOLEAN NOT NULL DEFAULT false,
			energy_level      INTEGER,
			sleep_hours       REAL,
			sleep_quality     INTEGER,
			stress_level      INTEGER,
			updated_at        TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS exercise_logs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			log_date        TEXT NOT NULL,
			exercise        TEXT NOT NULL,
			completed_sets  INTEGER,
			prescribed_reps TEXT,
			created_at      TEXT NOT NULL
		)`,

		// Single-row profile table.
		`CREATE TABLE IF NOT EXISTS profile (
			id            INTEGER PRIMARY KEY CHECK (id = 1),
			current_phase TEXT NOT NULL,
			updated_at    TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_daily_logs_date ON daily_logs(log_date)`,
		`CREATE INDEX IF NOT EXISTS idx_exercise_logs_date ON exercise_logs(log_date)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
