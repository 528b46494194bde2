package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id                   TEXT PRIMARY KEY,
		username             TEXT NOT NULL UNIQUE,
		first_name           TEXT NOT NULL DEFAULT '',
		last_name            TEXT NOT NULL DEFAULT '',
		age                  INTEGER NOT NULL DEFAULT 0 CHECK(age >= 0),
		level                INTEGER NOT NULL DEFAULT 1 CHECK(level >= 1),
		xp                   INTEGER NOT NULL DEFAULT 0,
		intelligence         INTEGER NOT NULL DEFAULT 0,
		vitality             INTEGER NOT NULL DEFAULT 0,
		strength             INTEGER NOT NULL DEFAULT 0,
		discipline           INTEGER NOT NULL DEFAULT 0,
		peace                INTEGER NOT NULL DEFAULT 0,
		total_study_sessions INTEGER NOT NULL DEFAULT 0,
		total_workouts       INTEGER NOT NULL DEFAULT 0,
		total_meditations    INTEGER NOT NULL DEFAULT 0,
		current_stress       INTEGER NOT NULL DEFAULT 10,
		sleep_hours          REAL NOT NULL DEFAULT 7,
		study_hours          REAL NOT NULL DEFAULT 10,
		screen_time          REAL NOT NULL DEFAULT 4,
		exercise_days        REAL NOT NULL DEFAULT 3,
		stress_level         REAL NOT NULL DEFAULT 5,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS activity_logs (
		id           TEXT PRIMARY KEY,
		profile_id   TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		type         TEXT NOT NULL CHECK(type IN ('study','workout','meditate')),
		description  TEXT NOT NULL DEFAULT '',
		xp_earned    INTEGER NOT NULL DEFAULT 0,
		completed_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_activity_logs_profile ON activity_logs(profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_activity_logs_completed ON activity_logs(completed_at)`,

	`CREATE TABLE IF NOT EXISTS evaluations (
		id             TEXT PRIMARY KEY,
		profile_id     TEXT REFERENCES profiles(id) ON DELETE CASCADE,
		sleep_hours    REAL NOT NULL,
		study_hours    REAL NOT NULL,
		screen_time    REAL NOT NULL,
		exercise_days  REAL NOT NULL,
		stress_level   REAL NOT NULL,
		academic_score INTEGER NOT NULL,
		burnout_risk   INTEGER NOT NULL,
		health_score   INTEGER NOT NULL,
		biggest_impact TEXT NOT NULL,
		projection     TEXT NOT NULL DEFAULT '[]',
		evaluated_at   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_evaluations_profile ON evaluations(profile_id)`,
	`CREATE INDEX IF NOT EXISTS idx_evaluations_evaluated ON evaluations(evaluated_at)`,

	// Study profile (what the user studies for) arrived after the first release.
	`ALTER TABLE profiles ADD COLUMN study_role TEXT NOT NULL DEFAULT ''
		CHECK(study_role IN ('','School','College','Job'))`,
	`ALTER TABLE profiles ADD COLUMN study_detail TEXT NOT NULL DEFAULT ''`,
}
