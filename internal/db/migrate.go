package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
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
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT 'russian',
		formality TEXT NOT NULL DEFAULT 'casual',
		emoji_usage TEXT NOT NULL DEFAULT 'low',
		reminders_enabled INTEGER NOT NULL DEFAULT 1,
		best_streak INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plans (
		user_id TEXT PRIMARY KEY REFERENCES profiles(id) ON DELETE CASCADE,
		plan_id TEXT NOT NULL,
		goal TEXT NOT NULL DEFAULT '',
		language TEXT NOT NULL DEFAULT 'russian',
		formality TEXT NOT NULL DEFAULT 'casual',
		created_at TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS plan_years (
		user_id TEXT NOT NULL REFERENCES plans(user_id) ON DELETE CASCADE,
		year INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		milestones TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (user_id, year)
	)`,

	`CREATE TABLE IF NOT EXISTS daily_tasks (
		user_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		seq INTEGER NOT NULL,
		text TEXT NOT NULL,
		PRIMARY KEY (user_id, date, seq)
	)`,

	`CREATE TABLE IF NOT EXISTS completions (
		user_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
		date TEXT NOT NULL,
		seq INTEGER NOT NULL,
		completed_at TEXT NOT NULL,
		PRIMARY KEY (user_id, date, seq)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_daily_tasks_user_date ON daily_tasks(user_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_user_date ON completions(user_id, date)`,
}
