package db

import (
	"database/sql"
	"fmt"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS tasks (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  deadline TEXT NOT NULL,
  reminder_frequency TEXT,
  completed INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline);

CREATE TABLE IF NOT EXISTS business_cards (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  title TEXT,
  company TEXT,
  phone TEXT,
  email TEXT,
  qr_code TEXT,
  created_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add completed_at column to tasks if not exists
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('tasks') WHERE name = 'completed_at'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check completed_at column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE tasks ADD COLUMN completed_at TEXT`); err != nil {
			return fmt.Errorf("add completed_at column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_tasks_completed ON tasks(completed)`); err != nil {
		return fmt.Errorf("create idx_tasks_completed: %w", err)
	}

	return nil
}
