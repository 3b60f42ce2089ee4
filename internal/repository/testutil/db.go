package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"lingua/backend/internal/db"
	"lingua/backend/pkg/snowflake"

	_ "modernc.org/sqlite"
)

var snowflakeOnce sync.Once

// NewTestDB opens a migrated in-memory SQLite database unique to the test.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", name, time.Now().UnixNano())
	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedTask inserts a task row directly and returns its ID.
func SeedTask(t *testing.T, db *sql.DB, title string, deadline time.Time, completed bool) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)
	done := 0
	if completed {
		done = 1
	}

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO tasks (id, title, deadline, completed, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, deadline.UTC().Format(time.RFC3339Nano), done, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}

	return id
}
