package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/asharish/portfolio-api/internal/db"
)

// NewTestDB opens an in-memory SQLite DB and applies all migrations.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	// File URI with shared cache so all pool connections see the same
	// in-memory database; the test name keeps databases isolated per test.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_busy_timeout=5000"
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("open in-memory sqlite: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	return conn
}
