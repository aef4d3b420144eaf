package db_test

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/asharish/portfolio-api/internal/db"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	conn, err := sqlx.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestMigrate_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("first migrate: %v", err)
	}
	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestMigrate_SchemaComplete(t *testing.T) {
	conn := openTestDB(t)
	if err := db.Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	// Inserting into columns added by later migrations proves the full
	// chain ran, base tables and additive column migrations alike.
	stmts := []string{
		`INSERT INTO projects (title, source_code_visible, certificate_link, project_image_path) VALUES ('p', TRUE, 'x', 'y')`,
		`INSERT INTO skills (title, technologies, icon_class) VALUES ('s', 't', 'fas fa-code')`,
		`INSERT INTO certifications (title, issuer, certificate_visible, verify_link) VALUES ('c', 'i', TRUE, 'v')`,
		`INSERT INTO micro_saas (title, source_code_link, demo_video_link) VALUES ('m', 'a', 'b')`,
		`INSERT INTO messages (name, email, message) VALUES ('n', 'e', 'm')`,
		`INSERT INTO site_settings ("key", "value", mime, updated_at) VALUES ('k', 'v', 'text/plain', CURRENT_TIMESTAMP)`,
	}
	for _, stmt := range stmts {
		if _, err := conn.Exec(stmt); err != nil {
			t.Errorf("%s: %v", stmt, err)
		}
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	if _, err := db.New("oracle", "dsn"); err == nil {
		t.Error("unknown driver accepted")
	}
}
