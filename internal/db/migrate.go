package db

import (
	"embed"
	"fmt"
	"io/fs"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"

	"github.com/asharish/portfolio-api/internal/db/migrations"
)

//go:embed migrations
var Migrations embed.FS

// Migrate runs all pending goose migrations. Every migration is additive and
// individually idempotent (create-if-absent, add-column-if-absent), so running
// against a database already at the target schema is a no-op and a database
// left mid-migration by a crash converges on the next run.
func Migrate(conn *sqlx.DB, driver string) error {
	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	migrations.SetDialect(dialect)

	sub, err := fs.Sub(Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("sub migrations fs: %w", err)
	}

	goose.SetBaseFS(sub)
	if err := goose.Up(conn.DB, "."); err != nil {
		goose.SetBaseFS(nil)
		return fmt.Errorf("run migrations: %w", err)
	}
	goose.SetBaseFS(nil)

	return nil
}

// MigrateAtStartup applies migrations but never aborts the boot: a failure is
// logged and the server starts against whatever schema is in place. Use the
// migrate subcommand to surface errors.
func MigrateAtStartup(conn *sqlx.DB, driver string) {
	if err := Migrate(conn, driver); err != nil {
		log.Printf("schema migration failed (continuing startup): %v", err)
	}
}

func gooseDialect(driver string) (string, error) {
	switch driver {
	case "sqlite3":
		return "sqlite3", nil
	case "mysql":
		return "mysql", nil
	case "postgres":
		return "postgres", nil
	default:
		return "", fmt.Errorf("unknown driver for goose dialect: %q", driver)
	}
}
