package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateSiteSettings, downCreateSiteSettings)
}

// site_settings is a key/value store for small persisted blobs (hero image,
// resume PDF path, theme tweaks) that don't deserve a table of their own.
func upCreateSiteSettings(ctx context.Context, tx *sql.Tx) error {
	// KEY and VALUE are reserved words in MySQL.
	var ddl string
	if dialect == "mysql" {
		ddl = "CREATE TABLE IF NOT EXISTS site_settings (" +
			"`key` VARCHAR(100) PRIMARY KEY, `value` TEXT, mime VARCHAR(100), " +
			"updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP)"
	} else {
		ddl = `CREATE TABLE IF NOT EXISTS site_settings (
    key        VARCHAR(100) PRIMARY KEY,
    value      TEXT,
    mime       VARCHAR(100),
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`
	}
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create site_settings table: %w", err)
	}
	return nil
}

func downCreateSiteSettings(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS site_settings")
	return err
}
