package migrations

import (
	"context"
	"database/sql"
	"log"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationNoTxContext(upUpgradeCertifications, downUpgradeCertifications)
}

func upUpgradeCertifications(ctx context.Context, conn *sql.DB) error {
	if err := addColumnIfAbsent(ctx, conn, "certifications", "certificate_visible BOOLEAN DEFAULT TRUE"); err != nil {
		return err
	}
	if err := addColumnIfAbsent(ctx, conn, "certifications", "verify_link VARCHAR(500)"); err != nil {
		return err
	}

	// certificate_link started life as VARCHAR(255); widen it where the
	// dialect distinguishes. SQLite column affinity already behaves as TEXT.
	var widen string
	switch dialect {
	case "postgres":
		widen = "ALTER TABLE projects ALTER COLUMN certificate_link TYPE TEXT"
	case "mysql":
		widen = "ALTER TABLE projects MODIFY certificate_link TEXT"
	default:
		return nil
	}
	if _, err := conn.ExecContext(ctx, widen); err != nil {
		// Type widening is best-effort on databases created before the
		// column rename era; log and move on.
		log.Printf("widen projects.certificate_link: %v", err)
	}
	return nil
}

func downUpgradeCertifications(ctx context.Context, conn *sql.DB) error {
	return nil
}
