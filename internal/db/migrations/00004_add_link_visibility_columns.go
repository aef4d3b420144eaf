package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationNoTxContext(upAddLinkVisibilityColumns, downAddLinkVisibilityColumns)
}

// upAddLinkVisibilityColumns gives every external link on projects,
// internships, and achievements a paired visibility flag, plus the
// certificate link/flag pair added in the same era.
func upAddLinkVisibilityColumns(ctx context.Context, conn *sql.DB) error {
	tables := []string{"projects", "internships", "achievements"}
	links := []string{"source_code", "demo_video", "live_demo"}

	for _, table := range tables {
		for _, link := range links {
			if err := addColumnIfAbsent(ctx, conn, table, link+"_visible BOOLEAN DEFAULT TRUE"); err != nil {
				return err
			}
		}
		if err := addColumnIfAbsent(ctx, conn, table, "certificate_link TEXT"); err != nil {
			return err
		}
		if err := addColumnIfAbsent(ctx, conn, table, "certificate_visible BOOLEAN DEFAULT TRUE"); err != nil {
			return err
		}
	}
	return nil
}

// Additive-only schema policy: the down direction is a no-op.
func downAddLinkVisibilityColumns(ctx context.Context, conn *sql.DB) error {
	return nil
}
