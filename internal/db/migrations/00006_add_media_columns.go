package migrations

import (
	"context"
	"database/sql"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationNoTxContext(upAddMediaColumns, downAddMediaColumns)
}

func upAddMediaColumns(ctx context.Context, conn *sql.DB) error {
	cols := []struct {
		table string
		ddl   string
	}{
		{"projects", "project_image_path TEXT"},
		{"skills", "icon_class VARCHAR(50) DEFAULT 'fas fa-code'"},
		{"micro_saas", "source_code_link VARCHAR(500)"},
		{"micro_saas", "demo_video_link VARCHAR(500)"},
	}
	for _, c := range cols {
		if err := addColumnIfAbsent(ctx, conn, c.table, c.ddl); err != nil {
			return err
		}
	}
	return nil
}

func downAddMediaColumns(ctx context.Context, conn *sql.DB) error {
	return nil
}
