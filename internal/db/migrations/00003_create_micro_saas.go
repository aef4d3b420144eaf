package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateMicroSaas, downCreateMicroSaas)
}

func upCreateMicroSaas(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS micro_saas (
    id             %s,
    title          VARCHAR(255) NOT NULL,
    subtitle       VARCHAR(255),
    role           VARCHAR(255),
    status         VARCHAR(100),
    description    TEXT,
    technologies   TEXT,
    icon_class     VARCHAR(100),
    color_gradient VARCHAR(255),
    display_order  INTEGER DEFAULT 0,
    is_visible     BOOLEAN DEFAULT TRUE,
    created_at     TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`, serialPK())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create micro_saas table: %w", err)
	}
	return nil
}

func downCreateMicroSaas(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS micro_saas")
	return err
}
