package migrations

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
)

func init() {
	goose.AddMigrationContext(upCreateMessages, downCreateMessages)
}

// Messages are append-only: rows are inserted by the public contact endpoint
// and never updated except for the is_read flag.
func upCreateMessages(ctx context.Context, tx *sql.Tx) error {
	ddl := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS messages (
    id         %s,
    name       VARCHAR(255),
    email      VARCHAR(255),
    subject    VARCHAR(255),
    message    TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    is_read    BOOLEAN DEFAULT FALSE
)`, serialPK())
	if _, err := tx.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create messages table: %w", err)
	}
	return nil
}

func downCreateMessages(ctx context.Context, tx *sql.Tx) error {
	_, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS messages")
	return err
}
