// Package migrations contains dialect-aware Go database migrations. The schema
// predates this service (it was grown column by column against a live site), so
// every migration is additive and safe to replay: tables are created if absent
// and columns are added with duplicate errors swallowed.
package migrations

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// dialect is set by the parent db package before migrations are applied.
var dialect string

// SetDialect configures the SQL dialect for Go migrations.
// Must be called before goose.Up. Valid values: "sqlite3", "postgres", "mysql".
func SetDialect(d string) {
	dialect = d
}

// serialPK returns the auto-incrementing integer primary key DDL for the
// active dialect.
func serialPK() string {
	switch dialect {
	case "postgres":
		return "SERIAL PRIMARY KEY"
	case "mysql":
		return "INTEGER PRIMARY KEY AUTO_INCREMENT"
	default: // sqlite3
		return "INTEGER PRIMARY KEY AUTOINCREMENT"
	}
}

// addColumnIfAbsent issues ALTER TABLE ... ADD COLUMN and swallows the
// duplicate-column error, since neither SQLite nor MySQL support
// ADD COLUMN IF NOT EXISTS. This keeps replays and partially-applied
// schemas convergent. Column-add migrations run outside a transaction
// because a swallowed error would poison an open postgres transaction.
func addColumnIfAbsent(ctx context.Context, conn *sql.DB, table, columnDDL string) error {
	_, err := conn.ExecContext(ctx, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", table, columnDDL))
	if err != nil && isDuplicateColumn(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("add column %s.%s: %w", table, columnDDL, err)
	}
	return nil
}

func isDuplicateColumn(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate column") || // sqlite, mysql
		strings.Contains(msg, "already exists") // postgres
}
