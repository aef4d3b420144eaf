package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// backupTables is every persisted table, content and bookkeeping alike.
var backupTables = []string{
	"skills", "projects", "internships", "certifications",
	"achievements", "micro_saas", "messages", "site_settings",
}

// Backup dumps every table to a table-name → rows map for the admin export
// download. Rows come back driver-typed with byte slices normalized.
func Backup(ctx context.Context, db *sqlx.DB) (map[string][]Record, error) {
	dump := make(map[string][]Record, len(backupTables))
	for _, table := range backupTables {
		rows, err := db.QueryxContext(ctx, "SELECT * FROM "+table)
		if err != nil {
			return nil, err
		}

		records := []Record{}
		for rows.Next() {
			rec := Record{}
			if err := rows.MapScan(rec); err != nil {
				rows.Close()
				return nil, err
			}
			normalizeRecord(rec)
			records = append(records, rec)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, err
		}
		rows.Close()
		dump[table] = records
	}
	return dump, nil
}
