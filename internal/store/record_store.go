package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Record is one row of a content collection. Column types are whatever the
// driver hands back, normalized so []byte becomes string.
type Record = map[string]any

// RecordStore provides generic CRUD over the registered collections.
type RecordStore struct {
	db *sqlx.DB
}

func NewRecordStore(db *sqlx.DB) *RecordStore {
	return &RecordStore{db: db}
}

// List returns all rows of the collection ordered by display_order. When
// includeHidden is false only rows with is_visible = TRUE are returned.
func (s *RecordStore) List(ctx context.Context, name string, includeHidden bool) ([]Record, error) {
	c, err := LookupCollection(name)
	if err != nil {
		return nil, err
	}

	query := "SELECT * FROM " + c.Table + " ORDER BY display_order ASC"
	if !includeHidden {
		query = "SELECT * FROM " + c.Table + " WHERE is_visible = TRUE ORDER BY display_order ASC"
	}

	return s.selectRecords(ctx, query)
}

// Get returns the row matching id, or ErrNotFound.
func (s *RecordStore) Get(ctx context.Context, name string, id int64) (Record, error) {
	c, err := LookupCollection(name)
	if err != nil {
		return nil, err
	}

	row := s.db.QueryRowxContext(ctx, s.db.Rebind("SELECT * FROM "+c.Table+" WHERE id = ?"), id)
	rec := Record{}
	if err := row.MapScan(rec); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	normalizeRecord(rec)
	return rec, nil
}

// Save upserts a row: insert when id is zero, update otherwise. Fields not in
// the collection's column allow-list are dropped without error, and for every
// link/visibility pair present in the payload a blank or null link forces the
// paired flag to false regardless of what the caller sent. Returns the stored
// row.
func (s *RecordStore) Save(ctx context.Context, name string, id int64, fields map[string]any) (Record, error) {
	c, err := LookupCollection(name)
	if err != nil {
		return nil, err
	}

	filtered := filterFields(c, fields)
	deriveVisibility(c, filtered)

	// Iterate the registry column order so the generated SQL is
	// deterministic.
	var cols []string
	var vals []any
	for _, col := range c.Columns {
		if v, ok := filtered[col]; ok {
			cols = append(cols, col)
			vals = append(vals, v)
		}
	}

	if id != 0 {
		if len(cols) == 0 {
			return nil, ErrNoValidFields
		}
		sets := make([]string, len(cols))
		for i, col := range cols {
			sets[i] = col + " = ?"
		}
		query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ?", c.Table, strings.Join(sets, ", "))
		res, err := s.db.ExecContext(ctx, s.db.Rebind(query), append(vals, id)...)
		if err != nil {
			return nil, err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return nil, ErrNotFound
		}
		return s.Get(ctx, name, id)
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", c.Table, strings.Join(cols, ", "), placeholders)
	if len(cols) == 0 {
		// A row of nothing but defaults; rare but the original allowed it.
		query = insertDefaults(s.db.DriverName(), c.Table)
	}

	if s.db.DriverName() == "postgres" {
		var newID int64
		if err := s.db.QueryRowxContext(ctx, s.db.Rebind(query+" RETURNING id"), vals...).Scan(&newID); err != nil {
			return nil, err
		}
		return s.Get(ctx, name, newID)
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind(query), vals...)
	if err != nil {
		return nil, err
	}
	newID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return s.Get(ctx, name, newID)
}

// Delete removes the row matching id. ErrNotFound when nothing matched.
func (s *RecordStore) Delete(ctx context.Context, name string, id int64) error {
	c, err := LookupCollection(name)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM "+c.Table+" WHERE id = ?"), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder assigns display_order = index+1 for each id, in one transaction.
// If any id matches no row the whole reorder rolls back with ErrNotFound, so
// a collection can never be left with duplicate or gapped order values.
func (s *RecordStore) Reorder(ctx context.Context, name string, orderedIDs []int64) error {
	c, err := LookupCollection(name)
	if err != nil {
		return err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := s.db.Rebind("UPDATE " + c.Table + " SET display_order = ? WHERE id = ?")
	for i, id := range orderedIDs {
		res, err := tx.ExecContext(ctx, query, i+1, id)
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("reorder %s id %d: %w", c.Name, id, ErrNotFound)
		}
	}

	return tx.Commit()
}

func (s *RecordStore) selectRecords(ctx context.Context, query string, args ...any) ([]Record, error) {
	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		rec := Record{}
		if err := rows.MapScan(rec); err != nil {
			return nil, err
		}
		normalizeRecord(rec)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// filterFields keeps only writable columns. Unknown keys are dropped rather
// than rejected so forward-incompatible admin payloads still save.
func filterFields(c *Collection, fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if c.HasColumn(k) {
			out[k] = v
		}
	}
	return out
}

// deriveVisibility forces each visibility flag to false when its paired link
// is null or blank after trimming. The storage engine never enforces this;
// every write path must.
func deriveVisibility(c *Collection, fields map[string]any) {
	for link, visible := range c.LinkPairs {
		v, ok := fields[link]
		if !ok {
			continue
		}
		if v == nil {
			fields[visible] = false
			continue
		}
		if str, ok := v.(string); ok && strings.TrimSpace(str) == "" {
			fields[visible] = false
		}
	}
}

// insertDefaults is the all-defaults insert for the active driver.
func insertDefaults(driver, table string) string {
	if driver == "mysql" {
		return "INSERT INTO " + table + " () VALUES ()"
	}
	return "INSERT INTO " + table + " DEFAULT VALUES"
}

// normalizeRecord converts driver byte slices to strings so records encode as
// JSON text instead of base64.
func normalizeRecord(rec Record) {
	for k, v := range rec {
		if b, ok := v.([]byte); ok {
			rec[k] = string(b)
		}
	}
}
