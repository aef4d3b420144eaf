package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// Setting is one site_settings row: a small persisted blob (data URI, path,
// or plain text) keyed by name.
type Setting struct {
	Key       string    `db:"key" json:"key"`
	Value     string    `db:"value" json:"value"`
	Mime      string    `db:"mime" json:"mime"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type SettingsStore struct {
	db *sqlx.DB
}

func NewSettingsStore(db *sqlx.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get returns the setting for key, or ErrNotFound.
func (s *SettingsStore) Get(ctx context.Context, key string) (*Setting, error) {
	var out Setting
	err := s.db.GetContext(ctx, &out, s.q(`SELECT * FROM site_settings WHERE "key" = ?`), key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Set upserts a setting.
func (s *SettingsStore) Set(ctx context.Context, key, value, mime string) error {
	now := time.Now().UTC()
	res, err := s.db.ExecContext(ctx,
		s.q(`UPDATE site_settings SET "value" = ?, mime = ?, updated_at = ? WHERE "key" = ?`),
		value, mime, now, key)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx,
		s.q(`INSERT INTO site_settings ("key", "value", mime, updated_at) VALUES (?, ?, ?, ?)`),
		key, value, mime, now)
	return err
}

// List returns all settings ordered by key.
func (s *SettingsStore) List(ctx context.Context) ([]*Setting, error) {
	var out []*Setting
	if err := s.db.SelectContext(ctx, &out, s.q(`SELECT * FROM site_settings ORDER BY "key" ASC`)); err != nil {
		return nil, err
	}
	return out, nil
}

// q rebinds placeholders and rewrites quoted identifiers for MySQL, where
// KEY and VALUE are reserved words and ANSI quotes are off by default.
func (s *SettingsStore) q(query string) string {
	if s.db.DriverName() == "mysql" {
		query = strings.ReplaceAll(query, `"`, "`")
	}
	return s.db.Rebind(query)
}
