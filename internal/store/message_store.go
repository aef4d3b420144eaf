package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
)

// Message is a contact-form submission. Rows are append-only; only the
// is_read flag ever changes after insert.
type Message struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Subject   string    `db:"subject" json:"subject"`
	Message   string    `db:"message" json:"message"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	IsRead    bool      `db:"is_read" json:"is_read"`
}

type MessageStore struct {
	db *sqlx.DB
}

func NewMessageStore(db *sqlx.DB) *MessageStore {
	return &MessageStore{db: db}
}

// Insert stores one contact message and returns it.
func (s *MessageStore) Insert(ctx context.Context, name, email, subject, body string) (*Message, error) {
	now := time.Now().UTC()
	query := s.db.Rebind(`
		INSERT INTO messages (name, email, subject, message, created_at, is_read)
		VALUES (?, ?, ?, ?, ?, FALSE)
	`)

	if s.db.DriverName() == "postgres" {
		var id int64
		if err := s.db.QueryRowxContext(ctx, query+" RETURNING id", name, email, subject, body, now).Scan(&id); err != nil {
			return nil, err
		}
		return s.get(ctx, id)
	}

	res, err := s.db.ExecContext(ctx, query, name, email, subject, body, now)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return s.get(ctx, id)
}

// List returns all messages, newest first.
func (s *MessageStore) List(ctx context.Context) ([]*Message, error) {
	var msgs []*Message
	err := s.db.SelectContext(ctx, &msgs, `SELECT * FROM messages ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead flips the is_read flag on one message.
func (s *MessageStore) MarkRead(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, s.db.Rebind(`UPDATE messages SET is_read = TRUE WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MessageStore) get(ctx context.Context, id int64) (*Message, error) {
	var m Message
	err := s.db.GetContext(ctx, &m, s.db.Rebind(`SELECT * FROM messages WHERE id = ?`), id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}
