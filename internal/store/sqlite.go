package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/andresaoe/portafolio/internal/contact"
)

// SQLiteConfig points at a local database file.
// Embed this in your app config for env parsing with caarlos0/env.
type SQLiteConfig struct {
	// Path of the database file. Empty means the SQLite backend is not configured.
	Path string `env:"SQLITE_PATH"`
}

// SQLite is the Store backed by a modernc.org/sqlite database.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Join(ErrOpenDatabase, err)
	}
	// SQLite serializes writers; one connection avoids SQLITE_BUSY between pool members.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000`); err != nil {
		db.Close()
		return nil, errors.Join(ErrOpenDatabase, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Join(ErrOpenDatabase, err)
	}
	return &SQLite{db: db}, nil
}

// DB exposes the underlying handle for migrations.
func (s *SQLite) DB() *sql.DB {
	return s.db
}

func (s *SQLite) Insert(ctx context.Context, sub contact.Submission) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contact_messages (name, email, message, created_at) VALUES (?, ?, ?, ?)`,
		sub.Name, sub.Email, sub.Message, time.Now().UTC(),
	)
	if err != nil {
		return &InsertError{Message: err.Error(), Err: err}
	}
	return nil
}

func (s *SQLite) Recent(ctx context.Context, limit int) ([]Message, error) {
	if limit <= 0 {
		return nil, ErrInvalidArguments
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("store: query recent messages: %w", err)
	}
	defer rows.Close()

	var messages []Message
	for rows.Next() {
		var m Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("store: scan recent messages: %w", err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store: iterate recent messages: %w", err)
	}
	return messages, nil
}

func (s *SQLite) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contact_messages`).Scan(&n); err != nil {
		return 0, fmt.Errorf("store: count messages: %w", err)
	}
	return n, nil
}

func (s *SQLite) Delete(ctx context.Context, id int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("store: delete message %d: %w", id, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("store: delete message %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLite) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("store: delete messages before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	return result.RowsAffected()
}

func (s *SQLite) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return errors.Join(ErrHealthcheck, err)
	}
	return nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
