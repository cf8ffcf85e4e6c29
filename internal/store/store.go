// Package store persists contact submissions in the contact_messages table.
//
// Two backends share the Store interface: Postgres (the hosted row store the site writes to in
// production) and SQLite (single-host deployments and local development). Insert failures are
// reported as *InsertError carrying the provider's own wording, so callers can map well-known
// messages (missing table, check constraint, row-level security) to friendlier text.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/andresaoe/portafolio/internal/contact"
)

var (
	ErrNotFound         = errors.New("store: contact message not found")
	ErrUnknownDialect   = errors.New("store: unknown dialect")
	ErrApplyMigrations  = errors.New("store: failed to apply migrations")
	ErrOpenDatabase     = errors.New("store: failed to open database")
	ErrParseConfig      = errors.New("store: failed to parse database configuration")
	ErrHealthcheck      = errors.New("store: healthcheck failed")
	ErrInvalidArguments = errors.New("store: invalid arguments")
)

// Message is a persisted contact submission.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is the remote table the contact form writes to.
type Store interface {
	Insert(ctx context.Context, s contact.Submission) error
	Recent(ctx context.Context, limit int) ([]Message, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	// DeleteBefore removes messages created before cutoff and reports how many went.
	DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// InsertError wraps a failed insert. Error returns the provider message unchanged.
type InsertError struct {
	Message string
	Err     error
}

func (e *InsertError) Error() string {
	return e.Message
}

func (e *InsertError) Unwrap() error {
	return e.Err
}
