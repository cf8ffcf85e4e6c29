package submit

import (
	"context"

	"github.com/andresaoe/portafolio/internal/contact"
)

// Inserter is the one operation the pipeline needs from the contact_messages table.
type Inserter interface {
	Insert(ctx context.Context, s contact.Submission) error
}

// Backend is either Available or Unavailable. It is decided once at startup.
type Backend interface {
	backend()
}

// Available wraps a working persistence client.
type Available struct {
	Store Inserter
}

// Unavailable records why no persistence client could be built.
type Unavailable struct {
	Reason string
}

func (Available) backend()   {}
func (Unavailable) backend() {}

// NewBackend returns Available for a non-nil store and Unavailable otherwise.
func NewBackend(store Inserter, reason string) Backend {
	if store == nil {
		return Unavailable{Reason: reason}
	}
	return Available{Store: store}
}
