// Package mailer defines the provider-agnostic email message and sender contract used by the
// contact relay. Provider adapters live in subpackages.
package mailer

import (
	"context"
	"errors"
)

var (
	// ErrNoRecipient indicates no recipient was specified.
	ErrNoRecipient = errors.New("email must have at least one recipient")

	// ErrNoSubject indicates no subject was provided.
	ErrNoSubject = errors.New("email must have a subject")

	// ErrNoContent indicates neither HTML nor text content was provided.
	ErrNoContent = errors.New("email must have content")

	// ErrNoSender indicates the message has no sender address.
	ErrNoSender = errors.New("email must have a sender")
)

// Sender delivers a fully-prepared Email.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}

// SenderFunc adapts a function to Sender.
type SenderFunc func(ctx context.Context, email *Email) error

func (f SenderFunc) Send(ctx context.Context, email *Email) error {
	return f(ctx, email)
}

// Email represents a message ready for sending.
type Email struct {
	From    string   // Sender address, "Name <addr>" allowed
	To      []string // Recipients (at least one required)
	Subject string
	Text    string // Plain text body
	HTML    string // HTML body
	ReplyTo string
}

// Validate checks the fields every provider requires.
func (e *Email) Validate() error {
	switch {
	case e.From == "":
		return ErrNoSender
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.Subject == "":
		return ErrNoSubject
	case e.HTML == "" && e.Text == "":
		return ErrNoContent
	}
	return nil
}
