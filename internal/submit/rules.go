package submit

import (
	"errors"
	"strings"

	"github.com/andresaoe/portafolio/internal/store"
)

// ErrorRule maps provider error text containing Substring to a friendly Message.
type ErrorRule struct {
	Substring string
	Message   string
}

// ErrorRules is checked in order; the first matching rule wins.
type ErrorRules []ErrorRule

// DefaultErrorRules covers the failures a misconfigured contact_messages table produces.
func DefaultErrorRules() ErrorRules {
	return ErrorRules{
		{Substring: `relation "contact_messages" does not exist`, Message: MsgTableMissing},
		{Substring: "no such table: contact_messages", Message: MsgTableMissing},
		{Substring: "contact_messages_email_format", Message: MsgEmailRejected},
		{Substring: "row-level security", Message: MsgPolicyBlocked},
	}
}

// Friendly returns the message of the first rule matching err, or the raw provider
// message when none does.
func (r ErrorRules) Friendly(err error) string {
	if err == nil {
		return ""
	}

	raw := providerMessage(err)
	for _, rule := range r {
		if rule.Substring != "" && strings.Contains(raw, rule.Substring) {
			return rule.Message
		}
	}
	if raw == "" {
		return MsgPersistFailed
	}
	return raw
}

func providerMessage(err error) string {
	var ierr *store.InsertError
	if errors.As(err, &ierr) {
		return ierr.Message
	}
	return err.Error()
}
