// Package contact holds the contact-form submission and the normalization and validation rules
// shared by the portfolio site and the notification relay.
package contact

// Field length limits, counted in characters.
const (
	NameMinLen    = 2
	NameMaxLen    = 80
	EmailMaxLen   = 254
	MessageMinLen = 10
	MessageMaxLen = 2000
)

// Submission is one contact-form entry.
type Submission struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// IsZero reports whether all three fields are empty.
func (s Submission) IsZero() bool {
	return s.Name == "" && s.Email == "" && s.Message == ""
}
