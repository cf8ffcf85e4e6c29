package relay

import (
	"fmt"
	"strings"

	"github.com/andresaoe/portafolio/internal/contact"
	"github.com/andresaoe/portafolio/internal/mailer"
)

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// EscapeHTML escapes & < > " and ' for interpolation into the HTML body.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// BuildEmail renders the notification for a validated submission. The visitor's address is
// the reply-to so the owner can answer straight from the inbox.
func BuildEmail(s contact.Submission, from, to string) *mailer.Email {
	text := fmt.Sprintf("Nombre: %s\nEmail: %s\n\nMensaje:\n%s\n", s.Name, s.Email, s.Message)
	html := fmt.Sprintf(
		`<p><strong>Nombre:</strong> %s</p><p><strong>Email:</strong> %s</p>`+
			`<p><strong>Mensaje:</strong></p><pre style="white-space:pre-wrap">%s</pre>`,
		EscapeHTML(s.Name), EscapeHTML(s.Email), EscapeHTML(s.Message),
	)

	return &mailer.Email{
		From:    from,
		To:      []string{to},
		Subject: "Nuevo mensaje de contacto: " + s.Name,
		Text:    text,
		HTML:    html,
		ReplyTo: s.Email,
	}
}
