// Package resend implements mailer.Sender on top of the Resend API.
package resend

import (
	"context"
	"fmt"
	"net/url"

	"github.com/resend/resend-go/v3"

	"github.com/andresaoe/portafolio/internal/mailer"
)

// Config holds Resend email provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	APIKey string `env:"RESEND_API_KEY"`
	// BaseURL overrides the API endpoint, e.g. for a local mock.
	BaseURL string `env:"RESEND_BASE_URL"`
}

// Sender implements mailer.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a Resend sender. An invalid BaseURL is reported as an error.
func New(cfg Config) (*Sender, error) {
	client := resend.NewClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("resend: invalid base url: %w", err)
		}
		client.BaseURL = u
	}
	return &Sender{client: client}, nil
}

// Send implements mailer.Sender. Any non-2xx answer from Resend is returned as an error.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	if err := email.Validate(); err != nil {
		return fmt.Errorf("resend: %w", err)
	}

	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
		Text:    email.Text,
		ReplyTo: email.ReplyTo,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}
