// Package notify calls the contact relay after a submission has been stored.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/andresaoe/portafolio/internal/contact"
)

var (
	ErrNoURL          = errors.New("notify: relay url is not configured")
	ErrEncodeRequest  = errors.New("notify: failed to encode request")
	ErrCreateRequest  = errors.New("notify: failed to create request")
	ErrRequestFailed  = errors.New("notify: request failed")
	ErrDecodeResponse = errors.New("notify: failed to decode response")
)

// Config for the relay endpoint.
type Config struct {
	URL    string `env:"CONTACT_RELAY_URL"`
	APIKey string `env:"CONTACT_RELAY_API_KEY"`
}

func (c Config) Configured() bool {
	return c.URL != ""
}

// RelayError is a non-success answer from the relay.
type RelayError struct {
	StatusCode int
	Message    string
}

func (e *RelayError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("notify: relay responded %d", e.StatusCode)
	}
	return fmt.Sprintf("notify: relay responded %d: %s", e.StatusCode, e.Message)
}

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type Client struct {
	cfg  Config
	http *http.Client
}

// New returns a client for cfg. A nil httpClient uses http.DefaultClient, so the relay call
// has no timeout beyond the transport defaults.
func New(cfg Config, httpClient *http.Client) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNoURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{cfg: cfg, http: httpClient}, nil
}

// Notify posts the submission to the relay.
func (c *Client) Notify(ctx context.Context, s contact.Submission) error {
	body, err := json.Marshal(s)
	if err != nil {
		return errors.Join(ErrEncodeRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return errors.Join(ErrCreateRequest, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
		req.Header.Set("apikey", c.cfg.APIKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return errors.Join(ErrDecodeResponse, err)
	}

	var out response
	decodeErr := json.Unmarshal(raw, &out)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RelayError{StatusCode: resp.StatusCode, Message: out.Error}
	}
	if decodeErr != nil {
		return errors.Join(ErrDecodeResponse, decodeErr)
	}
	if !out.OK {
		return &RelayError{StatusCode: resp.StatusCode, Message: out.Error}
	}
	return nil
}
