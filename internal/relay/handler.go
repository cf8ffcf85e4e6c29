// Package relay is the notification relay: a stateless endpoint that re-validates a contact
// submission and forwards it to the email provider.
package relay

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/andresaoe/portafolio/internal/contact"
	"github.com/andresaoe/portafolio/internal/mailer"
)

// Error strings of the relay contract.
const (
	ErrInvalidJSON       = "Invalid JSON"
	ErrMissingFields     = "Missing fields"
	ErrInvalidName       = "Invalid name"
	ErrInvalidEmail      = "Invalid email"
	ErrInvalidMessage    = "Invalid message"
	ErrOriginNotAllowed  = "Origin not allowed"
	ErrMethodNotAllowed  = "Method not allowed"
	ErrMissingServerConf = "Missing server configuration"
	ErrEmailProvider     = "Email provider error"
)

const (
	allowHeaders = "authorization, x-client-info, apikey, content-type"
	allowMethods = "POST, OPTIONS"
	contentType  = "application/json; charset=utf-8"
)

// Config is the relay's deployment configuration.
type Config struct {
	// ProviderKey is the email provider API key. Empty means not configured.
	ProviderKey string
	// ToEmail receives the notifications. Empty means not configured.
	ToEmail   string
	FromEmail string
	// AllowedOrigins restricts browser callers when non-empty.
	AllowedOrigins []string
}

// Response is the JSON body of every relay answer.
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Handler serves the relay endpoint.
type Handler struct {
	cfg    Config
	sender mailer.Sender
	logger *slog.Logger
}

func NewHandler(cfg Config, sender mailer.Sender, logger *slog.Logger) *Handler {
	return &Handler{
		cfg:    cfg,
		sender: sender,
		logger: logger,
	}
}

// RegisterRoutes mounts the handler for every method; method gating happens inside so that
// rejected methods still get CORS headers and a JSON body.
func (h *Handler) RegisterRoutes(r gin.IRoutes, paths ...string) {
	for _, p := range paths {
		r.Any(p, h.Handle)
	}
}

func (h *Handler) Handle(c *gin.Context) {
	origin := c.GetHeader("Origin")
	if origin == "" {
		origin = "*"
	}
	c.Header("Access-Control-Allow-Origin", origin)
	c.Header("Access-Control-Allow-Headers", allowHeaders)
	c.Header("Access-Control-Allow-Methods", allowMethods)
	c.Header("Content-Type", contentType)

	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		h.reject(c, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
		return
	}

	body, err := parseBody(c)
	if err != nil {
		h.reject(c, http.StatusBadRequest, ErrInvalidJSON)
		return
	}

	submission, err := contact.Check(submissionFrom(body))
	if err != nil {
		h.reject(c, http.StatusBadRequest, validationError(err))
		return
	}

	if !h.originAllowed(origin) {
		c.Header("Access-Control-Allow-Origin", h.cfg.AllowedOrigins[0])
		h.logger.WarnContext(c.Request.Context(), "relay origin rejected", slog.String("origin", origin))
		h.reject(c, http.StatusForbidden, ErrOriginNotAllowed)
		return
	}

	if h.cfg.ProviderKey == "" || h.cfg.ToEmail == "" {
		h.logger.ErrorContext(c.Request.Context(), "relay is missing provider key or destination address")
		h.reject(c, http.StatusInternalServerError, ErrMissingServerConf)
		return
	}

	email := BuildEmail(submission, h.cfg.FromEmail, h.cfg.ToEmail)
	if err := h.sender.Send(c.Request.Context(), email); err != nil {
		h.logger.ErrorContext(c.Request.Context(), "email provider rejected contact notification", slog.Any("error", err))
		h.reject(c, http.StatusBadGateway, ErrEmailProvider)
		return
	}

	h.logger.InfoContext(c.Request.Context(), "contact notification sent", slog.String("origin", origin))
	c.JSON(http.StatusOK, Response{OK: true})
}

func (h *Handler) reject(c *gin.Context, status int, msg string) {
	c.JSON(status, Response{OK: false, Error: msg})
}

func (h *Handler) originAllowed(origin string) bool {
	if len(h.cfg.AllowedOrigins) == 0 || origin == "*" {
		return true
	}
	return slices.Contains(h.cfg.AllowedOrigins, origin)
}

// parseBody decodes the whole request body as one JSON value. Trailing data is malformed.
func parseBody(c *gin.Context) (any, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}

// submissionFrom reads string fields from an untrusted JSON value; anything else is empty.
func submissionFrom(body any) contact.Submission {
	record, _ := body.(map[string]any)
	str := func(key string) string {
		s, _ := record[key].(string)
		return s
	}
	return contact.Submission{
		Name:    str("name"),
		Email:   str("email"),
		Message: str("message"),
	}
}

func validationError(err error) string {
	var verr *contact.ValidationError
	if !errors.As(err, &verr) {
		return ErrMissingFields
	}
	switch verr.Field {
	case "name":
		return ErrInvalidName
	case "email":
		return ErrInvalidEmail
	case "message":
		return ErrInvalidMessage
	}
	return ErrMissingFields
}
