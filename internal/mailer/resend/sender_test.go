package resend_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresaoe/portafolio/internal/mailer"
	"github.com/andresaoe/portafolio/internal/mailer/resend"
)

func testEmail() *mailer.Email {
	return &mailer.Email{
		From:    "onboarding@resend.dev",
		To:      []string{"owner@example.com"},
		Subject: "Nuevo mensaje de contacto: Jo",
		Text:    "Nombre: Jo",
		HTML:    "<p>Nombre: Jo</p>",
		ReplyTo: "jo@example.com",
	}
}

func TestSender_PostsEmailToResend(t *testing.T) {
	t.Parallel()

	var got map[string]any
	var auth, path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		path = r.URL.Path
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"email_123"}`))
	}))
	t.Cleanup(srv.Close)

	sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	require.NoError(t, sender.Send(context.Background(), testEmail()))

	assert.Equal(t, "Bearer re_test", auth)
	assert.Equal(t, "/emails", path)
	assert.Equal(t, "onboarding@resend.dev", got["from"])
	assert.Equal(t, []any{"owner@example.com"}, got["to"])
	assert.Equal(t, "Nuevo mensaje de contacto: Jo", got["subject"])
	assert.Equal(t, "jo@example.com", got["reply_to"])
	assert.Equal(t, "<p>Nombre: Jo</p>", got["html"])
	assert.Equal(t, "Nombre: Jo", got["text"])
}

func TestSender_ProviderRejection(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"Invalid from field"}`))
	}))
	t.Cleanup(srv.Close)

	sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	require.Error(t, sender.Send(context.Background(), testEmail()))
}

func TestSender_ValidatesBeforeSending(t *testing.T) {
	t.Parallel()

	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	t.Cleanup(srv.Close)

	sender, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	email := testEmail()
	email.To = nil

	require.ErrorIs(t, sender.Send(context.Background(), email), mailer.ErrNoRecipient)
	require.False(t, called)
}

func TestNew_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := resend.New(resend.Config{APIKey: "re_test", BaseURL: "://bad"})
	require.Error(t, err)
}
