package notify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andresaoe/portafolio/internal/contact"
	"github.com/andresaoe/portafolio/internal/notify"
)

var sub = contact.Submission{Name: "Jo", Email: "jo@example.com", Message: "This is a long enough message."}

func TestClient_Notify(t *testing.T) {
	t.Parallel()

	var got contact.Submission
	var auth, apikey, method string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		auth = r.Header.Get("Authorization")
		apikey = r.Header.Get("apikey")
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	client, err := notify.New(notify.Config{URL: srv.URL, APIKey: "anon-key"}, srv.Client())
	require.NoError(t, err)

	require.NoError(t, client.Notify(context.Background(), sub))
	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "Bearer anon-key", auth)
	assert.Equal(t, "anon-key", apikey)
	assert.Equal(t, sub, got)
}

func TestClient_NoKeyOmitsAuthHeaders(t *testing.T) {
	t.Parallel()

	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	t.Cleanup(srv.Close)

	client, err := notify.New(notify.Config{URL: srv.URL}, nil)
	require.NoError(t, err)

	require.NoError(t, client.Notify(context.Background(), sub))
	assert.Empty(t, auth)
}

func TestClient_RelayError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   notify.RelayError
	}{
		{"provider failure", http.StatusBadGateway, `{"ok":false,"error":"Email provider error"}`, notify.RelayError{StatusCode: 502, Message: "Email provider error"}},
		{"non json failure", http.StatusInternalServerError, "upstream timeout", notify.RelayError{StatusCode: 500}},
		{"ok false with 200", http.StatusOK, `{"ok":false,"error":"odd"}`, notify.RelayError{StatusCode: 200, Message: "odd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			client, err := notify.New(notify.Config{URL: srv.URL}, srv.Client())
			require.NoError(t, err)

			err = client.Notify(context.Background(), sub)
			var rerr *notify.RelayError
			require.True(t, errors.As(err, &rerr))
			assert.Equal(t, tt.want, *rerr)
		})
	}
}

func TestClient_Unreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := notify.New(notify.Config{URL: url}, nil)
	require.NoError(t, err)

	require.ErrorIs(t, client.Notify(context.Background(), sub), notify.ErrRequestFailed)
}

func TestNew_RequiresURL(t *testing.T) {
	t.Parallel()

	_, err := notify.New(notify.Config{}, nil)
	require.ErrorIs(t, err, notify.ErrNoURL)
}
