package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/andresaoe/portafolio/internal/config"
	"github.com/andresaoe/portafolio/internal/contact"
	"github.com/andresaoe/portafolio/internal/logger"
	"github.com/andresaoe/portafolio/internal/store"
)

var adminCfg = config.Admin{Username: "andres", Password: "s3cret", SessionTTL: time.Hour}

func setupAdmin(t *testing.T) (*gin.Engine, *store.SQLite) {
	t.Helper()

	st := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, st.Insert(ctx, contact.Submission{Name: "Jo", Email: "jo@example.com", Message: "Primer mensaje de prueba"}))
	require.NoError(t, st.Insert(ctx, contact.Submission{Name: "Ana", Email: "ana@example.com", Message: "Segundo <mensaje> de prueba"}))

	admin, err := newAdminHandler(adminCfg, st, logger.Discard())
	require.NoError(t, err)

	s := newTestSite(t, st)
	s.admin = admin
	return mustRouter(t, s), st
}

func login(t *testing.T, r http.Handler, user, pass string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {user}, "password": {pass}}
	req := httptest.NewRequest(http.MethodPost, "/admin/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(t *testing.T, r http.Handler) *http.Cookie {
	t.Helper()
	w := login(t, r, adminCfg.Username, adminCfg.Password)
	require.Equal(t, http.StatusFound, w.Code)
	for _, c := range w.Result().Cookies() {
		if c.Name == adminCookie {
			return c
		}
	}
	t.Fatal("admin cookie not set")
	return nil
}

func authed(r http.Handler, cookie *http.Cookie, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdmin_LoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	r, _ := setupAdmin(t)

	for _, creds := range [][2]string{{"andres", "wrong"}, {"admin", "s3cret"}, {"", ""}} {
		w := login(t, r, creds[0], creds[1])
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Usuario o contraseña incorrectos")
		assert.Empty(t, w.Result().Cookies())
	}
}

func TestAdmin_LoginPage(t *testing.T) {
	t.Parallel()

	r, _ := setupAdmin(t)

	w := getPath(r, "/admin/login")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `action="/admin/login"`)
}

func TestAdmin_DashboardRequiresSession(t *testing.T) {
	t.Parallel()

	r, _ := setupAdmin(t)

	w := authed(r, nil, http.MethodGet, "/admin/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))

	forged := &http.Cookie{Name: adminCookie, Value: "forged"}
	w = authed(r, forged, http.MethodGet, "/admin/dashboard")
	assert.Equal(t, http.StatusFound, w.Code)
}

func TestAdmin_Dashboard(t *testing.T) {
	t.Parallel()

	r, _ := setupAdmin(t)
	cookie := sessionCookie(t, r)
	assert.Equal(t, "/admin", cookie.Path)
	assert.True(t, cookie.HttpOnly)

	w := authed(r, cookie, http.MethodGet, "/admin/dashboard")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "2 mensajes en total")
	assert.Contains(t, body, "jo@example.com")
	assert.Contains(t, body, "Segundo &lt;mensaje&gt; de prueba")
}

func TestAdmin_StatsAndExport(t *testing.T) {
	t.Parallel()

	r, _ := setupAdmin(t)
	cookie := sessionCookie(t, r)

	w := authed(r, cookie, http.MethodGet, "/admin/api/stats")
	require.Equal(t, http.StatusOK, w.Code)
	var stats InboxStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.TotalMessages)
	require.Len(t, stats.Recent, 2)
	assert.Equal(t, "Ana", stats.Recent[0].Name)

	w = authed(r, cookie, http.MethodGet, "/admin/export/messages")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "attachment; filename=contact-messages.json", w.Header().Get("Content-Disposition"))
	var exported []store.Message
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &exported))
	assert.Len(t, exported, 2)
}

func TestAdmin_DeleteMessage(t *testing.T) {
	t.Parallel()

	r, st := setupAdmin(t)
	cookie := sessionCookie(t, r)

	msgs, err := st.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.NotEmpty(t, msgs)
	id := msgs[0].ID

	assert.Equal(t, http.StatusBadRequest, authed(r, cookie, http.MethodDelete, "/admin/messages/abc").Code)
	assert.Equal(t, http.StatusNotFound, authed(r, cookie, http.MethodDelete, "/admin/messages/999999").Code)

	w := authed(r, cookie, http.MethodDelete, "/admin/messages/"+jsonNumber(id))
	require.Equal(t, http.StatusOK, w.Code)

	n, err := st.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	assert.Equal(t, http.StatusFound, authed(r, nil, http.MethodDelete, "/admin/messages/"+jsonNumber(id)).Code)
}

func TestAdmin_Logout(t *testing.T) {
	t.Parallel()

	r, _ := setupAdmin(t)
	cookie := sessionCookie(t, r)

	w := authed(r, cookie, http.MethodPost, "/admin/logout")
	assert.Equal(t, http.StatusFound, w.Code)
	cleared := w.Result().Cookies()
	require.NotEmpty(t, cleared)
	assert.Less(t, cleared[0].MaxAge, 0)
}

func TestAdmin_HashIPIsStable(t *testing.T) {
	t.Parallel()

	a, err := newAdminHandler(adminCfg, nil, logger.Discard())
	require.NoError(t, err)

	h := a.hashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, a.hashIP("203.0.113.7"))
	assert.NotEqual(t, h, a.hashIP("203.0.113.8"))
}

func TestAdmin_PasswordAsBcryptHash(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := adminCfg
	cfg.Password = string(hash)
	a, err := newAdminHandler(cfg, nil, logger.Discard())
	require.NoError(t, err)

	assert.True(t, a.passwordMatches("s3cret"))
	assert.False(t, a.passwordMatches("wrong"))
	assert.False(t, a.passwordMatches(string(hash)))
}

func TestAdmin_NotMountedWithoutHandler(t *testing.T) {
	t.Parallel()

	r := mustRouter(t, newTestSite(t, openTestStore(t)))
	assert.Equal(t, http.StatusNotFound, getPath(r, "/admin/login").Code)
}

func jsonNumber(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
