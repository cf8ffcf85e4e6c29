// admin.go - contact inbox for the site owner
package main

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/andresaoe/portafolio/internal/config"
	"github.com/andresaoe/portafolio/internal/store"
)

const (
	adminCookie        = "admin_token"
	dashboardLimit     = 50
	exportLimit        = 1000
	adminLoginTemplate = "admin-login.html"
	adminDashTemplate  = "admin-dashboard.html"
)

type InboxStats struct {
	TotalMessages int64           `json:"total_messages"`
	Recent        []store.Message `json:"recent"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

type adminHandler struct {
	cfg    config.Admin
	store  store.Store
	logger *slog.Logger

	token string
	salt  string
}

func newAdminHandler(cfg config.Admin, st store.Store, log *slog.Logger) (*adminHandler, error) {
	token, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	salt, err := generateAdminToken()
	if err != nil {
		return nil, err
	}
	return &adminHandler{
		cfg:    cfg,
		store:  st,
		logger: log,
		token:  token,
		salt:   salt,
	}, nil
}

func generateAdminToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate admin token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// hashIP keeps client addresses out of the logs. Stable for the life of the process.
func (a *adminHandler) hashIP(ip string) string {
	sum := sha256.Sum256([]byte(ip + a.salt))
	return hex.EncodeToString(sum[:])[:16]
}

func secureEqual(got, want string) bool {
	g := sha256.Sum256([]byte(got))
	w := sha256.Sum256([]byte(want))
	return subtle.ConstantTimeCompare(g[:], w[:]) == 1
}

// passwordMatches accepts ADMIN_PASSWORD either as a bcrypt hash or as plain text.
func (a *adminHandler) passwordMatches(password string) bool {
	if isBcryptHash(a.cfg.Password) {
		return bcrypt.CompareHashAndPassword([]byte(a.cfg.Password), []byte(password)) == nil
	}
	return secureEqual(password, a.cfg.Password)
}

func isBcryptHash(s string) bool {
	for _, prefix := range []string{"$2a$", "$2b$", "$2y$"} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}
	return false
}

func (a *adminHandler) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(adminCookie)
		if err != nil || subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (a *adminHandler) stats(ctx context.Context) (*InboxStats, error) {
	total, err := a.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := a.store.Recent(ctx, dashboardLimit)
	if err != nil {
		return nil, err
	}
	return &InboxStats{
		TotalMessages: total,
		Recent:        recent,
		GeneratedAt:   time.Now().UTC(),
	}, nil
}

func (a *adminHandler) register(r *gin.Engine) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, adminLoginTemplate, gin.H{"title": "Acceso administrador"})
	})
	r.POST("/admin/login", a.handleLogin)

	adminGroup := r.Group("/admin", a.authMiddleware())

	adminGroup.POST("/logout", func(c *gin.Context) {
		c.SetCookie(adminCookie, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	adminGroup.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.stats(c.Request.Context())
		if err != nil {
			a.logger.ErrorContext(c.Request.Context(), "failed to load inbox", slog.Any("error", err))
			c.HTML(http.StatusInternalServerError, adminDashTemplate, gin.H{
				"error": "No se pudieron cargar los mensajes",
			})
			return
		}
		c.HTML(http.StatusOK, adminDashTemplate, gin.H{"stats": stats})
	})

	adminGroup.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load inbox"})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	adminGroup.DELETE("/messages/:id", a.handleDelete)

	// Inbox export (for backups)
	adminGroup.GET("/export/messages", func(c *gin.Context) {
		messages, err := a.store.Recent(c.Request.Context(), exportLimit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export messages"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=contact-messages.json")
		a.logger.InfoContext(c.Request.Context(), "contact messages exported",
			slog.String("client", a.hashIP(c.ClientIP())),
			slog.Int("count", len(messages)),
		)
		c.JSON(http.StatusOK, messages)
	})
}

func (a *adminHandler) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")
	client := a.hashIP(c.ClientIP())

	// Evaluate both comparisons so timing does not reveal which one failed.
	userOK := secureEqual(username, a.cfg.Username)
	passOK := a.passwordMatches(password)
	if !userOK || !passOK {
		a.logger.WarnContext(c.Request.Context(), "admin login failed", slog.String("client", client))
		c.HTML(http.StatusUnauthorized, adminLoginTemplate, gin.H{
			"title": "Acceso administrador",
			"error": "Usuario o contraseña incorrectos",
		})
		return
	}

	c.SetCookie(adminCookie, a.token, int(a.cfg.SessionTTL.Seconds()), "/admin", "", false, true)
	a.logger.InfoContext(c.Request.Context(), "admin login successful", slog.String("client", client))
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func (a *adminHandler) handleDelete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid message id"})
		return
	}

	err = a.store.Delete(c.Request.Context(), id)
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "message not found"})
		return
	case err != nil:
		a.logger.ErrorContext(c.Request.Context(), "failed to delete contact message",
			slog.Int64("id", id), slog.Any("error", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete message"})
		return
	}

	a.logger.InfoContext(c.Request.Context(), "contact message deleted",
		slog.Int64("id", id), slog.String("client", a.hashIP(c.ClientIP())))
	c.JSON(http.StatusOK, gin.H{"message": "message deleted"})
}
