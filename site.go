package main

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/andresaoe/portafolio/internal/contact"
	"github.com/andresaoe/portafolio/internal/middleware"
	"github.com/andresaoe/portafolio/internal/profile"
	"github.com/andresaoe/portafolio/internal/store"
	"github.com/andresaoe/portafolio/internal/submit"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

const msgRateLimited = "Has enviado varios mensajes seguidos. Espera un momento e inténtalo de nuevo."

// contactView is the data of the contact.html fragment.
type contactView struct {
	Fields    contact.Submission
	Status    submit.Status
	CanSubmit bool
	Fallback  bool
	LinkedIn  string
	Limits    contactLimits
}

type contactLimits struct {
	NameMin, NameMax, EmailMax, MessageMin, MessageMax int
}

var limits = contactLimits{
	NameMin:    contact.NameMinLen,
	NameMax:    contact.NameMaxLen,
	EmailMax:   contact.EmailMaxLen,
	MessageMin: contact.MessageMinLen,
	MessageMax: contact.MessageMaxLen,
}

type site struct {
	profile   profile.Profile
	pipeline  *submit.Pipeline
	store     store.Store
	admin     *adminHandler
	rateLimit middleware.RateLimitConfig
	logger    *slog.Logger
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(template.FuncMap{
		"badgeClass": badgeClass,
	}).ParseFS(templatesFS, "templates/*.html")
}

func badgeClass(f profile.Frame) string {
	switch f {
	case profile.FrameGold:
		return "badge badge-gold"
	case profile.FramePurple:
		return "badge badge-purple"
	case profile.FrameBlue:
		return "badge badge-blue"
	}
	return "badge"
}

func (s *site) router() (*gin.Engine, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		otelgin.Middleware("portafolio-site"),
		middleware.RequestID(),
		middleware.Logger(s.logger),
	)
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))

	r.GET("/", s.handleIndex)
	r.GET("/contact-form", s.handleContactForm)
	r.POST("/contact", middleware.RateLimit(s.rateLimit, s.handleRateLimited), s.handleContact)
	r.GET("/healthz", s.handleHealth)

	if s.admin != nil {
		s.admin.register(r)
	}
	return r, nil
}

func (s *site) linkedIn() string {
	href, _ := s.profile.Link("LinkedIn")
	return href
}

func (s *site) view(form *submit.Form) contactView {
	status := form.Status()
	return contactView{
		Fields:    form.Fields(),
		Status:    status,
		CanSubmit: form.CanSubmit(),
		Fallback:  status.IsSuccess() && status.Message == submit.MsgSentFallback,
		LinkedIn:  s.linkedIn(),
		Limits:    limits,
	}
}

func (s *site) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"profile":  s.profile,
		"sections": profile.Sections(),
		"contact":  s.view(submit.NewForm(s.pipeline)),
	})
}

// HTMX contact form endpoint, returns just the form HTML
func (s *site) handleContactForm(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", s.view(submit.NewForm(s.pipeline)))
}

func (s *site) handleContact(c *gin.Context) {
	form := submit.NewForm(s.pipeline)
	form.SetName(c.PostForm("name"))
	form.SetEmail(c.PostForm("email"))
	form.SetMessage(c.PostForm("message"))

	out, err := form.Submit(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
	}
	if out.Persist.OK() && out.Status.IsSuccess() {
		s.logger.InfoContext(c.Request.Context(), "contact message received",
			slog.Bool("notified", out.Notify.Delivered()),
		)
	}

	// HTMX only swaps 2xx responses, so failures are rendered with 200 as well.
	c.HTML(http.StatusOK, "contact.html", s.view(form))
}

func (s *site) handleRateLimited(c *gin.Context) {
	form := submit.NewForm(s.pipeline)
	form.SetName(c.PostForm("name"))
	form.SetEmail(c.PostForm("email"))
	form.SetMessage(c.PostForm("message"))

	v := s.view(form)
	v.Status = submit.Status{State: submit.StateError, Message: msgRateLimited}
	c.HTML(http.StatusOK, "contact.html", v)
}

func (s *site) handleHealth(c *gin.Context) {
	if s.store == nil {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "unavailable"})
		return
	}
	if err := s.store.Ping(c.Request.Context()); err != nil {
		s.logger.ErrorContext(c.Request.Context(), "store healthcheck failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "unreachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "store": "ok"})
}
