package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/andresaoe/portafolio/internal/config"
	"github.com/andresaoe/portafolio/internal/logger"
	"github.com/andresaoe/portafolio/internal/mailer/resend"
	"github.com/andresaoe/portafolio/internal/middleware"
	"github.com/andresaoe/portafolio/internal/relay"
	"github.com/andresaoe/portafolio/internal/telemetry"
)

// relayPaths are the mount points of the relay handler. The second one keeps the function
// name the site calls in hosted deployments.
var relayPaths = []string{"/", "/send-contact-email"}

func newRelayCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "relay",
		Short: "Run the contact relay that emails new messages to the owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadRelay()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			return runRelay(cmd.Context(), cfg)
		},
	}
	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port, overrides RELAY_PORT")
	return cmd
}

func runRelay(ctx context.Context, cfg config.Relay) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log, logCloser, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	defer logCloser.Close()
	setGinMode(cfg.Logger)

	tracing, err := telemetry.Init(ctx, "portafolio-relay", cfg.Telemetry, log)
	if err != nil {
		return err
	}

	sender, err := resend.New(cfg.Resend)
	if err != nil {
		return err
	}

	hcfg := cfg.Handler()
	if hcfg.ProviderKey == "" || hcfg.ToEmail == "" {
		log.Warn("RESEND_API_KEY or CONTACT_TO_EMAIL is not set, the relay will answer 500")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           relayRouter(relay.NewHandler(hcfg, sender, log), log),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return runServer(ctx, srv, log, tracing.Shutdown)
}

func relayRouter(h *relay.Handler, log *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		otelgin.Middleware("portafolio-relay"),
		middleware.RequestID(),
		middleware.Logger(log),
	)
	h.RegisterRoutes(r, relayPaths...)
	return r
}
