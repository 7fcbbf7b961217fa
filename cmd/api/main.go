package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/laxportraits/studio-leads/internal/api/router"
	"github.com/laxportraits/studio-leads/internal/catalog"
	appconfig "github.com/laxportraits/studio-leads/internal/config"
	"github.com/laxportraits/studio-leads/internal/leads"
	"github.com/laxportraits/studio-leads/internal/notify"
	"github.com/laxportraits/studio-leads/internal/observability/metrics"
	"github.com/laxportraits/studio-leads/internal/sheets"
	"github.com/laxportraits/studio-leads/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting studio-leads API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	if err := cfg.Validate(); err != nil {
		// The catalog routes keep working without a sink; intake answers
		// every request with a 500 until the credentials arrive.
		logger.Error("incomplete configuration, lead intake will fail closed", "error", err)
	}

	// Lead sink
	var sink leads.Appender
	appender, err := sheets.New(context.Background(), cfg.GoogleServiceAccount, cfg.GoogleSheetID, cfg.SheetAppendRange, logger)
	if err != nil {
		logger.Error("sheets sink unavailable", "error", err)
	} else {
		sink = appender
	}

	// Metrics
	leadMetrics := metrics.NewLeadMetrics(nil)

	// Optional studio notification email
	var notifier leads.Notifier
	if cfg.NotifyEmail != "" {
		sender := notify.NewSendGridSender(notify.SendGridConfig{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.SendGridFromEmail,
			FromName:  cfg.SendGridFromName,
		}, logger)
		if sender != nil {
			notifier = notify.NewService(sender, []string{cfg.NotifyEmail}, logger)
		} else {
			logger.Warn("NOTIFY_EMAIL set but sendgrid not configured, notifications disabled")
		}
	}

	leadsHandler := leads.NewHandler(sink, notifier, leadMetrics, logger)
	leadsHandler.SetSource(cfg.LeadSource)
	catalogHandler := catalog.NewHandler(logger)

	r := router.New(&router.Config{
		Logger:             logger,
		LeadsHandler:       leadsHandler,
		CatalogHandler:     catalogHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimitPerSecond: cfg.RateLimitPerSecond,
		RateLimitBurst:     cfg.RateLimitBurst,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
