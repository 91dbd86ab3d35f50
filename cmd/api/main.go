package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-contact-api/config"
	_ "portfolio-contact-api/docs" // Important for Swagger
	v1 "portfolio-contact-api/internal/delivery/http/v1"
	"portfolio-contact-api/internal/usecase"
	"portfolio-contact-api/pkg/logger"
	"portfolio-contact-api/pkg/metrics"
	"portfolio-contact-api/pkg/validation"
	"portfolio-contact-api/pkg/webhook"

	"github.com/prometheus/client_golang/prometheus"
)

// @title           Portfolio Contact API
// @version         1.0
// @description     Contact form endpoint for the portfolio site.
// @host            localhost:8080
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	appLog := logger.Init(cfg.LogLevel)
	appLog.Info("Starting portfolio contact API", "port", cfg.Port)

	// 3. Setup Metrics
	var gatherer prometheus.Gatherer
	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(prometheus.DefaultRegisterer)
		gatherer = prometheus.DefaultGatherer
	}

	// 4. Setup Webhook Client
	webhookClient := webhook.NewClient(cfg.ContactWebhookURL, &http.Client{
		Timeout: cfg.ContactWebhookTimeout,
	})
	if !webhookClient.IsConfigured() {
		appLog.Warn("CONTACT_WEBHOOK_URL not configured - contact submissions will only be logged")
	}

	// 5. Setup UseCases
	contactUC := usecase.NewContactUsecase(
		usecase.NewContactValidator(validation.New(), time.Now),
		usecase.NewContactDispatcher(webhookClient, appLog, m),
		m,
	)
	healthUC := usecase.NewHealthUsecase(cfg.WebhookConfigured())

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		HealthUC:  healthUC,
		Logger:    appLog,
		Metrics:   gatherer,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Error("Server forced to shutdown", "error", err)
	}

	appLog.Info("Server exiting")
}
