package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prostech/outbound-api/docs"
	"github.com/prostech/outbound-api/internal/cache"
	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/database"
	"github.com/prostech/outbound-api/internal/deliveryview"
	"github.com/prostech/outbound-api/internal/http/handler"
	"github.com/prostech/outbound-api/internal/http/middleware"
	"github.com/prostech/outbound-api/internal/http/router"
	"github.com/prostech/outbound-api/internal/jobs"
	"github.com/prostech/outbound-api/internal/logger"
	"github.com/prostech/outbound-api/internal/mail"
	"github.com/prostech/outbound-api/internal/metrics"
	"github.com/prostech/outbound-api/internal/normalize"
	"github.com/prostech/outbound-api/internal/query"
	"github.com/prostech/outbound-api/internal/render"
	"github.com/prostech/outbound-api/internal/repository"
	"github.com/prostech/outbound-api/internal/service"
	"github.com/prostech/outbound-api/internal/storage"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Outbound Logistics API
// @version 1.0
// @description Outbound delivery reporting, product gap analysis and delivery notification emails

// @contact.name Logistics Team

// @host localhost:8080
// @BasePath /

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load basic configuration first (for logging setup)
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	// Deployed environments serve the docs from whatever host the UI was loaded from
	if basicCfg.App.Environment == "development" {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	} else {
		docs.SwaggerInfo.Host = ""
	}

	// Load full configuration with secrets
	// In development: uses environment variables
	// In staging/production: fetches from Azure Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}
	loc := cfg.App.Location()

	// The delivery view is the only data source; the API cannot serve without it
	viewClient, err := deliveryview.NewClient(&cfg.DeliveryView, loc, log)
	if err != nil {
		return fmt.Errorf("failed to connect to delivery view: %w", err)
	}
	if viewClient == nil {
		return errors.New("delivery view connection is not configured")
	}
	defer func() {
		if err := viewClient.Close(); err != nil {
			log.Warn("Error closing delivery view connection", zap.Error(err))
		}
	}()

	rowCache, redisClient, err := cache.New(ctx, &cfg.Cache, log)
	if err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}
	if redisClient != nil {
		defer func() { _ = redisClient.Close() }()
	}

	// The notification log is optional; sends are still logged through zap
	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() { _ = database.Close(db) }()

	var logStore service.NotificationLogStore
	if db != nil {
		logStore = repository.NewNotificationLogRepository(db)
		log.Info("Notification log database connected", zap.String("host", cfg.Database.Host))
	} else {
		log.Info("Notification log database disabled")
	}

	archive, err := storage.NewArchive(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Attachment archive initialized", zap.String("mode", cfg.Storage.Mode), zap.Bool("enabled", archive != nil))

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return fmt.Errorf("failed to load email templates: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.NewMetrics(registry)

	// Initialize services
	builder := query.NewBuilder(cfg.DeliveryView.ViewName)
	normalizer := normalize.New(loc)
	deliveryService := service.NewDeliveryService(viewClient, builder, normalizer, rowCache, m, log)
	notificationService := service.NewNotificationService(
		deliveryService,
		viewClient,
		builder,
		cfg.DeliveryView.EmployeesTable,
		renderer,
		mail.New(cfg, log),
		archive,
		logStore,
		m,
		cfg.Notifications,
		loc,
		log,
	)

	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	healthHandler := handler.NewHealthHandler(viewClient, databaseCheck(db), log)
	deliveryHandler := handler.NewDeliveryHandler(deliveryService, log)
	notificationHandler := handler.NewNotificationHandler(notificationService, log)

	rt := router.NewRouter(
		cfg,
		log,
		rateLimiter,
		metrics.Handler(registry),
		healthHandler,
		deliveryHandler,
		notificationHandler,
	)

	// Background jobs
	var scheduler *jobs.Scheduler
	if cfg.Jobs.CacheRefreshEnabled {
		scheduler = jobs.NewScheduler(m, log)
		job := jobs.NewCacheRefreshJob(deliveryService, log)
		if err := scheduler.Add(cfg.Jobs.CacheRefreshCron, job, cfg.Jobs.CacheRefreshTimeoutDuration()); err != nil {
			log.Error("Failed to register cache refresh job", zap.Error(err))
		} else {
			scheduler.Start()
			log.Info("Scheduler started with cache refresh job",
				zap.String("cron_expr", cfg.Jobs.CacheRefreshCron),
				zap.Duration("timeout", cfg.Jobs.CacheRefreshTimeoutDuration()),
			)
		}
	} else {
		log.Info("Cache refresh job disabled")
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           rt.Setup(),
		ReadTimeout:       cfg.Server.ReadTimeoutDuration(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			return err
		}

		log.Info("Server stopped gracefully")
	}

	return nil
}

func databaseCheck(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		return database.HealthCheck(ctx, db)
	}
}
