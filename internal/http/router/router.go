package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	_ "github.com/prostech/outbound-api/docs"
	"github.com/prostech/outbound-api/internal/config"
	"github.com/prostech/outbound-api/internal/http/handler"
	"github.com/prostech/outbound-api/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type Router struct {
	cfg                 *config.Config
	logger              *zap.Logger
	rateLimiter         *middleware.RateLimiter
	metricsHandler      http.Handler
	healthHandler       *handler.HealthHandler
	deliveryHandler     *handler.DeliveryHandler
	notificationHandler *handler.NotificationHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	rateLimiter *middleware.RateLimiter,
	metricsHandler http.Handler,
	healthHandler *handler.HealthHandler,
	deliveryHandler *handler.DeliveryHandler,
	notificationHandler *handler.NotificationHandler,
) *Router {
	return &Router{
		cfg:                 cfg,
		logger:              logger,
		rateLimiter:         rateLimiter,
		metricsHandler:      metricsHandler,
		healthHandler:       healthHandler,
		deliveryHandler:     deliveryHandler,
		notificationHandler: notificationHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security, rt.logger))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Probes
	r.Get("/health", rt.healthHandler.Health)
	r.Get("/health/view", rt.healthHandler.View)
	r.Get("/health/ready", rt.healthHandler.Ready)

	if rt.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", rt.metricsHandler)
	}

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		if timeout := rt.cfg.Server.RequestTimeoutDuration(); timeout > 0 {
			r.Use(chimw.Timeout(timeout))
		}

		// Delivery reports
		r.Route("/deliveries", func(r chi.Router) {
			r.Get("/", rt.deliveryHandler.List)
			r.Get("/metrics", rt.deliveryHandler.Metrics)
			r.Get("/overdue", rt.deliveryHandler.Overdue)
			r.Get("/export.xlsx", rt.deliveryHandler.Workbook)
			r.Get("/pivot", rt.deliveryHandler.Pivot)
			r.Get("/pivot/export", rt.deliveryHandler.PivotExport)
			r.Get("/pivot/wide", rt.deliveryHandler.Wide)
			r.Get("/pivot/wide/export", rt.deliveryHandler.WideExport)
		})

		// Product analysis
		r.Route("/products", func(r chi.Router) {
			r.Get("/analysis", rt.deliveryHandler.ProductAnalysis)
			r.Get("/top", rt.deliveryHandler.TopProducts)
			r.Get("/export", rt.deliveryHandler.ProductsExport)
		})

		r.Get("/filter-options", rt.deliveryHandler.FilterOptions)
		r.Post("/cache/invalidate", rt.deliveryHandler.InvalidateCache)

		// Notification emails
		r.Route("/notifications", func(r chi.Router) {
			r.Get("/recipients", rt.notificationHandler.Recipients)
			r.Post("/preview", rt.notificationHandler.Preview)
			r.With(rt.rateLimiter.LimitSend).Post("/send", rt.notificationHandler.Send)
			r.Get("/log", rt.notificationHandler.Log)
		})
	})

	return r
}
