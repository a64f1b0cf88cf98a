package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/avtostrahovanie/landing/internal/cache"
	"github.com/avtostrahovanie/landing/internal/config"
	"github.com/avtostrahovanie/landing/internal/content"
	"github.com/avtostrahovanie/landing/internal/handler"
	"github.com/avtostrahovanie/landing/internal/metrics"
	"github.com/avtostrahovanie/landing/internal/middleware"
	"github.com/avtostrahovanie/landing/internal/service"
	"github.com/avtostrahovanie/landing/internal/view"
)

// metricsRecorder is a Recorder that can also serve its own exposition.
type metricsRecorder interface {
	metrics.Recorder
	Handler() http.Handler
}

// deps holds everything the router wires together.
type deps struct {
	cfg      *config.Config
	logger   *slog.Logger
	page     *content.Page
	renderer *view.Renderer
	recorder metricsRecorder
	cache    *cache.Cache // nil when Redis is not configured
}

// setupRouter configures the chi router with all routes and middleware.
func setupRouter(d deps) *chi.Mux {
	quoteService := service.NewQuoteService(d.logger, d.recorder)
	contactService := service.NewContactService(d.logger, d.recorder)

	h := handler.New()
	pageHandler := handler.NewPageHandler(d.renderer, quoteService, contactService, d.recorder, d.logger)
	quoteHandler := handler.NewQuoteHandler(quoteService, d.logger)
	contactHandler := handler.NewContactHandler(contactService, d.logger)
	contentHandler := handler.NewContentHandler(d.page)

	// A nil *cache.Cache must not become a non-nil interface.
	var readiness handler.HealthChecker
	if d.cache != nil {
		readiness = d.cache
	}
	healthHandler := handler.NewHealthHandler(readiness)

	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Tracing(nil, nil))
	r.Use(middleware.Logger(d.logger, d.recorder))
	r.Use(middleware.Recoverer(d.logger))
	r.Use(middleware.Security(middleware.SecurityConfig{IsDevelopment: d.cfg.IsDevelopment()}))
	r.Use(middleware.MaxBodySize(d.cfg.MaxRequestBodySize))

	// Operational endpoints
	r.Get("/healthz", healthHandler.Healthz)
	r.Get("/readyz", healthHandler.Readyz)
	r.Method(http.MethodGet, "/metrics", d.recorder.Handler())

	rateLimitCfg := middleware.RateLimitConfig{
		Logger:  d.logger,
		Cache:   d.cache,
		Enabled: d.cfg.RateLimitEnabled,
		RPS:     d.cfg.RateLimitRPS,
		Burst:   d.cfg.RateLimitBurst,
	}

	// Landing page
	r.Get("/", pageHandler.Index)
	r.With(middleware.RateLimitIP(rateLimitCfg, "contact")).Post("/contact", pageHandler.Contact)
	r.Handle("/static/*", d.renderer.Static())

	// JSON API
	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = d.cfg.GetCORSAllowedOrigins()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.CORS(corsCfg))

		r.Get("/content", contentHandler.Get)
		r.With(middleware.RateLimitIP(rateLimitCfg, "quotes")).Post("/quotes", quoteHandler.Create)
		r.With(middleware.RateLimitIP(rateLimitCfg, "contact")).Post("/contact", contactHandler.Submit)
	})

	// 404 and 405 handlers
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	return r
}
