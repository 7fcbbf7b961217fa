// Package router wires the HTTP surface of the lead-capture service.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/laxportraits/studio-leads/internal/catalog"
	httpmiddleware "github.com/laxportraits/studio-leads/internal/http/middleware"
	"github.com/laxportraits/studio-leads/internal/leads"
	"github.com/laxportraits/studio-leads/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	CatalogHandler     *catalog.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Per-IP limit on the intake route. Zero disables the limiter.
	RateLimitPerSecond float64
	RateLimitBurst     int
}

// New creates a Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.CatalogHandler != nil {
			api.Get("/services", cfg.CatalogHandler.ListServices)
			api.Get("/locations", cfg.CatalogHandler.ListLocations)
		}
		if cfg.LeadsHandler != nil {
			intake := api.With()
			if cfg.RateLimitPerSecond > 0 {
				intake = api.With(httpmiddleware.RateLimit(cfg.RateLimitPerSecond, cfg.RateLimitBurst))
			}
			// HandleFunc, not Post: the handler owns method rejection so it
			// can answer 405 with its own Allow header and JSON body.
			intake.HandleFunc("/create-lead", cfg.LeadsHandler.CreateLead)
		}
	})

	return r
}
