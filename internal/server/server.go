// Package server provides the HTTP server and routing for the real estate calculators.
package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"

	"github.com/sameer10342432/realestate-tools/internal/di"
	comparisonhandlers "github.com/sameer10342432/realestate-tools/internal/modules/comparison/handlers"
	formulashandlers "github.com/sameer10342432/realestate-tools/internal/modules/formulas/handlers"
	insurancehandlers "github.com/sameer10342432/realestate-tools/internal/modules/insurance/handlers"
	markethandlers "github.com/sameer10342432/realestate-tools/internal/modules/market/handlers"
	movinghandlers "github.com/sameer10342432/realestate-tools/internal/modules/moving/handlers"
	projectionhandlers "github.com/sameer10342432/realestate-tools/internal/modules/projection/handlers"
	renovationhandlers "github.com/sameer10342432/realestate-tools/internal/modules/renovation/handlers"
	reportshandlers "github.com/sameer10342432/realestate-tools/internal/modules/reports/handlers"
)

// requestTimeout bounds every request except websocket upgrades
const requestTimeout = 60 * time.Second

// Config holds server configuration
type Config struct {
	Log            zerolog.Logger
	Port           int
	DevMode        bool
	AllowedOrigins []string      // CORS origins, also trusted by the live channel; empty allows any for CORS only
	Container      *di.Container // DI container with all services
	Jobs           *di.JobInstances
}

// Server represents the HTTP server
type Server struct {
	router         *chi.Mux
	server         *http.Server
	log            zerolog.Logger
	port           int
	container      *di.Container
	origins        []string
	systemHandlers *SystemHandlers
}

// New creates a new HTTP server
func New(cfg Config) *Server {
	jobs := cfg.Jobs
	if jobs == nil {
		jobs = &di.JobInstances{}
	}

	s := &Server{
		router:    chi.NewRouter(),
		log:       cfg.Log.With().Str("component", "server").Logger(),
		port:      cfg.Port,
		container: cfg.Container,
		origins:   cfg.AllowedOrigins,
		systemHandlers: NewSystemHandlers(
			cfg.Log,
			cfg.Container.Databases(),
			cfg.Container.Scheduler,
			jobs.All(),
		),
	}

	s.setupMiddleware(cfg.DevMode, cfg.AllowedOrigins)
	s.setupRoutes()

	// No read/write timeouts: they would carry over to hijacked websocket
	// connections. Request duration is bounded by the timeout middleware.
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return s
}

func (s *Server) setupMiddleware(devMode bool, origins []string) {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// Recovery from panics
	s.router.Use(middleware.Recoverer)

	// Request ID
	s.router.Use(middleware.RequestID)

	// Real IP
	s.router.Use(middleware.RealIP)

	// Logging
	s.router.Use(s.loggingMiddleware)

	// Timeout
	s.router.Use(timeoutUnlessUpgrade(requestTimeout))

	// CORS
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Compress responses
	if !devMode {
		s.router.Use(middleware.Compress(5))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/health", s.handleHealth)

	c := s.container
	s.router.Route("/api", func(r chi.Router) {
		r.Route("/system", func(r chi.Router) {
			r.Get("/status", s.systemHandlers.HandleSystemStatus)
			r.Get("/database/stats", s.systemHandlers.HandleDatabaseStats)
			r.Get("/jobs", s.systemHandlers.HandleListJobs)
			r.Post("/jobs/{name}", s.systemHandlers.HandleTriggerJob)
		})

		formulashandlers.NewHandler(s.log).RegisterRoutes(r)
		projectionhandlers.NewHandler(c.ProjectionService, s.origins, s.log).RegisterRoutes(r)
		comparisonhandlers.NewHandler(c.Comparer, s.log).RegisterRoutes(r)
		markethandlers.NewHandler(c.MarketAnalyzer, s.log).RegisterRoutes(r)
		renovationhandlers.NewHandler(s.log).RegisterRoutes(r)
		movinghandlers.NewHandler(s.log).RegisterRoutes(r)
		insurancehandlers.NewHandler(s.log).RegisterRoutes(r)
		reportshandlers.NewHandler(c.ReportService, s.log).RegisterRoutes(r)
	})
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.log.Info().Int("port", s.port).Msg("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info().Msg("Shutting down HTTP server")
	return s.server.Shutdown(ctx)
}

// loggingMiddleware logs every request
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}

// timeoutUnlessUpgrade applies middleware.Timeout to everything but websocket upgrades,
// whose connections outlive a single request
func timeoutUnlessUpgrade(timeout time.Duration) func(http.Handler) http.Handler {
	withTimeout := middleware.Timeout(timeout)
	return func(next http.Handler) http.Handler {
		timed := withTimeout(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
				next.ServeHTTP(w, r)
				return
			}
			timed.ServeHTTP(w, r)
		})
	}
}
