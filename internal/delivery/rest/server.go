package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"baskettracker/internal/application"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const shutdownTimeout = 5 * time.Second

// Server exposes the match session as a JSON API for a browser scoring UI.
type Server struct {
	srv      *http.Server
	services *application.Service
	logger   application.Logger
	origins  []string
}

func NewServer(addr string, allowedOrigins []string, services *application.Service, logger application.Logger) *Server {
	s := &Server{
		services: services,
		logger:   logger,
		origins:  allowedOrigins,
	}
	s.srv = &http.Server{
		Addr:         addr,
		Handler:      s.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", s.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		// Session
		r.Get("/session", s.GetSession)
		r.Post("/start", s.StartMatch)
		r.Put("/match-info", s.UpdateMatchInfo)
		r.Post("/quick-fill", s.QuickFill)
		r.Post("/reset-stats", s.ResetStats)
		r.Post("/full-reset", s.FullReset)

		// Roster
		r.Post("/players", s.AddPlayer)
		r.Delete("/players/{id}", s.RemovePlayer)

		// Events
		r.Post("/actions", s.ApplyAction)
		r.Get("/feedback", s.GetFeedback)
		r.Delete("/feedback", s.DismissFeedback)
		r.Post("/opponent/{op}", s.Opponent)
		r.Post("/quarter/next", s.NextQuarter)

		// Exchange
		r.Get("/export", s.Export)
		r.Post("/import", s.Import)

		// Reports
		r.Get("/box", s.BoxScore)
		r.Get("/report", s.Narrative)
		r.Get("/report.xlsx", s.ExcelReport)
		r.Post("/sync-sheet", s.SyncSheet)
	})

	return r
}

func (s *Server) Name() string { return "http" }

func (s *Server) Init() error { return nil }

func (s *Server) Run(ctx context.Context) {
	s.logger.Info("HTTP API listening on %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server failed: %v", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		s.logger.Warn("http server shutdown: %v", err)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		s.logger.Debug("%s %s %d %s [%s]", r.Method, r.URL.Path, ww.Status(), time.Since(start), chimiddleware.GetReqID(r.Context()))
	})
}
