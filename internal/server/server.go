// Package server exposes the charting pipeline over HTTP.
//
// The API is deliberately small:
//
//	POST /api/v1/charts      render a chart from posted rows
//	GET  /api/v1/types       list the chart-type catalog
//	GET  /healthz            liveness probe
//
// With a gallery store configured, rendered charts are persisted and
// the /api/v1/charts collection becomes listable.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/rangeviz/rangeviz/pkg/gallery"
	"github.com/rangeviz/rangeviz/pkg/pipeline"
)

// Server is the HTTP API surface.
type Server struct {
	// Defaults are server-wide render settings applied to every chart
	// request. Zero values fall back to the pipeline defaults.
	Defaults Defaults

	runner *pipeline.Runner
	store  gallery.Store
	logger *log.Logger
	router chi.Router
}

// Defaults selects the rendering engine used for all requests.
type Defaults struct {
	Engine     string
	EnginePath string
	ServiceURL string
}

// New assembles the server. A nil store disables the gallery routes; a
// nil logger falls back to the default logger.
func New(runner *pipeline.Runner, store gallery.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		store:  store,
		logger: logger,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/types", s.handleTypes)
		r.Post("/charts", s.handleCreateChart)

		if s.store != nil {
			r.Get("/charts", s.handleListCharts)
			r.Get("/charts/{id}", s.handleGetChart)
			r.Get("/charts/{id}/image", s.handleChartImage)
			r.Delete("/charts/{id}", s.handleDeleteChart)
		}
	})

	return r
}

// Handler returns the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until the context is cancelled, then
// shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		err := <-errCh
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs one line per request in the application logger
// rather than chi's default stdlib format.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
