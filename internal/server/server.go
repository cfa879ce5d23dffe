// Package server exposes the rendered discussion widget over HTTP alongside
// health and metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akwxlab/marinedash"
	"github.com/akwxlab/marinedash/internal/observability"
)

// Server serves widget fragments, /healthz, and /metrics.
type Server struct {
	httpServer *http.Server
	fetcher    marinedash.Fetcher
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// New creates an HTTP server with widget, health, and metrics routes.
func New(addr string, fetcher marinedash.Fetcher, logger *slog.Logger, metrics *observability.Metrics) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		fetcher: fetcher,
		logger:  logger,
		metrics: metrics,
	}

	mux.HandleFunc("GET /widgets/discussion/{office}", s.handleDiscussion)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handleDiscussion renders the discussion widget fragment for one office.
// Every request runs the full widget cycle against a capture display; the
// fetch layer's cache keeps repeated loads cheap.
func (s *Server) handleDiscussion(w http.ResponseWriter, r *http.Request) {
	office := r.PathValue("office")
	if !marinedash.ValidOfficeCode(office) {
		http.Error(w, "invalid office code", http.StatusBadRequest)
		return
	}

	display := &marinedash.CaptureDisplay{}
	widget := marinedash.NewWidget(display,
		marinedash.WithFetcher(s.fetcher),
		marinedash.WithLogger(s.logger),
	)
	widget.Load(r.Context(), office)

	if s.metrics != nil {
		s.metrics.WidgetRenders.Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(display.Content())); err != nil {
		s.logger.Warn("writing widget response", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort health response
}
