package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"mockapi/src/infra/metrics"
)

// Server representa o servidor HTTP dos artefatos estáticos
type Server struct {
	logger  *zap.Logger
	server  *http.Server
	mux     *http.ServeMux
	port    int
	store   ArtifactStore
	metrics *metrics.ServerMetrics
}

// NewServer cria uma nova instância do servidor
func NewServer(
	logger *zap.Logger,
	port int,
	store ArtifactStore,
	serverMetrics *metrics.ServerMetrics,
) *Server {
	server := &Server{
		mux:     http.NewServeMux(),
		port:    port,
		logger:  logger,
		store:   store,
		metrics: serverMetrics,
	}

	server.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      server.instrument(server.mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	server.mux.HandleFunc("GET /api/v1/{name}", server.GetArtifact)
	server.mux.HandleFunc("GET /healthz", server.Health)
	server.mux.Handle("GET /metrics", promhttp.HandlerFor(serverMetrics.Registry, promhttp.HandlerOpts{}))

	return server
}

// Handler exposes the instrumented router, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start inicia o servidor HTTP
func (s *Server) Start() error {
	s.logger.Info("Server started", zap.Int("port", s.port))

	return s.server.ListenAndServe()
}

// Shutdown encerra o servidor HTTP de forma graciosa
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		// Pattern evita cardinalidade alta: "/api/v1/{name}" e não o nome do arquivo.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(rec.status)
		s.metrics.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
		s.metrics.RequestDuration.WithLabelValues(r.Method, path, status).Observe(time.Since(started).Seconds())
	})
}
