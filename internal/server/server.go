package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/superfellype/allura-concierge-sub001/internal/graphql"
	"github.com/superfellype/allura-concierge-sub001/internal/telemetry"
	"github.com/superfellype/allura-concierge-sub001/pkg/shipper"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// maxBodyBytes bounds the size of a GraphQL request body.
const maxBodyBytes = 1 << 20

// Server is the HTTP server for the shipping service.
type Server struct {
	port     int
	registry *shipper.Registry
	logger   *otelzap.Logger
	metrics  *telemetry.Metrics
	resolver *graphql.Resolver
}

// Config holds server configuration.
type Config struct {
	Port                  int
	FreeShippingThreshold float64
}

// New creates a new server instance.
func New(cfg Config, registry *shipper.Registry, logger *otelzap.Logger, metrics *telemetry.Metrics) *Server {
	resolver := graphql.NewResolver(registry, logger, metrics, cfg.FreeShippingThreshold)

	return &Server{
		port:     cfg.Port,
		registry: registry,
		logger:   logger,
		metrics:  metrics,
		resolver: resolver,
	}
}

// Handler returns the HTTP routes of the service.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", s.handleHealth)

	// Prometheus metrics
	mux.Handle("/metrics", promhttp.Handler())

	// GraphQL endpoint, traced so carrier spans nest under the request
	mux.Handle("/graphql", otelhttp.NewHandler(http.HandlerFunc(s.handleGraphQL), "graphql"))

	return mux
}

// Run starts the HTTP server and blocks until context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server",
			zap.Int("port", s.port),
			zap.Strings("carriers", s.registry.Names()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleGraphQL(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if r.Method != http.MethodPost {
		writeErrors(w, http.StatusMethodNotAllowed, graphql.ResponseError{Message: "Method not allowed, use POST"})
		return
	}

	var req graphql.Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeErrors(w, http.StatusBadRequest, graphql.ResponseError{Message: "Invalid JSON: " + err.Error()})
		return
	}

	resp, err := s.resolver.Execute(r.Context(), req)
	if err != nil {
		var reqErr *graphql.RequestError
		if errors.As(err, &reqErr) {
			writeErrors(w, http.StatusBadRequest, reqErr.Errors...)
			return
		}
		s.logger.Ctx(r.Context()).Error("GraphQL execution failed", zap.Error(err))
		writeErrors(w, http.StatusInternalServerError, graphql.ResponseError{Message: "internal error"})
		return
	}

	json.NewEncoder(w).Encode(resp)
}

func writeErrors(w http.ResponseWriter, status int, errs ...graphql.ResponseError) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(graphql.Response{Errors: errs})
}
