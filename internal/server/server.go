// Package server exposes the validation engine over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/leapstack-labs/dictlint/internal/engine"
	"github.com/leapstack-labs/dictlint/pkg/core"
	"github.com/leapstack-labs/dictlint/pkg/lint"
	"golang.org/x/sync/errgroup"
)

// Server serves rule metadata and batch validation as a JSON API.
type Server struct {
	engine *engine.Engine
	addr   string
	logger *slog.Logger
}

// Config holds configuration for the HTTP server.
type Config struct {
	Addr   string
	Engine *engine.Engine
	Logger *slog.Logger
}

// New creates a new validation API server.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Server{
		engine: cfg.Engine,
		addr:   cfg.Addr,
		logger: logger,
	}
}

// Serve starts the HTTP server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("starting validation API", "addr", s.addr)

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Router(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down validation API...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// Router builds the route tree. Exported so tests can exercise handlers
// without binding a listener.
func (s *Server) Router() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/rules", s.handleRules)
		r.Post("/validate", s.handleValidate)
	})

	return r
}

// validateRequest carries the same table shape a batch YAML file does.
type validateRequest struct {
	Tables []core.TableRecord `json:"tables"`
}

type rulesResponse struct {
	Rules []core.RuleInfo `json:"rules"`
	Count int             `json:"count"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleRules(w http.ResponseWriter, _ *http.Request) {
	rules := lint.AllRules()
	s.respondJSON(w, http.StatusOK, rulesResponse{Rules: rules, Count: len(rules)})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request body: %v", err)})
		return
	}
	if len(req.Tables) == 0 {
		s.respondJSON(w, http.StatusBadRequest, errorResponse{Error: "request contains no tables"})
		return
	}

	report, err := s.engine.Run(r.Context(), req.Tables)
	if err != nil {
		s.respondJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}
