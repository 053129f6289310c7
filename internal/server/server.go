// Package server provides the HTTP REST API for the humanifyai service.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/evan-william/humanifyai/internal/analyzer"
	"github.com/evan-william/humanifyai/internal/config"
	"github.com/evan-william/humanifyai/internal/ruleset"
	"github.com/evan-william/humanifyai/internal/server/ratelimit"
	"github.com/evan-william/humanifyai/internal/transform"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server wires the analyzer and transformation pipeline behind HTTP.
type Server struct {
	httpServer  *http.Server
	settings    *config.Settings
	analyzer    *analyzer.Analyzer
	pipeline    *transform.Pipeline
	rateLimiter *ratelimit.Limiter
	validate    *validator.Validate
	log         *logrus.Logger
}

// New creates a server instance. The rule set is loaded and validated here
// so a malformed configuration fails at startup, not on the first request.
func New(settings *config.Settings, log *logrus.Logger) (*Server, error) {
	rules, err := ruleset.Load(settings.RulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load rule set: %w", err)
	}

	a, err := analyzer.New(rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyzer: %w", err)
	}

	s := &Server{
		settings: settings,
		analyzer: a,
		pipeline: transform.NewPipeline(rules),
		validate: validator.New(),
		log:      log,
	}

	s.rateLimiter = ratelimit.NewLimiter(&ratelimit.Config{
		Enabled:         true,
		Limit:           settings.RateLimitRequests,
		Window:          settings.RateLimitWindow,
		CleanupInterval: 5 * time.Minute,
		ExemptPaths:     map[string]bool{"/api/health": true},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/v1/transform", s.handleTransform)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /{$}", s.handleDashboard)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", settings.Port),
		Handler:      s.withSecurityHeaders(s.withRateLimit(s.withCORS(s.withLogging(mux)))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening and blocks until SIGINT/SIGTERM, then drains.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.log.WithField("addr", s.httpServer.Addr).Info("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	s.log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.rateLimiter.Stop()
	s.log.Info("server stopped")
	return nil
}

// Handler exposes the configured handler chain for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.WithError(err).Error("failed to encode JSON response")
	}
}

// errorResponse writes a single structured error; no internals are exposed.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID returns the client IP for rate limiting. X-Forwarded-For
// is deliberately ignored unless you terminate behind a trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
