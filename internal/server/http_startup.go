package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resumebench/internal/observability"
)

// Start starts the HTTP server with graceful shutdown support
func (s *Server) Start() error {
	om, err := s.initializeObservability()
	if err != nil {
		return err
	}
	defer s.shutdownObservability(om)

	server := s.setupHTTPServer(om)

	tlsEnabled, err := s.configureTLS(server)
	if err != nil {
		return err
	}

	s.displayServerInfo(tlsEnabled)

	return s.startWithGracefulShutdown(server, tlsEnabled)
}

// initializeObservability sets up the observability manager
func (s *Server) initializeObservability() (*observability.ObservabilityManager, error) {
	obsConfig := observability.GetObservabilityConfig(s.AppConfig, s.Version)
	om, err := observability.NewObservabilityManager(obsConfig, s.AppConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize observability: %w", err)
	}
	return om, nil
}

// shutdownObservability shuts down the observability manager with a timeout
func (s *Server) shutdownObservability(om *observability.ObservabilityManager) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := om.Shutdown(ctx); err != nil {
		s.Logger.Warn("Observability shutdown failed", "error", err)
	}
}

// setupHTTPServer creates the HTTP server with routes and middleware
func (s *Server) setupHTTPServer(om *observability.ObservabilityManager) *http.Server {
	mux := s.setupRoutes(om)

	return &http.Server{
		Addr:         s.Host + ":" + s.Port,
		Handler:      om.HTTPMiddleware()(mux),
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
		IdleTimeout:  s.IdleTimeout,
	}
}

// startWithGracefulShutdown runs the server and handles shutdown signals
func (s *Server) startWithGracefulShutdown(server *http.Server, tlsEnabled bool) error {
	serverErrors := make(chan error, 1)

	go func() {
		if tlsEnabled {
			// Certificates are already loaded into server.TLSConfig
			serverErrors <- server.ListenAndServeTLS("", "")
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case sig := <-shutdown:
		s.Logger.Info("Shutdown signal received", "signal", sig.String())
		return s.performGracefulShutdown(server)
	}
}

// performGracefulShutdown drains in-flight requests before stopping
func (s *Server) performGracefulShutdown(server *http.Server) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.RateLimiter != nil {
		s.RateLimiter.Close()
	}

	if err := server.Shutdown(ctx); err != nil {
		s.Logger.Warn("Graceful shutdown failed, forcing close", "error", err)
		if closeErr := server.Close(); closeErr != nil {
			return fmt.Errorf("could not stop server: %w", closeErr)
		}
	}

	s.Logger.Info("Server stopped")
	return nil
}
