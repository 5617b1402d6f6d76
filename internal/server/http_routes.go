package server

import (
	"net/http"
	"strings"

	"resumebench/internal/observability"
)

// setupRoutes configures all HTTP routes with their middleware chains
func (s *Server) setupRoutes(om *observability.ObservabilityManager) *http.ServeMux {
	mux := http.NewServeMux()

	// Analysis endpoints with full middleware chain
	mux.HandleFunc("/score", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createScoreHandler(om))), om))
	mux.HandleFunc("/parse", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createParseHandler(om))), om))
	mux.HandleFunc("/timeline", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createTimelineHandler(om))), om))
	mux.HandleFunc("/advise", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createAdviseHandler(om))), om))
	mux.HandleFunc("/readability", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createReadabilityHandler(om))), om))
	mux.HandleFunc("/report", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createReportHandler(om))), om))
	mux.HandleFunc("/upload", s.rateLimitHandler(s.authMiddleware(s.requestLimitHandler(s.createUploadHandler(om))), om))

	// Informational endpoints without auth or rate limiting
	mux.HandleFunc("/health", s.healthHandler)
	mux.HandleFunc("/stats", s.statsHandler)
	mux.HandleFunc("/categories", s.categoriesHandler)

	return mux
}

// rateLimitHandler applies rate limiting middleware if enabled
func (s *Server) rateLimitHandler(handler func(http.ResponseWriter, *http.Request), om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	if s.RateLimiter == nil {
		return handler
	}
	return s.createRateLimitMiddleware(om)(handler)
}

// requestLimitHandler applies request size limiting middleware
func (s *Server) requestLimitHandler(handler func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return s.requestSizeLimitMiddleware(handler)
}

// authMiddleware validates API keys for protected endpoints
func (s *Server) authMiddleware(next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		// Skip authentication if no API keys are configured
		if len(s.APIKeys) == 0 {
			next(w, r)
			return
		}

		apiKey := r.Header.Get("X-API-Key")
		if apiKey == "" {
			authHeader := r.Header.Get("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				apiKey = strings.TrimPrefix(authHeader, "Bearer ")
			}
		}

		if apiKey == "" {
			s.Logger.Warn("API request without authentication", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
			writeErrorResponse(w, http.StatusUnauthorized, "Authentication required", "Provide API key via X-API-Key header or Authorization: Bearer token")
			return
		}

		if !s.APIKeys[apiKey] {
			s.Logger.Warn("API request with invalid key", "path", r.URL.Path, "remote_addr", r.RemoteAddr, "key_prefix", maskAPIKey(apiKey))
			writeErrorResponse(w, http.StatusUnauthorized, "Invalid API key", "The provided API key is not valid")
			return
		}

		next(w, r)
	}
}

// requestSizeLimitMiddleware limits the size of request bodies
func (s *Server) requestSizeLimitMiddleware(next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, s.MaxRequestSize)
		next(w, r)
	}
}

// maskAPIKey returns a masked version of the API key for logging
func maskAPIKey(key string) string {
	if len(key) <= 8 {
		return "****"
	}
	return key[:8] + "****"
}
