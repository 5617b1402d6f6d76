package server

import (
	"time"

	"resumebench/internal/config"
	"resumebench/internal/errors"
	"resumebench/internal/service"
)

// Server represents the HTTP API server
type Server struct {
	Host           string
	Port           string
	Version        string
	AppConfig      *config.Config
	TLSConfig      config.TLSConfig
	Svc            *service.Service
	APIKeys        map[string]bool
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      *config.RateLimitConfig
	RateLimiter    *LimiterManager
	Logger         *errors.Logger
}

// ServerConfig holds configuration for creating a new server
type ServerConfig struct {
	Host           string
	Port           string
	Version        string
	TLSConfig      config.TLSConfig
	APIKeys        []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	MaxRequestSize int64
	RateLimit      config.RateLimitConfig
}

// NewServer creates a new HTTP server instance
func NewServer(appConfig *config.Config, svc *service.Service, serverConfig ServerConfig, logger *errors.Logger) *Server {
	// Convert API keys slice to map for O(1) lookup
	apiKeys := make(map[string]bool)
	for _, key := range serverConfig.APIKeys {
		if key != "" {
			apiKeys[key] = true
		}
	}

	readTimeout := serverConfig.ReadTimeout
	if readTimeout == 0 {
		readTimeout = 30 * time.Second
	}
	writeTimeout := serverConfig.WriteTimeout
	if writeTimeout == 0 {
		writeTimeout = 30 * time.Second
	}
	idleTimeout := serverConfig.IdleTimeout
	if idleTimeout == 0 {
		idleTimeout = 60 * time.Second
	}
	maxRequestSize := serverConfig.MaxRequestSize
	if maxRequestSize == 0 {
		maxRequestSize = 1024 * 1024 // 1MB default
	}

	var rateLimiter *LimiterManager
	if serverConfig.RateLimit.Enabled {
		rateLimiter = NewLimiterManager(serverConfig.RateLimit, logger)
	}

	return &Server{
		Host:           serverConfig.Host,
		Port:           serverConfig.Port,
		Version:        serverConfig.Version,
		AppConfig:      appConfig,
		TLSConfig:      serverConfig.TLSConfig,
		Svc:            svc,
		APIKeys:        apiKeys,
		ReadTimeout:    readTimeout,
		WriteTimeout:   writeTimeout,
		IdleTimeout:    idleTimeout,
		MaxRequestSize: maxRequestSize,
		RateLimit:      &serverConfig.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}

// ScoreRequest represents a benchmark scoring request
type ScoreRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// ParseRequest represents an entity extraction request
type ParseRequest struct {
	Text string `json:"text"`
}

// TimelineRequest represents a timeline analysis request
type TimelineRequest struct {
	Dates              []string `json:"dates"`
	GapThresholdMonths int      `json:"gapThresholdMonths,omitempty"`
}

// AdviseRequest represents a career advice request
type AdviseRequest struct {
	Category      string   `json:"category"`
	MissingSkills []string `json:"missingSkills,omitempty"`
}

// ReadabilityRequest represents a readability analysis request
type ReadabilityRequest struct {
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}

// ReportRequest represents a full diagnostic report request
type ReportRequest struct {
	Text     string `json:"text"`
	Category string `json:"category"`
}

// UploadResponse represents the response for an uploaded resume file
type UploadResponse struct {
	Filename string `json:"filename"`
	Format   string `json:"format"`
	Chars    int    `json:"chars"`
	Preview  string `json:"preview"`
}

// ErrorResponse represents an API error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
