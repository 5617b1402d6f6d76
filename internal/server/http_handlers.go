package server

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"resumebench/internal/errors"
	"resumebench/internal/observability"
	"resumebench/internal/textextract"
)

// uploadPreviewChars limits how much extracted text is returned to the client.
const uploadPreviewChars = 1000

// createUploadHandler creates the handler for the /upload endpoint
func (s *Server) createUploadHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		_, span := tracer.Start(r.Context(), "api.upload")
		defer span.End()

		if r.Method != http.MethodPost {
			writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "Only POST requests are supported")
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid upload", "A multipart form with a 'file' field is required")
			span.SetStatus(codes.Error, "missing file")
			return
		}
		defer func() { _ = file.Close() }()

		if !textextract.Supported(header.Filename) {
			writeErrorResponse(w, http.StatusBadRequest, "Unsupported file format",
				fmt.Sprintf("file %s has an unsupported extension (supported: .pdf, .docx, .txt)", header.Filename))
			span.SetStatus(codes.Error, "unsupported format")
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			s.Logger.LogError(err, "Failed to read uploaded file", "filename", header.Filename)
			writeErrorResponse(w, http.StatusInternalServerError, "Upload failed", "Could not read uploaded file")
			span.RecordError(err)
			return
		}

		text, err := textextract.ExtractText(header.Filename, data)
		if err != nil {
			s.Logger.LogError(err, "Failed to extract text from upload", "filename", header.Filename)
			span.RecordError(err)
			span.SetStatus(codes.Error, "extraction failed")
			writeAppError(w, err)
			return
		}

		span.SetAttributes(
			attribute.String("upload.filename", header.Filename),
			attribute.Int("upload.bytes", len(data)),
			attribute.Int("upload.chars", len(text)),
		)

		preview := text
		if runes := []rune(text); len(runes) > uploadPreviewChars {
			preview = string(runes[:uploadPreviewChars])
		}

		ext := strings.ToLower(header.Filename)
		if idx := strings.LastIndex(ext, "."); idx >= 0 {
			ext = ext[idx+1:]
		}

		writeJSONResponse(w, http.StatusOK, UploadResponse{
			Filename: header.Filename,
			Format:   ext,
			Chars:    len([]rune(text)),
			Preview:  preview,
		}, s.Logger)
	}
}

// healthHandler returns the health status of the service
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "Only GET requests are supported")
		return
	}

	recognizerEnabled := s.AppConfig.Recognizer.Enabled
	recognizerHealthy := s.Svc.RecognizerHealthy()

	status := "healthy"
	httpStatus := http.StatusOK
	if recognizerEnabled && !recognizerHealthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	response := map[string]any{
		"status":    status,
		"version":   s.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"benchmark": map[string]any{
			"categories": len(s.Svc.Categories()),
		},
		"recognizer": map[string]any{
			"enabled": recognizerEnabled,
			"healthy": recognizerHealthy,
			"model":   s.AppConfig.Recognizer.Model,
		},
		"knowledge": map[string]any{
			"path":    s.AppConfig.Knowledge.Path,
			"watcher": s.AppConfig.Knowledge.Watch,
		},
	}

	writeJSONResponse(w, httpStatus, response, s.Logger)
}

// statsHandler returns engine and server statistics
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "Only GET requests are supported")
		return
	}

	stats := s.Svc.Stats()
	stats["version"] = s.Version
	stats["authEnabled"] = len(s.APIKeys) > 0
	if s.RateLimiter != nil {
		stats["rateLimit"] = s.RateLimiter.Stats()
	}

	writeJSONResponse(w, http.StatusOK, stats, s.Logger)
}

// categoriesHandler returns the known benchmark categories
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "Only GET requests are supported")
		return
	}

	writeJSONResponse(w, http.StatusOK, map[string]any{
		"categories": s.Svc.Categories(),
	}, s.Logger)
}

// parseJSONRequest parses a JSON request body, writing an error response on failure
func parseJSONRequest(w http.ResponseWriter, r *http.Request, dst any, logger *errors.Logger) bool {
	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed", "Only POST requests are supported")
		return false
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "application/json") {
		writeErrorResponse(w, http.StatusUnsupportedMediaType, "Unsupported content type", "Content-Type must be application/json")
		return false
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if stderrors.As(err, &maxBytesErr) {
			writeErrorResponse(w, http.StatusRequestEntityTooLarge, "Request too large",
				fmt.Sprintf("Request body exceeds the %d byte limit", maxBytesErr.Limit))
			return false
		}
		if logger != nil {
			logger.Debug("Failed to decode request body", "error", err)
		}
		writeErrorResponse(w, http.StatusBadRequest, "Invalid JSON", "Request body must be valid JSON")
		return false
	}

	return true
}

// writeErrorResponse writes a structured JSON error response
func writeErrorResponse(w http.ResponseWriter, statusCode int, errMsg, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:   errMsg,
		Message: message,
	})
}

// writeAppError maps an application error to an HTTP error response
func writeAppError(w http.ResponseWriter, err error) {
	var appErr *errors.AppError
	if !stderrors.As(err, &appErr) {
		writeErrorResponse(w, http.StatusInternalServerError, "Internal error", "An unexpected error occurred")
		return
	}

	status := http.StatusInternalServerError
	switch appErr.Type {
	case errors.ErrorTypeValidation:
		status = http.StatusBadRequest
	case errors.ErrorTypeRecognizer:
		status = http.StatusServiceUnavailable
	case errors.ErrorTypeNetwork:
		status = http.StatusBadGateway
	case errors.ErrorTypeIO:
		status = http.StatusUnprocessableEntity
	}

	writeErrorResponse(w, status, appErr.Code, appErr.Message)
}
