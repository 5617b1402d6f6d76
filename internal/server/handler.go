package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"resumebench/internal/errors"
	"resumebench/internal/observability"
)

// createScoreHandler creates the handler for the /score endpoint
func (s *Server) createScoreHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		ctx, span := tracer.Start(r.Context(), "api.score")
		defer span.End()

		var req ScoreRequest
		if !parseJSONRequest(w, r, &req, s.Logger) {
			span.SetStatus(codes.Error, "invalid request")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "text is required")
			span.SetStatus(codes.Error, "missing text")
			return
		}
		if strings.TrimSpace(req.Category) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "category is required")
			span.SetStatus(codes.Error, "missing category")
			return
		}

		span.SetAttributes(
			attribute.String("score.category", req.Category),
			attribute.Int("score.text_length", len(req.Text)),
		)

		metrics := om.GetMetrics()
		report, err := s.Svc.Score(ctx, req.Text, req.Category)
		if metrics != nil {
			metrics.RecordBusinessMetric(ctx, "resume_scored", err == nil, om,
				attribute.String("category", req.Category))
		}
		if err != nil {
			s.Logger.LogError(err, "Score request failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "scoring failed")
			writeAppError(w, err)
			return
		}

		span.SetAttributes(attribute.Float64("score.similarity", report.Similarity))
		writeJSONResponse(w, http.StatusOK, report, s.Logger)
	}
}

// createParseHandler creates the handler for the /parse endpoint
func (s *Server) createParseHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		ctx, span := tracer.Start(r.Context(), "api.parse")
		defer span.End()

		var req ParseRequest
		if !parseJSONRequest(w, r, &req, s.Logger) {
			span.SetStatus(codes.Error, "invalid request")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "text is required")
			span.SetStatus(codes.Error, "missing text")
			return
		}

		span.SetAttributes(attribute.Int("parse.text_length", len(req.Text)))

		metrics := om.GetMetrics()
		entities, err := s.Svc.Parse(ctx, req.Text)
		if metrics != nil {
			metrics.RecordBusinessMetric(ctx, "entities_extracted", err == nil, om)
		}
		if err != nil {
			s.Logger.LogError(err, "Parse request failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "extraction failed")
			writeAppError(w, err)
			return
		}

		span.SetAttributes(
			attribute.Int("parse.skills", len(entities.Skills)),
			attribute.Int("parse.dates", len(entities.Dates)),
		)
		writeJSONResponse(w, http.StatusOK, entities, s.Logger)
	}
}

// createTimelineHandler creates the handler for the /timeline endpoint
func (s *Server) createTimelineHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		ctx, span := tracer.Start(r.Context(), "api.timeline")
		defer span.End()

		var req TimelineRequest
		if !parseJSONRequest(w, r, &req, s.Logger) {
			span.SetStatus(codes.Error, "invalid request")
			return
		}

		if len(req.Dates) == 0 {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "dates is required")
			span.SetStatus(codes.Error, "missing dates")
			return
		}
		if req.GapThresholdMonths < 0 {
			writeErrorResponse(w, http.StatusBadRequest, "Invalid field", "gapThresholdMonths must not be negative")
			span.SetStatus(codes.Error, "invalid threshold")
			return
		}

		span.SetAttributes(attribute.Int("timeline.date_count", len(req.Dates)))

		report := s.Svc.Timeline(ctx, req.Dates, req.GapThresholdMonths)
		if metrics := om.GetMetrics(); metrics != nil {
			metrics.RecordBusinessMetric(ctx, "timeline_analyzed", true, om)
		}

		span.SetAttributes(
			attribute.Int("timeline.gaps", len(report.Gaps)),
			attribute.Int("timeline.overlaps", len(report.Overlaps)),
		)
		writeJSONResponse(w, http.StatusOK, report, s.Logger)
	}
}

// createAdviseHandler creates the handler for the /advise endpoint
func (s *Server) createAdviseHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		ctx, span := tracer.Start(r.Context(), "api.advise")
		defer span.End()

		var req AdviseRequest
		if !parseJSONRequest(w, r, &req, s.Logger) {
			span.SetStatus(codes.Error, "invalid request")
			return
		}

		if strings.TrimSpace(req.Category) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "category is required")
			span.SetStatus(codes.Error, "missing category")
			return
		}

		span.SetAttributes(
			attribute.String("advise.category", req.Category),
			attribute.Int("advise.missing_skills", len(req.MissingSkills)),
		)

		advice := s.Svc.Advise(ctx, req.Category, req.MissingSkills)
		writeJSONResponse(w, http.StatusOK, advice, s.Logger)
	}
}

// createReadabilityHandler creates the handler for the /readability endpoint
func (s *Server) createReadabilityHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		ctx, span := tracer.Start(r.Context(), "api.readability")
		defer span.End()

		var req ReadabilityRequest
		if !parseJSONRequest(w, r, &req, s.Logger) {
			span.SetStatus(codes.Error, "invalid request")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "text is required")
			span.SetStatus(codes.Error, "missing text")
			return
		}

		span.SetAttributes(attribute.Int("readability.text_length", len(req.Text)))

		report, err := s.Svc.Readability(ctx, req.Text, req.Category)
		if err != nil {
			s.Logger.LogError(err, "Readability request failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "readability failed")
			writeAppError(w, err)
			return
		}

		writeJSONResponse(w, http.StatusOK, report, s.Logger)
	}
}

// createReportHandler creates the handler for the /report endpoint
func (s *Server) createReportHandler(om *observability.ObservabilityManager) func(http.ResponseWriter, *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		tracer := om.Tracer("resumebench.api")
		ctx, span := tracer.Start(r.Context(), "api.report")
		defer span.End()

		var req ReportRequest
		if !parseJSONRequest(w, r, &req, s.Logger) {
			span.SetStatus(codes.Error, "invalid request")
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "text is required")
			span.SetStatus(codes.Error, "missing text")
			return
		}
		if strings.TrimSpace(req.Category) == "" {
			writeErrorResponse(w, http.StatusBadRequest, "Missing required field", "category is required")
			span.SetStatus(codes.Error, "missing category")
			return
		}

		span.SetAttributes(
			attribute.String("report.category", req.Category),
			attribute.Int("report.text_length", len(req.Text)),
		)

		metrics := om.GetMetrics()
		var report any
		operation := func(opCtx context.Context) error {
			result, err := s.Svc.Report(opCtx, req.Text, req.Category)
			if err != nil {
				return err
			}
			report = result
			return nil
		}

		var err error
		if metrics != nil {
			err = metrics.TrackAnalysisOperation(ctx, "report", len(req.Text), operation, om)
			metrics.RecordBusinessMetric(ctx, "report_built", err == nil, om,
				attribute.String("category", req.Category))
		} else {
			err = operation(ctx)
		}
		if err != nil {
			s.Logger.LogError(err, "Report request failed")
			span.RecordError(err)
			span.SetStatus(codes.Error, "report failed")
			writeAppError(w, err)
			return
		}

		writeJSONResponse(w, http.StatusOK, report, s.Logger)
	}
}

// createRateLimitMiddleware wraps a handler with rate limit metric recording
func (s *Server) createRateLimitMiddleware(om *observability.ObservabilityManager) func(func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
	return func(next func(http.ResponseWriter, *http.Request)) func(http.ResponseWriter, *http.Request) {
		limited := s.RateLimiter.rateLimitMiddleware(next, s.Logger)
		return func(w http.ResponseWriter, r *http.Request) {
			wrapper := &responseWrapper{ResponseWriter: w, statusCode: http.StatusOK}
			limited(wrapper, r)
			if wrapper.statusCode == http.StatusTooManyRequests {
				if metrics := om.GetMetrics(); metrics != nil {
					metrics.RecordBusinessMetric(r.Context(), "rate_limit_hit", false, om,
						attribute.String("path", r.URL.Path))
				}
			}
		}
	}
}

// responseWrapper captures the response status code for metric recording
type responseWrapper struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWrapper) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// writeJSONResponse writes a JSON response with the given status code
func writeJSONResponse(w http.ResponseWriter, statusCode int, data any, logger *errors.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil && logger != nil {
		logger.LogError(err, "Failed to encode JSON response")
	}
}
