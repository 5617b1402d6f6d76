package extract

import (
	"context"
	"crypto/rand"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"

	"resumebench/internal/config"
	"resumebench/internal/errors"
)

// GeminiRecognizer implements Recognizer on top of the Gemini API with
// a structured-output schema constraining responses to labeled spans.
type GeminiRecognizer struct {
	client  *genai.Client
	config  *config.RecognizerConfig
	breaker *recognizerBreaker
	logger  *errors.Logger
}

var _ Recognizer = (*GeminiRecognizer)(nil)

const recognizerSystemPrompt = `You are a named-entity recognizer for resume text. ` +
	`Extract every organization name and every date or date range mentioned in the input. ` +
	`Label organizations "ORG" and dates "DATE". Return entity text verbatim, in order of appearance.`

// NewGeminiRecognizer creates a recognizer backed by the configured
// Gemini model.
func NewGeminiRecognizer(cfg *config.RecognizerConfig, logger *errors.Logger) (*GeminiRecognizer, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, errors.NewRecognizerError(errors.ErrCodeRecognizerFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiRecognizer{
		client:  client,
		config:  cfg,
		breaker: newRecognizerBreaker(cfg, logger),
		logger:  logger,
	}, nil
}

// Recognize sends the text to the model and returns the labeled spans
// it emits, in emission order.
func (g *GeminiRecognizer) Recognize(ctx context.Context, text string) ([]Entity, error) {
	tracer := otel.Tracer("resumebench.extract.gemini")
	ctx, span := tracer.Start(ctx, "gemini.recognize_entities")
	defer span.End()

	span.SetAttributes(
		attribute.String("ner.provider", "gemini"),
		attribute.String("ner.model", g.config.Model),
		attribute.Int("input.text_length", len(text)),
	)

	genaiConfig := g.buildRecognizeSchema()
	genaiConfig.SystemInstruction = genai.NewContentFromText(recognizerSystemPrompt, genai.RoleUser)

	result, err := g.breaker.Execute(func() ([]Entity, error) {
		response, err := g.executeWithRetry(ctx, "recognize_entities", func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(ctx, g.config.Model, genai.Text(text), genaiConfig)
		})
		if err != nil {
			return nil, err
		}

		var entities []Entity
		if err := json.Unmarshal([]byte(response.Text()), &entities); err != nil {
			return nil, errors.NewRecognizerError("RECOGNIZER_RESPONSE_PARSE_FAILED",
				"Failed to parse recognizer response", err)
		}
		return entities, nil
	})

	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, errors.NewRecognizerError(errors.ErrCodeRecognizerFailed,
			"Entity recognition failed", err)
	}

	span.SetAttributes(
		attribute.Bool("success", true),
		attribute.Int("output.entity_count", len(result)),
	)
	return result, nil
}

// executeWithRetry executes a recognizer call with retry logic and
// exponential backoff.
func (g *GeminiRecognizer) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying recognizer operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("Recognizer operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "Recognizer operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiRecognizer) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// buildRecognizeSchema constrains responses to an array of labeled
// spans.
func (g *GeminiRecognizer) buildRecognizeSchema() *genai.GenerateContentConfig {
	genaiConfig := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"text":  {Type: genai.TypeString},
					"label": {Type: genai.TypeString},
				},
				Required: []string{"text", "label"},
			},
		},
	}

	if *g.config.Temperature > 0 {
		genaiConfig.Temperature = g.config.Temperature
	}

	return genaiConfig
}

// BreakerStats exposes the circuit breaker state for the stats
// endpoint.
func (g *GeminiRecognizer) BreakerStats() map[string]any {
	stats := g.breaker.Stats()
	stats["healthy"] = g.breaker.IsHealthy()
	return stats
}

// Close implements Recognizer.
func (g *GeminiRecognizer) Close() error {
	// The genai client holds no resources needing release in
	// single-shot usage.
	return nil
}
