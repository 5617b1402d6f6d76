// Package extract pulls structured entities out of raw resume text:
// keyword-matched skills, education and experience terms, plus
// organizations and dates from an external named-entity recognizer.
package extract

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker/v2"

	"resumebench/internal/config"
	"resumebench/internal/errors"
)

// Entity is one labeled span returned by a recognizer.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// Recognizer is the external named-entity collaborator. Implementations
// return labeled spans in emission order; the extractor filters them to
// the labels it cares about.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]Entity, error)
	Close() error
}

// recognizerBreaker wraps recognizer calls with circuit breaker
// protection. A nil breaker executes calls directly.
type recognizerBreaker struct {
	cb *gobreaker.CircuitBreaker[[]Entity]
}

func newRecognizerBreaker(cfg *config.RecognizerConfig, logger *errors.Logger) *recognizerBreaker {
	if !cfg.CircuitBreaker.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        fmt.Sprintf("NER-%s", cfg.Provider),
		MaxRequests: cfg.CircuitBreaker.MaxRequests,
		Interval:    cfg.CircuitBreaker.Interval,
		Timeout:     cfg.CircuitBreaker.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= cfg.CircuitBreaker.MinRequests &&
				failureRatio >= cfg.CircuitBreaker.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"from", from.String(),
				"to", to.String(),
				"max_requests", cfg.CircuitBreaker.MaxRequests,
				"failure_threshold", cfg.CircuitBreaker.FailureThreshold)
		},
	}

	return &recognizerBreaker{
		cb: gobreaker.NewCircuitBreaker[[]Entity](settings),
	}
}

// Execute runs fn with circuit breaker protection.
func (rb *recognizerBreaker) Execute(fn func() ([]Entity, error)) ([]Entity, error) {
	if rb == nil || rb.cb == nil {
		return fn()
	}
	return rb.cb.Execute(fn)
}

// Stats returns circuit breaker statistics for the stats endpoint.
func (rb *recognizerBreaker) Stats() map[string]any {
	if rb == nil || rb.cb == nil {
		return map[string]any{
			"enabled": false,
		}
	}

	return map[string]any{
		"name":    rb.cb.Name(),
		"state":   rb.cb.State().String(),
		"counts":  rb.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy returns true when the breaker is closed or disabled.
func (rb *recognizerBreaker) IsHealthy() bool {
	if rb == nil || rb.cb == nil {
		return true
	}
	return rb.cb.State() == gobreaker.StateClosed
}
