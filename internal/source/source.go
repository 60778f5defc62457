// Package source defines the uniform adapter contract every upstream
// provider is wrapped in, the typed failure adapters report, and the
// registry binding configured sources to their adapters. Provider-specific
// response shapes must never leak past this boundary.
package source

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news_aggregator/internal/domain"
)

// Adapter is the single capability external providers must implement:
// given a query, produce normalized articles or fail with a typed error
// within the caller's deadline. A timeout is a failure, not a hang.
type Adapter interface {
	ID() string
	Name() string
	Fetch(ctx context.Context, query domain.Query) ([]domain.Article, error)
	// IsConfigured reports whether the adapter has the credentials it
	// needs. Unconfigured adapters are excluded from selection, not
	// treated as errors.
	IsConfigured() bool
}

// HealthReport is the result of an optional adapter self-check.
type HealthReport struct {
	Status    string        `json:"status"`
	LatencyMs time.Duration `json:"latencyMs,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// HealthChecker is optionally implemented by adapters that can probe
// their upstream without running a full query.
type HealthChecker interface {
	HealthCheck(ctx context.Context) HealthReport
}

// Error is the typed failure adapters return: enough context for the
// orchestrator to log the loss and continue with remaining sources.
type Error struct {
	SourceID   string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("source %s: status %d: %s", e.SourceID, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("source %s: %s", e.SourceID, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// NewError wraps err as a typed source failure.
func NewError(sourceID string, statusCode int, message string, err error) *Error {
	return &Error{SourceID: sourceID, StatusCode: statusCode, Message: message, Err: err}
}

// IsTimeout reports whether err was caused by a deadline expiring.
func IsTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded)
}
