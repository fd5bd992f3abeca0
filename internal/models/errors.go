package models

import (
	"errors"
	"fmt"
)

// Custom errors
var (
	// ErrDataUnavailable means the historical event table could not be
	// loaded. Fatal to the current prediction; nothing can be computed
	// without history.
	ErrDataUnavailable = errors.New("historical data unavailable")

	// ErrAnalyzerDegraded marks a condition analyzer failure. Recovered
	// locally: the factor defaults to neutral 1.0.
	ErrAnalyzerDegraded = errors.New("condition analyzer degraded")

	// ErrCandidateSourceExhausted means every candidate-selection tier
	// failed. Recovered via the generic fallback prediction.
	ErrCandidateSourceExhausted = errors.New("all candidate sources exhausted")

	// ErrExternalService marks a live external call failure. Every
	// SourceError matches it via errors.Is.
	ErrExternalService = errors.New("external service failure")

	ErrNotFound = errors.New("record not found")
)

// SourceError wraps a failure from a live external data source. It never
// propagates past the component that issued the call; the next fallback tier
// or a simulated value takes over.
type SourceError struct {
	Source  string
	Message string
	Err     error
}

func (e *SourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Source, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Message)
}

func (e *SourceError) Unwrap() error { return e.Err }

func (e *SourceError) Is(target error) bool { return target == ErrExternalService }

// NewSourceError creates a SourceError for the named source.
func NewSourceError(source, message string, err error) *SourceError {
	return &SourceError{Source: source, Message: message, Err: err}
}
