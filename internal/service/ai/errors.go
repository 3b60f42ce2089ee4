package ai

import (
	"errors"
	"fmt"
)

var (
	// ErrServiceUnavailable means no provider credential was configured.
	ErrServiceUnavailable = errors.New("translation service unavailable")
	// ErrUpstream is matched by every UpstreamError.
	ErrUpstream = errors.New("translation upstream error")
	// ErrEmptyInput is returned for empty user text.
	ErrEmptyInput = errors.New("empty input")
	// ErrEmptyCompletion means the provider answered without any text.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrEmptyTargetLanguage is a BuildSystemPrompt precondition failure.
	ErrEmptyTargetLanguage = errors.New("target language name is required")
)

// UpstreamError carries the diagnostic detail of a failed provider call.
// Status and Body are zero when the call failed before a response arrived.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: status %d: %v", e.Provider, e.Status, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }
