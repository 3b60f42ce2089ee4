// Package speech turns text into audio. Two strategies sit behind the
// Synthesizer interface: a cloud endpoint addressed by region and subscription
// key, and a local engine binary that needs no credential.
package speech

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	StrategyAzure = "azure"
	StrategyLocal = "local"
	StrategyNone  = "none"
)

const (
	ContentTypeMPEG = "audio/mpeg"
	ContentTypeWAV  = "audio/wav"
)

var (
	// ErrServiceUnavailable means the strategy lacks configuration (key, region, binary).
	ErrServiceUnavailable = errors.New("speech service unavailable")
	// ErrUpstream is matched by every UpstreamError.
	ErrUpstream = errors.New("speech upstream error")
	// ErrEmptyInput is returned for empty text.
	ErrEmptyInput = errors.New("empty input")
	// ErrUnknownStrategy is returned by New for an unsupported strategy name.
	ErrUnknownStrategy = errors.New("unknown speech strategy")
)

// UpstreamError carries the status code and response body of a failed synthesis.
// Local engines report their exit status and combined output the same way.
type UpstreamError struct {
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	msg := fmt.Sprintf("speech upstream status %d", e.Status)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstream }

// Audio is one synthesized clip.
type Audio struct {
	Data        []byte
	ContentType string
	Extension   string
}

// Synthesizer renders text spoken in the given language (or voice) code.
type Synthesizer interface {
	Name() string
	// Available reports whether Synthesize can reach its backend at all.
	Available() bool
	Synthesize(ctx context.Context, text, lang string) (*Audio, error)
}

type Config struct {
	Strategy string
	// Key and Region address the cloud endpoint.
	Key    string
	Region string
	// Endpoint overrides the region-derived cloud URL.
	Endpoint   string
	Command    string
	HTTPClient *http.Client
}

// New selects a strategy. "none" (or empty) yields a synthesizer that is never available.
func New(cfg Config) (Synthesizer, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Strategy)) {
	case StrategyAzure:
		s := NewAzureSynthesizer(cfg.Key, cfg.Region, cfg.HTTPClient)
		if cfg.Endpoint != "" {
			s.endpoint = cfg.Endpoint
		}
		return s, nil
	case StrategyLocal:
		return NewCommandSynthesizer(cfg.Command), nil
	case "", StrategyNone:
		return Disabled{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, cfg.Strategy)
	}
}

// Disabled is the synthesizer used when speech output is switched off.
type Disabled struct{}

func (Disabled) Name() string    { return StrategyNone }
func (Disabled) Available() bool { return false }

func (Disabled) Synthesize(context.Context, string, string) (*Audio, error) {
	return nil, ErrServiceUnavailable
}
