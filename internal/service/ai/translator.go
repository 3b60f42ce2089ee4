package ai

import (
	"context"
	"errors"
	"strings"
)

// Translator sends translation requests to a single configured provider.
// A Translator without a provider reports ErrServiceUnavailable on every call.
type Translator struct {
	provider Provider
}

func NewTranslator(provider Provider) *Translator {
	return &Translator{provider: provider}
}

// Available reports whether a provider is configured.
func (t *Translator) Available() bool {
	return t != nil && t.provider != nil
}

// ProviderName returns the configured provider name, or "" when unavailable.
func (t *Translator) ProviderName() string {
	if !t.Available() {
		return ""
	}
	return t.provider.Name()
}

// Translate returns the provider's reply to userText under systemPrompt, trimmed.
func (t *Translator) Translate(ctx context.Context, systemPrompt, userText string) (string, error) {
	if !t.Available() {
		return "", ErrServiceUnavailable
	}
	if strings.TrimSpace(userText) == "" {
		return "", ErrEmptyInput
	}

	out, err := t.provider.Complete(ctx, systemPrompt, userText)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return "", upstream
		}
		return "", &UpstreamError{Provider: t.provider.Name(), Err: err}
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return "", &UpstreamError{Provider: t.provider.Name(), Err: ErrEmptyCompletion}
	}
	return out, nil
}

// Check sends the provider's fixed test message. An empty reply counts as a failure.
func (t *Translator) Check(ctx context.Context) error {
	if !t.Available() {
		return ErrServiceUnavailable
	}
	reply, err := t.provider.Test(ctx)
	if err != nil {
		var upstream *UpstreamError
		if errors.As(err, &upstream) {
			return upstream
		}
		return &UpstreamError{Provider: t.provider.Name(), Err: err}
	}
	if strings.TrimSpace(reply) == "" {
		return &UpstreamError{Provider: t.provider.Name(), Err: ErrEmptyCompletion}
	}
	return nil
}
