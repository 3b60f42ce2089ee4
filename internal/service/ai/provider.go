package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

const (
	ProviderOpenAI     = "openai"
	ProviderAnthropic  = "anthropic"
	ProviderCompatible = "compatible"
)

var (
	ErrMissingAPIKey   = errors.New("ai: api key is required")
	ErrMissingModel    = errors.New("ai: model is required")
	ErrMissingBaseURL  = errors.New("ai: base url is required for compatible provider")
	ErrInvalidProvider = errors.New("ai: unknown provider")
)

// Provider is a chat-completion backend.
type Provider interface {
	Name() string
	// Test sends a fixed probe message and returns the reply.
	Test(ctx context.Context) (string, error)
	// Complete runs one system+user exchange and returns the reply text.
	Complete(ctx context.Context, systemPrompt, content string) (string, error)
}

// Config describes one deployment's provider. The model is fixed per deployment.
type Config struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	// Endpoint is "chat/completions" or "responses"; only used by the openai provider.
	Endpoint string
	// HTTPClient overrides the SDK transport, e.g. for proxies. Optional.
	HTTPClient *http.Client
}

// NewProvider builds the provider described by cfg. An empty provider name means openai.
func NewProvider(cfg Config) (Provider, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, ErrMissingModel
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.Endpoint, cfg.HTTPClient)
	case ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient)
	case ProviderCompatible:
		if strings.TrimSpace(cfg.BaseURL) == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.HTTPClient)
	default:
		return nil, ErrInvalidProvider
	}
}
