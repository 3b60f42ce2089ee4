package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const (
	EndpointChat      = "chat/completions"
	EndpointResponses = "responses"
)

// OpenAIProvider implements Provider for the OpenAI API and OpenAI-compatible servers.
type OpenAIProvider struct {
	client   openai.Client
	name     string
	model    string
	endpoint string // "responses" or "chat/completions"
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(apiKey, baseURL, model, endpoint string, httpClient *http.Client) (*OpenAIProvider, error) {
	// Default to chat completions if not specified
	if endpoint == "" {
		endpoint = EndpointChat
	}
	return newOpenAIProvider(ProviderOpenAI, apiKey, baseURL, model, endpoint, httpClient), nil
}

// NewCompatibleProvider creates a provider for servers that speak the OpenAI chat API.
func NewCompatibleProvider(apiKey, baseURL, model string, httpClient *http.Client) (*OpenAIProvider, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, ErrMissingBaseURL
	}
	return newOpenAIProvider(ProviderCompatible, apiKey, baseURL, model, EndpointChat, httpClient), nil
}

func newOpenAIProvider(name, apiKey, baseURL, model, endpoint string, httpClient *http.Client) *OpenAIProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}

	return &OpenAIProvider{
		client:   openai.NewClient(opts...),
		name:     name,
		model:    model,
		endpoint: endpoint,
	}
}

// Name returns the provider name.
func (p *OpenAIProvider) Name() string {
	return p.name
}

// Test sends a test message and returns the response.
func (p *OpenAIProvider) Test(ctx context.Context) (string, error) {
	return p.Complete(ctx, "", "Hello world")
}

// Complete generates a response without streaming.
func (p *OpenAIProvider) Complete(ctx context.Context, systemPrompt, content string) (string, error) {
	var (
		text string
		err  error
	)
	if p.endpoint == EndpointResponses {
		text, err = p.completeWithResponses(ctx, systemPrompt, content)
	} else {
		text, err = p.completeWithChat(ctx, systemPrompt, content)
	}
	if err != nil {
		return "", p.wrapError(err)
	}
	return text, nil
}

// completeWithResponses uses the Responses API for completion.
func (p *OpenAIProvider) completeWithResponses(ctx context.Context, systemPrompt, content string) (string, error) {
	inputItems := []responses.ResponseInputItemUnionParam{}
	if systemPrompt != "" {
		inputItems = append(inputItems, responses.ResponseInputItemParamOfMessage(systemPrompt, responses.EasyInputMessageRoleSystem))
	}
	inputItems = append(inputItems, responses.ResponseInputItemParamOfMessage(content, responses.EasyInputMessageRoleUser))

	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(p.model),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam(inputItems),
		},
	}

	resp, err := p.client.Responses.New(ctx, params)
	if err != nil {
		return "", err
	}

	// Only the first message item counts; later items are tool or reasoning output.
	for _, item := range resp.Output {
		if item.Type != "message" {
			continue
		}
		var result strings.Builder
		for _, part := range item.AsMessage().Content {
			if part.Type == "output_text" {
				result.WriteString(part.Text)
			}
		}
		return result.String(), nil
	}
	return "", ErrEmptyCompletion
}

// completeWithChat uses the Chat Completions API for completion.
func (p *OpenAIProvider) completeWithChat(ctx context.Context, systemPrompt, content string) (string, error) {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(content))

	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	})
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) wrapError(err error) error {
	upstream := &UpstreamError{Provider: p.name, Err: err}
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		upstream.Status = apiErr.StatusCode
		upstream.Body = apiErr.RawJSON()
	}
	return upstream
}
