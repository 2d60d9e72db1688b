package relay

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

// DefaultTimeout bounds a single provider call.
const DefaultTimeout = 60 * time.Second

// ErrNoAPIKey is returned when neither the request nor the configuration
// carries a provider key.
var ErrNoAPIKey = errors.New("provider API key not configured")

// Provider produces text for a prompt.
type Provider interface {
	Complete(ctx context.Context, prompt, apiKey string) (string, error)
	Name() string
}

// ProviderConfig configures an OpenAI-compatible chat completions provider.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// OpenAIProvider talks to any OpenAI-compatible chat completions endpoint.
type OpenAIProvider struct {
	config ProviderConfig
}

// NewOpenAIProvider creates a provider with the given configuration.
func NewOpenAIProvider(config ProviderConfig) *OpenAIProvider {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return &OpenAIProvider{config: config}
}

// Name identifies the provider in relay responses.
func (p *OpenAIProvider) Name() string {
	return "openai:" + p.config.Model
}

// Complete sends prompt as a single user message. A non-empty apiKey
// overrides the configured key for this call.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt, apiKey string) (string, error) {
	if apiKey == "" {
		apiKey = p.config.APIKey
	}
	if apiKey == "" {
		return "", ErrNoAPIKey
	}

	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	resp, err := p.client(apiKey).CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in provider response")
	}

	return resp.Choices[0].Message.Content, nil
}

func (p *OpenAIProvider) client(apiKey string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if p.config.BaseURL != "" {
		cfg.BaseURL = p.config.BaseURL
	}
	return openai.NewClientWithConfig(cfg)
}
