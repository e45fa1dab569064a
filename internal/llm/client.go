package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// Client is an abstraction over LLM providers
type Client interface {
	// GenerateContent generates text content from a single user prompt
	GenerateContent(ctx context.Context, prompt string) (string, error)
	// GetModel returns the underlying provider model (for direct access if needed)
	GetModel() string
	// Close releases any resources held by the client
	Close() error
}

// NewClient creates a new LLM client based on configuration
func NewClient(config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGroq:
		return NewGroqClient(config, apiKey)
	// case ProviderOpenAI:
	//     return NewOpenAIClient(config, apiKey)
	default:
		return NewGroqClient(config, apiKey)
	}
}

// GroqClient implements Client for Groq's OpenAI-compatible API
type GroqClient struct {
	client openai.Client
	config *Config
}

// NewGroqClient creates a new Groq client
func NewGroqClient(config *Config, apiKey string) (*GroqClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}
	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	return &GroqClient{
		client: openai.NewClient(opts...),
		config: config,
	}, nil
}

// GenerateContent generates text content from a single user prompt
func (c *GroqClient) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if c.config.Model == "" {
		return "", fmt.Errorf("no model configured")
	}

	req := openai.ChatCompletionNewParams{
		Model: c.config.Model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if c.config.MaxTokens > 0 {
		req.MaxCompletionTokens = openai.Int(int64(c.config.MaxTokens))
	}
	if c.config.Temperature > 0 {
		req.Temperature = openai.Float(c.config.Temperature)
	}

	resp, err := c.client.Chat.Completions.New(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return extractContent(resp)
}

// GetModel returns the configured model name
func (c *GroqClient) GetModel() string {
	return c.config.Model
}

// Close releases resources held by the client
func (c *GroqClient) Close() error {
	return nil
}

// extractContent extracts text from a chat completion response
func extractContent(resp *openai.ChatCompletion) (string, error) {
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("no content in response")
	}

	return content, nil
}
