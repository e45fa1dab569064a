// Package llm provides centralized LLM configuration and client abstractions.
// This package targets Groq's OpenAI-compatible API and enables future multi-provider support.
package llm

// Provider represents an LLM provider
type Provider string

// Provider constants define supported LLM providers
const (
	// ProviderGroq is the Groq provider (OpenAI-compatible API)
	ProviderGroq Provider = "groq"
	// ProviderOpenAI is the OpenAI provider (future)
	ProviderOpenAI Provider = "openai"
)

// Default generation parameters for interview guide output
const (
	// DefaultModel is the Groq-hosted model used for guide generation
	DefaultModel = "llama-3.3-70b-versatile"
	// DefaultBaseURL is the Groq OpenAI-compatible endpoint
	DefaultBaseURL = "https://api.groq.com/openai/v1"
	// DefaultTemperature is the sampling temperature for guide generation
	DefaultTemperature = 0.6
	// DefaultMaxTokens caps completion length for a full seven-section guide
	DefaultMaxTokens = 1024
)

// Config holds the model configuration for the application
type Config struct {
	Provider    Provider
	Model       string
	BaseURL     string
	Temperature float64
	MaxTokens   int
}

// DefaultConfig returns the default configuration (currently Groq)
func DefaultConfig() *Config {
	return DefaultGroqConfig()
}

// DefaultGroqConfig returns the default Groq configuration
func DefaultGroqConfig() *Config {
	return &Config{
		Provider:    ProviderGroq,
		Model:       DefaultModel,
		BaseURL:     DefaultBaseURL,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}
