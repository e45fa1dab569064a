// Package config provides configuration loading and validation for the
// interview prep assistant. Configuration is read from the environment once
// at startup and passed explicitly to the components that need it; nothing
// reads the environment after FromEnv returns.
package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variable names read by FromEnv.
const (
	EnvSerperAPIKey  = "SERPER_API_KEY"
	EnvGroqAPIKey    = "GROQ_API_KEY"
	EnvSerperBaseURL = "SERPER_BASE_URL"
	EnvGroqBaseURL   = "GROQ_BASE_URL"
	EnvGroqModel     = "GROQ_MODEL"
)

// Defaults for the optional overrides.
const (
	DefaultSerperBaseURL = "https://google.serper.dev"
	DefaultGroqBaseURL   = "https://api.groq.com/openai/v1"
	DefaultGroqModel     = "llama-3.3-70b-versatile"
)

// Config holds the runtime configuration. Both API keys are required; the
// remaining fields carry defaults and exist so tests and self-hosted
// deployments can point the clients elsewhere.
type Config struct {
	// SerperAPIKey authenticates against the web search provider.
	SerperAPIKey string
	// GroqAPIKey authenticates against the completion provider.
	GroqAPIKey string
	// SerperBaseURL is the search provider endpoint base.
	SerperBaseURL string
	// GroqBaseURL is the OpenAI-compatible completion endpoint base.
	GroqBaseURL string
	// GroqModel is the completion model identifier.
	GroqModel string
}

// MissingKeyError reports a required credential absent from the environment.
type MissingKeyError struct {
	Var string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("missing required environment variable %s", e.Var)
}

// FromEnv builds a Config from the process environment and validates it.
// Returns a MissingKeyError if either required API key is absent or empty.
func FromEnv() (Config, error) {
	cfg := Config{
		SerperAPIKey:  strings.TrimSpace(os.Getenv(EnvSerperAPIKey)),
		GroqAPIKey:    strings.TrimSpace(os.Getenv(EnvGroqAPIKey)),
		SerperBaseURL: envOr(EnvSerperBaseURL, DefaultSerperBaseURL),
		GroqBaseURL:   envOr(EnvGroqBaseURL, DefaultGroqBaseURL),
		GroqModel:     envOr(EnvGroqModel, DefaultGroqModel),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks that both required credentials are present.
func (c Config) Validate() error {
	if c.SerperAPIKey == "" {
		return &MissingKeyError{Var: EnvSerperAPIKey}
	}
	if c.GroqAPIKey == "" {
		return &MissingKeyError{Var: EnvGroqAPIKey}
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
