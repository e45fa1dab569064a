// Package main provides the entry point for the interview prep assistant.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jonathan/interview-prep/internal/config"
	"github.com/jonathan/interview-prep/internal/guide"
	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/search"
)

var rootCmd = &cobra.Command{
	Use:   "prep_agent",
	Short: "AI Interview Preparation Assistant",
	Long:  "Researches a company on the web and generates a structured, role-specific interview preparation guide using an LLM, served through a web UI or the command line.",
}

var rootVerbose bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print detailed debug information")
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if rootVerbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	return zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// buildService wires the search and LLM clients into a guide service.
// The returned client must be closed when the service is no longer needed.
func buildService(cfg config.Config, log zerolog.Logger) (*guide.Service, llm.Client, error) {
	searchClient := search.NewClient(cfg.SerperAPIKey, search.WithBaseURL(cfg.SerperBaseURL))

	llmConfig := llm.DefaultConfig()
	llmConfig.Model = cfg.GroqModel
	llmConfig.BaseURL = cfg.GroqBaseURL

	llmClient, err := llm.NewClient(llmConfig, cfg.GroqAPIKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	service := guide.NewService(searchClient, guide.NewGenerator(llmClient, log), log)
	return service, llmClient, nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
