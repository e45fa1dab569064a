package main

import (
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServeCommand_MissingAPIKeys(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	// Unset API keys if set
	oldSerper := os.Getenv("SERPER_API_KEY")
	oldGroq := os.Getenv("GROQ_API_KEY")
	_ = os.Unsetenv("SERPER_API_KEY")
	_ = os.Unsetenv("GROQ_API_KEY")
	defer func() {
		if oldSerper != "" {
			_ = os.Setenv("SERPER_API_KEY", oldSerper)
		}
		if oldGroq != "" {
			_ = os.Setenv("GROQ_API_KEY", oldGroq)
		}
	}()

	cmd := exec.Command(binaryPath, "serve")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "missing required environment variable")
}

func TestServeCommand_MissingGroqKey(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := getBinaryPath(t)

	oldGroq := os.Getenv("GROQ_API_KEY")
	_ = os.Unsetenv("GROQ_API_KEY")
	defer func() {
		if oldGroq != "" {
			_ = os.Setenv("GROQ_API_KEY", oldGroq)
		}
	}()

	cmd := exec.Command(binaryPath, "serve")
	cmd.Env = append(os.Environ(), "SERPER_API_KEY=test-key")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "missing required environment variable GROQ_API_KEY")
}
