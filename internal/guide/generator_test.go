package guide

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLLM implements llm.Client and records every prompt it receives
type fakeLLM struct {
	mu      sync.Mutex
	prompts []string
	reply   string
	err     error
}

func (f *fakeLLM) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.mu.Lock()
	f.prompts = append(f.prompts, prompt)
	f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeLLM) GetModel() string { return "fake-model" }
func (f *fakeLLM) Close() error     { return nil }

func (f *fakeLLM) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

func (f *fakeLLM) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func TestGenerate_RendersPromptPlaceholders(t *testing.T) {
	client := &fakeLLM{reply: "# Guide"}
	gen := NewGenerator(client, zerolog.Nop())

	_, err := gen.Generate(context.Background(), "Acme", "Data Scientist", "- [A](https://a.example) — snippet")
	require.NoError(t, err)

	prompt := client.lastPrompt()
	assert.Contains(t, prompt, "**Data Scientist** role at **Acme**")
	assert.Contains(t, prompt, "- [A](https://a.example) — snippet")
	assert.Contains(t, prompt, "## 1. Company Overview")
	assert.Contains(t, prompt, "## 7. Final Summary (Easy-to-Understand)")
	assert.NotContains(t, prompt, "{{.CompanyName}}")
	assert.NotContains(t, prompt, "{{.JobRole}}")
	assert.NotContains(t, prompt, "{{.Facts}}")
}

func TestGenerate_TrimsWhitespace(t *testing.T) {
	client := &fakeLLM{reply: "\n\n# Interview Guide\n\nBe confident.\n\n"}
	gen := NewGenerator(client, zerolog.Nop())

	guide, err := gen.Generate(context.Background(), "Acme", "Engineer", "facts")
	require.NoError(t, err)
	assert.Equal(t, "# Interview Guide\n\nBe confident.", guide)
}

func TestGenerate_EmptyCompletion(t *testing.T) {
	client := &fakeLLM{reply: "   \n\t  "}
	gen := NewGenerator(client, zerolog.Nop())

	_, err := gen.Generate(context.Background(), "Acme", "Engineer", "facts")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty guide")
}

func TestGenerate_ClientError(t *testing.T) {
	clientErr := errors.New("rate limited")
	client := &fakeLLM{err: clientErr}
	gen := NewGenerator(client, zerolog.Nop())

	_, err := gen.Generate(context.Background(), "Acme", "Engineer", "facts")
	require.Error(t, err)
	assert.ErrorIs(t, err, clientErr)
}

func TestGenerate_SameInputsSamePrompt(t *testing.T) {
	client := &fakeLLM{reply: "# Guide"}
	gen := NewGenerator(client, zerolog.Nop())

	_, err := gen.Generate(context.Background(), "Acme", "Engineer", "facts")
	require.NoError(t, err)
	_, err = gen.Generate(context.Background(), "Acme", "Engineer", "facts")
	require.NoError(t, err)

	require.Equal(t, 2, client.calls())
	assert.Equal(t, client.prompts[0], client.prompts[1])
	assert.False(t, strings.Contains(client.prompts[0], "{{."))
}
