package guide

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jonathan/interview-prep/internal/llm"
	"github.com/jonathan/interview-prep/internal/metrics"
	"github.com/jonathan/interview-prep/internal/prompts"
)

// Generator produces interview guides from research facts using an LLM
type Generator struct {
	client llm.Client
	log    zerolog.Logger
}

// NewGenerator creates a Generator backed by the given LLM client
func NewGenerator(client llm.Client, log zerolog.Logger) *Generator {
	return &Generator{
		client: client,
		log:    log.With().Str("component", "generator").Logger(),
	}
}

// Generate renders the interview guide prompt and asks the model to complete it.
// The returned guide is markdown with surrounding whitespace trimmed.
func (g *Generator) Generate(ctx context.Context, companyName, jobRole, facts string) (string, error) {
	template := prompts.MustGet(prompts.FileInterviewGuide, prompts.KeyInterviewGuide)
	prompt := prompts.Format(template, map[string]string{
		"CompanyName": companyName,
		"JobRole":     jobRole,
		"Facts":       facts,
	})

	start := time.Now()
	content, err := g.client.GenerateContent(ctx, prompt)
	if err != nil {
		metrics.RecordGeneration(metrics.OutcomeFailed, time.Since(start))
		return "", fmt.Errorf("generating guide content: %w", err)
	}

	guide := strings.TrimSpace(content)
	if guide == "" {
		metrics.RecordGeneration(metrics.OutcomeEmpty, time.Since(start))
		return "", fmt.Errorf("model returned an empty guide")
	}

	metrics.RecordGeneration(metrics.OutcomeOK, time.Since(start))
	g.log.Debug().
		Str("model", g.client.GetModel()).
		Int("guide_chars", len(guide)).
		Dur("duration", time.Since(start)).
		Msg("generated interview guide")
	return guide, nil
}
