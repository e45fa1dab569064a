// Package guide provides the high-level orchestration for the interview preparation flow.
package guide

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/interview-prep/internal/search"
	"github.com/jonathan/interview-prep/internal/types"
)

// Step names for progress reporting
const (
	StepResearch = "research"
	StepInsights = "insights"
	StepGenerate = "generate"
	StepComplete = "complete"
)

// ProgressEvent represents a progress update during guide preparation
type ProgressEvent struct {
	Step      string `json:"step"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
	Content   string `json:"content,omitempty"`
}

// ProgressCallback is called when preparation progress occurs
type ProgressCallback func(event ProgressEvent)

// Searcher fetches a web research digest for a company and role
type Searcher interface {
	FetchCompanyDigest(ctx context.Context, companyName, jobRole string) search.Digest
}

// Result holds the artifacts of a preparation run
type Result struct {
	RequestID   string
	CompanyName string
	JobRole     string
	Digest      search.Digest
	Guide       string
}

// Service orchestrates research and guide generation.
// Preparation runs are serialized: a second submission waits until the
// active one finishes or its context is cancelled.
type Service struct {
	searcher  Searcher
	generator *Generator
	sem       *semaphore.Weighted
	log       zerolog.Logger
}

// NewService creates a Service wiring the searcher and generator together
func NewService(searcher Searcher, generator *Generator, log zerolog.Logger) *Service {
	return &Service{
		searcher:  searcher,
		generator: generator,
		sem:       semaphore.NewWeighted(1),
		log:       log.With().Str("component", "guide").Logger(),
	}
}

// emitProgress calls the progress callback if configured
func emitProgress(cb ProgressCallback, event ProgressEvent) {
	if cb != nil {
		cb(event)
	}
}

// Prepare runs the full flow: validate input, research the company on the
// web, then generate the interview guide from the collected facts.
//
// When research or generation fails, Prepare returns a typed error together
// with a non-nil Result carrying the stages that did complete, so callers
// can still show the research digest alongside the failure.
func (s *Service) Prepare(ctx context.Context, req types.PrepRequest, onProgress ProgressCallback) (*Result, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, &ErrInvalidInput{Err: err}
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for active preparation: %w", err)
	}
	defer s.sem.Release(1)

	result := &Result{
		RequestID:   uuid.New().String(),
		CompanyName: req.CompanyName,
		JobRole:     req.JobRole,
	}
	log := s.log.With().
		Str("request_id", result.RequestID).
		Str("company", req.CompanyName).
		Str("role", req.JobRole).
		Logger()

	emitProgress(onProgress, ProgressEvent{
		Step:      StepResearch,
		RequestID: result.RequestID,
		Message:   "Searching the web for company details...",
	})

	result.Digest = s.searcher.FetchCompanyDigest(ctx, req.CompanyName, req.JobRole)
	if result.Digest.Failed() {
		log.Error().Err(result.Digest.Err).Msg("company research failed")
		return result, &ErrResearchFailed{Err: result.Digest.Err}
	}

	emitProgress(onProgress, ProgressEvent{
		Step:      StepInsights,
		RequestID: result.RequestID,
		Message:   fmt.Sprintf("Collected %d web insights", len(result.Digest.Hits)),
		Content:   result.Digest.Markdown(),
	})

	emitProgress(onProgress, ProgressEvent{
		Step:      StepGenerate,
		RequestID: result.RequestID,
		Message:   "Generating your AI-based interview preparation guide...",
	})

	guide, err := s.generator.Generate(ctx, req.CompanyName, req.JobRole, result.Digest.Markdown())
	if err != nil {
		log.Error().Err(err).Msg("guide generation failed")
		return result, &ErrGenerationFailed{Err: err}
	}
	result.Guide = guide

	emitProgress(onProgress, ProgressEvent{
		Step:      StepComplete,
		RequestID: result.RequestID,
		Message:   "Interview preparation guide generated",
	})
	log.Info().Int("hits", len(result.Digest.Hits)).Int("guide_chars", len(guide)).Msg("prepared interview guide")

	return result, nil
}
