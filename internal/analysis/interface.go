package analysis

import (
	"context"

	"voice-srv/internal/model"

	"github.com/google/uuid"
)

// UseCase is the analysis business logic.
type UseCase interface {
	// Analyze reads the corpus, extracts the voice profile, records the run
	// and, unless GenerateGuidelines is false, persists the profile.
	Analyze(ctx context.Context, sc model.Scope, input AnalyzeInput) (AnalyzeOutput, error)
	// Enqueue records a pending run and publishes it as an async job.
	Enqueue(ctx context.Context, sc model.Scope, input AnalyzeInput) (EnqueueOutput, error)
	// ExecuteRun performs a previously enqueued run. Called by the consumer.
	ExecuteRun(ctx context.Context, msg JobMessage) error
	// GetProfile returns the stored profile, empty when never learned.
	GetProfile(ctx context.Context, sc model.Scope) (GetProfileOutput, error)
	// GetRun returns one run from the history.
	GetRun(ctx context.Context, sc model.Scope, id uuid.UUID) (model.AnalysisRun, error)
	// ListRuns pages through the run history, newest first.
	ListRuns(ctx context.Context, sc model.Scope, input ListRunsInput) (ListRunsOutput, error)
	// Extract computes the voice characteristics of a single text. Pure
	// function; identical input yields identical output.
	Extract(text string) model.VoiceCharacteristics
}

// Producer publishes analysis messages to the broker.
type Producer interface {
	PublishJob(ctx context.Context, msg JobMessage) error
	PublishResult(ctx context.Context, msg ResultMessage) error
}
