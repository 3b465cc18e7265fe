package analysis

import (
	"voice-srv/internal/model"
	"voice-srv/pkg/paginator"

	"github.com/google/uuid"
)

// Analysis depths. Comprehensive computes per-sample characteristics but
// keeps them out of the persisted breakdown; detailed includes them.
const (
	DepthBasic         = "basic"
	DepthComprehensive = "comprehensive"
	DepthDetailed      = "detailed"
)

// Sample is one readable writing sample pulled from the corpus, in corpus
// order.
type Sample struct {
	ID     string
	Source string
	Text   string
}

// AnalyzeInput carries the elicited analysis preferences.
type AnalyzeInput struct {
	Depth              string
	FocusAreas         []string
	IncludeExamples    bool
	GenerateGuidelines bool
	Async              bool
}

// AnalyzeOutput is the result of a synchronous analysis.
type AnalyzeOutput struct {
	Run             model.AnalysisRun
	Profile         model.VoiceProfile
	Recommendations []string
}

// EnqueueOutput is the result of scheduling an asynchronous analysis.
type EnqueueOutput struct {
	Run model.AnalysisRun
}

// GetProfileOutput wraps the stored profile with a learned flag so callers
// can tell an empty profile from a missing one.
type GetProfileOutput struct {
	Profile model.VoiceProfile
	Learned bool
}

// ListRunsInput filters the run history.
type ListRunsInput struct {
	PaginateQuery paginator.PaginateQuery
	Status        model.AnalysisStatus
}

// ListRunsOutput is one page of run history.
type ListRunsOutput struct {
	Runs      []model.AnalysisRun
	Paginator paginator.Paginator
}

// JobMessage is the Kafka payload scheduling an analysis run.
type JobMessage struct {
	RunID              uuid.UUID `json:"run_id"`
	Depth              string    `json:"depth"`
	FocusAreas         []string  `json:"focus_areas,omitempty"`
	GenerateGuidelines bool      `json:"generate_guidelines"`
}

// ResultMessage is the Kafka payload announcing a finished run.
type ResultMessage struct {
	RunID       uuid.UUID            `json:"run_id"`
	Status      model.AnalysisStatus `json:"status"`
	SampleCount int                  `json:"sample_count"`
	Error       string               `json:"error,omitempty"`
}
