package repository

import (
	"context"

	"voice-srv/internal/analysis"
	"voice-srv/internal/model"
	"voice-srv/pkg/paginator"

	"github.com/google/uuid"
)

// CorpusRepository yields the readable writing samples of the corpus, in a
// stable order. Unreadable samples are skipped, not surfaced.
type CorpusRepository interface {
	ListSamples(ctx context.Context) ([]analysis.Sample, error)
}

// ProfileRepository persists the voice profile document.
type ProfileRepository interface {
	// Save replaces the stored profile wholesale.
	Save(ctx context.Context, profile model.VoiceProfile) error
	// Load returns the stored profile. A profile that was never saved loads
	// as the zero profile without error.
	Load(ctx context.Context) (model.VoiceProfile, error)
}

// RunRepository records analysis runs.
type RunRepository interface {
	Create(ctx context.Context, opts CreateRunOptions) (model.AnalysisRun, error)
	Update(ctx context.Context, opts UpdateRunOptions) error
	Detail(ctx context.Context, id uuid.UUID) (model.AnalysisRun, error)
	List(ctx context.Context, opts ListRunsOptions) ([]model.AnalysisRun, paginator.Paginator, error)
}
