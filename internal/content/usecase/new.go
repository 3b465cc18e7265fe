package usecase

import (
	"voice-srv/internal/analysis"
	"voice-srv/internal/content"
	"voice-srv/internal/output"
	"voice-srv/internal/platform"
	"voice-srv/pkg/log"
)

type implUseCase struct {
	l          log.Logger
	analysisUC analysis.UseCase
	platformUC platform.UseCase
	sink       output.Sink
	publisher  content.GenerationPublisher
}

var _ content.UseCase = &implUseCase{}

// New creates the content use case. publisher may be nil; prepared payloads
// are then only returned to the caller.
func New(
	l log.Logger,
	analysisUC analysis.UseCase,
	platformUC platform.UseCase,
	sink output.Sink,
	publisher content.GenerationPublisher,
) content.UseCase {
	return &implUseCase{
		l:          l,
		analysisUC: analysisUC,
		platformUC: platformUC,
		sink:       sink,
		publisher:  publisher,
	}
}
