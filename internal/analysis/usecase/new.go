package usecase

import (
	"time"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/repository"
	"voice-srv/pkg/log"
)

type implUseCase struct {
	l           log.Logger
	corpusRepo  repository.CorpusRepository
	profileRepo repository.ProfileRepository
	runRepo     repository.RunRepository
	producer    analysis.Producer
	clock       func() time.Time
}

var _ analysis.UseCase = &implUseCase{}

// New creates the analysis use case. producer may be nil in sync-only
// deployments; Enqueue then fails fast.
func New(
	l log.Logger,
	corpusRepo repository.CorpusRepository,
	profileRepo repository.ProfileRepository,
	runRepo repository.RunRepository,
	producer analysis.Producer,
) analysis.UseCase {
	return &implUseCase{
		l:           l,
		corpusRepo:  corpusRepo,
		profileRepo: profileRepo,
		runRepo:     runRepo,
		producer:    producer,
		clock:       time.Now,
	}
}
