package usecase

import (
	"voice-srv/internal/platform"
	"voice-srv/internal/platform/repository"
	"voice-srv/pkg/log"
)

type implUseCase struct {
	l    log.Logger
	repo repository.ConfigRepository
}

var _ platform.UseCase = &implUseCase{}

// New creates the platform use case.
func New(l log.Logger, repo repository.ConfigRepository) platform.UseCase {
	return &implUseCase{l: l, repo: repo}
}
