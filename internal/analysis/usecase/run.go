package usecase

import (
	"context"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/repository"
	"voice-srv/internal/model"

	"github.com/google/uuid"
)

// GetRun returns one run from the history.
func (uc *implUseCase) GetRun(ctx context.Context, _ model.Scope, id uuid.UUID) (model.AnalysisRun, error) {
	run, err := uc.runRepo.Detail(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.GetRun: %v", err)
		return model.AnalysisRun{}, err
	}
	return run, nil
}

// ListRuns pages through the run history, newest first.
func (uc *implUseCase) ListRuns(ctx context.Context, _ model.Scope, input analysis.ListRunsInput) (analysis.ListRunsOutput, error) {
	input.PaginateQuery.Adjust()

	runs, pag, err := uc.runRepo.List(ctx, repository.ListRunsOptions{
		PaginateQuery: input.PaginateQuery,
		Status:        input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.ListRuns: %v", err)
		return analysis.ListRunsOutput{}, err
	}

	return analysis.ListRunsOutput{Runs: runs, Paginator: pag}, nil
}
