package usecase

import (
	"context"

	"voice-srv/internal/analysis"
	"voice-srv/internal/model"
)

// GetProfile loads the stored voice profile. A never-learned profile is
// returned empty with Learned false.
func (uc *implUseCase) GetProfile(ctx context.Context, _ model.Scope) (analysis.GetProfileOutput, error) {
	profile, err := uc.profileRepo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.GetProfile: %v", err)
		return analysis.GetProfileOutput{}, err
	}

	return analysis.GetProfileOutput{
		Profile: profile,
		Learned: !profile.IsZero(),
	}, nil
}
