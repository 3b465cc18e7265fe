package usecase

import (
	"context"
	"regexp"

	"voice-srv/internal/model"
	"voice-srv/internal/platform"
)

// Platform names map straight to filenames; keep them boring.
var nameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// GetConfig returns a platform's configuration document. Unknown platforms
// get an empty mapping.
func (uc *implUseCase) GetConfig(ctx context.Context, _ model.Scope, name string) (platform.GetConfigOutput, error) {
	if name == "" {
		name = platform.GenericPlatform
	}
	if !nameRe.MatchString(name) {
		return platform.GetConfigOutput{}, platform.ErrInvalidName
	}

	config, err := uc.repo.GetConfig(ctx, name)
	if err != nil {
		uc.l.Errorf(ctx, "platform.usecase.GetConfig: %v", err)
		return platform.GetConfigOutput{}, err
	}

	return platform.GetConfigOutput{Name: name, Config: config}, nil
}
