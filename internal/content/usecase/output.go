package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"voice-srv/internal/content"
	"voice-srv/internal/model"
	"voice-srv/internal/output"
)

// Filenames map straight to paths or object keys; keep them boring.
var filenameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// SaveOutput writes generated content through the output sink.
func (uc *implUseCase) SaveOutput(ctx context.Context, _ model.Scope, input content.SaveOutputInput) (content.SaveOutputOutput, error) {
	if input.Category != content.CategoryDraft && input.Category != content.CategoryFinal {
		return content.SaveOutputOutput{}, content.ErrInvalidCategory
	}
	if !filenameRe.MatchString(input.Filename) {
		return content.SaveOutputOutput{}, content.ErrInvalidFilename
	}
	if strings.TrimSpace(input.Content) == "" {
		return content.SaveOutputOutput{}, content.ErrEmptyInput
	}

	path, err := uc.sink.Write(ctx, input.Category, input.Filename, input.Content)
	if err != nil {
		if errors.Is(err, output.ErrEmptyContent) {
			return content.SaveOutputOutput{}, content.ErrEmptyInput
		}
		uc.l.Errorf(ctx, "content.usecase.SaveOutput: %v", err)
		return content.SaveOutputOutput{}, err
	}

	return content.SaveOutputOutput{Path: path}, nil
}
