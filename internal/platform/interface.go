package platform

import (
	"context"

	"voice-srv/internal/model"
)

// UseCase is the platform configuration logic.
type UseCase interface {
	// GetConfig returns a platform's configuration. Unknown platforms get
	// an empty mapping, never an error.
	GetConfig(ctx context.Context, sc model.Scope, name string) (GetConfigOutput, error)
}
