package content

import (
	"context"

	"voice-srv/internal/model"
)

// UseCase prepares generation request payloads and stores generated output.
type UseCase interface {
	// Articulate prepares an articulation payload for the given content.
	Articulate(ctx context.Context, sc model.Scope, input ArticulateInput) (ArticulateOutput, error)
	// Optimize prepares a platform-optimization payload.
	Optimize(ctx context.Context, sc model.Scope, input OptimizeInput) (OptimizeOutput, error)
	// SaveOutput writes generated content through the output sink.
	SaveOutput(ctx context.Context, sc model.Scope, input SaveOutputInput) (SaveOutputOutput, error)
}

// GenerationPublisher hands prepared payloads to the generation worker.
type GenerationPublisher interface {
	PublishArticulation(ctx context.Context, payload ArticulationPayload) error
	PublishOptimization(ctx context.Context, payload OptimizationPayload) error
}
