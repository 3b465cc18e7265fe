package usecase

import (
	"context"
	"strings"

	"voice-srv/internal/content"
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
)

// Optimize prepares a platform-optimization payload. The target platform is
// required; everything else falls back to schema defaults.
func (uc *implUseCase) Optimize(ctx context.Context, sc model.Scope, input content.OptimizeInput) (content.OptimizeOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return content.OptimizeOutput{}, content.ErrEmptyInput
	}

	outcome, err := input.Elicitor.Elicit(ctx, elicit.Request{
		Message: "Which platform should this content be optimized for?",
		Schema:  "optimization_preferences",
	})
	if err != nil {
		uc.l.Errorf(ctx, "content.usecase.Optimize: elicit: %v", err)
		return content.OptimizeOutput{}, err
	}
	switch outcome.Action {
	case elicit.ActionDecline:
		return content.OptimizeOutput{}, content.ErrDeclined
	case elicit.ActionCancel:
		return content.OptimizeOutput{}, content.ErrCancelled
	}

	prefs := optimizationPreferences(outcome.Preferences)
	if prefs.TargetPlatform == "" {
		return content.OptimizeOutput{}, content.ErrMissingPlatform
	}

	profile, platformConfig, err := uc.loadContext(ctx, sc, prefs.TargetPlatform)
	if err != nil {
		return content.OptimizeOutput{}, err
	}

	payload := content.OptimizationPayload{
		OriginalContent: input.Content,
		TargetPlatform:  prefs.TargetPlatform,
		Preferences:     prefs,
		VoicePatterns:   profile,
		PlatformConfig:  platformConfig,
		ContentAnalysis: uc.analysisUC.Extract(input.Content),
		Instructions: content.OptimizationInstructions{
			MaintainVoice:     true,
			AdaptFormat:       true,
			OptimizeLength:    true,
			EnhanceEngagement: true,
		},
	}

	published := uc.publishOptimization(ctx, payload)
	return content.OptimizeOutput{Payload: payload, Published: published}, nil
}

func (uc *implUseCase) publishOptimization(ctx context.Context, payload content.OptimizationPayload) bool {
	if uc.publisher == nil {
		return false
	}
	if err := uc.publisher.PublishOptimization(ctx, payload); err != nil {
		uc.l.Errorf(ctx, "content.usecase.publishOptimization: %v", err)
		return false
	}
	return true
}
