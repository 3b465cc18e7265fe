package usecase

import (
	"context"
	"strings"

	"voice-srv/internal/content"
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
	"voice-srv/internal/platform"
)

// Articulate prepares an articulation payload. Declined or cancelled
// elicitations short-circuit before any analysis or load work.
func (uc *implUseCase) Articulate(ctx context.Context, sc model.Scope, input content.ArticulateInput) (content.ArticulateOutput, error) {
	if strings.TrimSpace(input.Content) == "" {
		return content.ArticulateOutput{}, content.ErrEmptyInput
	}

	outcome, err := input.Elicitor.Elicit(ctx, elicit.Request{
		Message: "How should this content be articulated?",
		Schema:  "articulation_preferences",
	})
	if err != nil {
		uc.l.Errorf(ctx, "content.usecase.Articulate: elicit: %v", err)
		return content.ArticulateOutput{}, err
	}
	switch outcome.Action {
	case elicit.ActionDecline:
		return content.ArticulateOutput{}, content.ErrDeclined
	case elicit.ActionCancel:
		return content.ArticulateOutput{}, content.ErrCancelled
	}

	prefs := articulationPreferences(outcome.Preferences)

	profile, platformConfig, err := uc.loadContext(ctx, sc, prefs.TargetPlatform)
	if err != nil {
		return content.ArticulateOutput{}, err
	}

	payload := content.ArticulationPayload{
		OriginalContent: input.Content,
		TargetPlatform:  prefs.TargetPlatform,
		Preferences:     prefs,
		VoicePatterns:   profile,
		PlatformConfig:  platformConfig,
		InputAnalysis:   uc.analysisUC.Extract(input.Content),
		Instructions: content.ArticulationInstructions{
			PreserveVoice:        true,
			ImproveClarity:       true,
			MaintainAuthenticity: true,
			OptimizeForPlatform:  prefs.TargetPlatform != platform.GenericPlatform,
		},
	}

	published := uc.publishArticulation(ctx, payload)
	return content.ArticulateOutput{Payload: payload, Published: published}, nil
}

// loadContext fetches the stored voice profile and the platform's config.
func (uc *implUseCase) loadContext(ctx context.Context, sc model.Scope, targetPlatform string) (model.VoiceProfile, map[string]any, error) {
	profileOut, err := uc.analysisUC.GetProfile(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "content.usecase.loadContext: load profile: %v", err)
		return model.VoiceProfile{}, nil, err
	}

	configOut, err := uc.platformUC.GetConfig(ctx, sc, targetPlatform)
	if err != nil {
		uc.l.Errorf(ctx, "content.usecase.loadContext: load platform config: %v", err)
		return model.VoiceProfile{}, nil, err
	}

	return profileOut.Profile, configOut.Config, nil
}

// publishArticulation is best-effort; the payload is still returned to the
// caller when the broker is down or not configured.
func (uc *implUseCase) publishArticulation(ctx context.Context, payload content.ArticulationPayload) bool {
	if uc.publisher == nil {
		return false
	}
	if err := uc.publisher.PublishArticulation(ctx, payload); err != nil {
		uc.l.Errorf(ctx, "content.usecase.publishArticulation: %v", err)
		return false
	}
	return true
}
