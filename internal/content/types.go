package content

import (
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
)

// Output categories accepted by the sink.
const (
	CategoryDraft = "draft"
	CategoryFinal = "final"
)

// ArticulationPreferences control how content should be articulated.
type ArticulationPreferences struct {
	TargetPlatform  string `json:"target_platform"`
	TonePreference  string `json:"tone_preference"`
	ContentLength   string `json:"content_length"`
	IncludeExamples bool   `json:"include_examples"`
	IncludeCTA      bool   `json:"include_cta"`
	AudienceLevel   string `json:"audience_level"`
}

// OptimizationPreferences control platform optimization. TargetPlatform is
// required.
type OptimizationPreferences struct {
	TargetPlatform   string `json:"target_platform"`
	ContentFocus     string `json:"content_focus"`
	EngagementStyle  string `json:"engagement_style"`
	HashtagStrategy  string `json:"hashtag_strategy"`
	FormatPreference string `json:"format_preference"`
}

// ArticulationInstructions are the fixed flags sent to the generation worker.
type ArticulationInstructions struct {
	PreserveVoice        bool `json:"preserve_voice"`
	ImproveClarity       bool `json:"improve_clarity"`
	MaintainAuthenticity bool `json:"maintain_authenticity"`
	OptimizeForPlatform  bool `json:"optimize_for_platform"`
}

// OptimizationInstructions are the fixed flags sent to the generation worker.
type OptimizationInstructions struct {
	MaintainVoice     bool `json:"maintain_voice"`
	AdaptFormat       bool `json:"adapt_format"`
	OptimizeLength    bool `json:"optimize_length"`
	EnhanceEngagement bool `json:"enhance_engagement"`
}

// ArticulationPayload is the prepared articulation request. The service
// never generates text; this payload is handed to the generation worker.
type ArticulationPayload struct {
	OriginalContent string                     `json:"original_content"`
	TargetPlatform  string                     `json:"target_platform"`
	Preferences     ArticulationPreferences    `json:"preferences"`
	VoicePatterns   model.VoiceProfile         `json:"voice_patterns"`
	PlatformConfig  map[string]any             `json:"platform_config"`
	InputAnalysis   model.VoiceCharacteristics `json:"input_analysis"`
	Instructions    ArticulationInstructions   `json:"instructions"`
}

// OptimizationPayload is the prepared optimization request.
type OptimizationPayload struct {
	OriginalContent string                     `json:"original_content"`
	TargetPlatform  string                     `json:"target_platform"`
	Preferences     OptimizationPreferences    `json:"preferences"`
	VoicePatterns   model.VoiceProfile         `json:"voice_patterns"`
	PlatformConfig  map[string]any             `json:"platform_config"`
	ContentAnalysis model.VoiceCharacteristics `json:"content_analysis"`
	Instructions    OptimizationInstructions   `json:"instructions"`
}

// ArticulateInput carries the raw content and the elicitation boundary.
type ArticulateInput struct {
	Content  string
	Elicitor elicit.Elicitor
}

// ArticulateOutput is the prepared payload. Published reports whether it was
// also handed to the generation broker.
type ArticulateOutput struct {
	Payload   ArticulationPayload
	Published bool
}

// OptimizeInput carries the raw content and the elicitation boundary.
type OptimizeInput struct {
	Content  string
	Elicitor elicit.Elicitor
}

// OptimizeOutput is the prepared payload.
type OptimizeOutput struct {
	Payload   OptimizationPayload
	Published bool
}

// SaveOutputInput stores generated content through the output sink.
type SaveOutputInput struct {
	Category string
	Filename string
	Content  string
}

// SaveOutputOutput reports where the content was stored.
type SaveOutputOutput struct {
	Path string
}
