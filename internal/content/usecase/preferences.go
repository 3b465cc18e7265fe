package usecase

import (
	"voice-srv/internal/content"
	"voice-srv/internal/platform"
)

func stringPref(prefs map[string]any, key, fallback string) string {
	if v, ok := prefs[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func boolPref(prefs map[string]any, key string) bool {
	v, _ := prefs[key].(bool)
	return v
}

// articulationPreferences normalizes an elicited preference map, applying
// the schema defaults for anything missing.
func articulationPreferences(prefs map[string]any) content.ArticulationPreferences {
	return content.ArticulationPreferences{
		TargetPlatform:  stringPref(prefs, "target_platform", platform.GenericPlatform),
		TonePreference:  stringPref(prefs, "tone_preference", "maintain_original"),
		ContentLength:   stringPref(prefs, "content_length", "optimal"),
		IncludeExamples: boolPref(prefs, "include_examples"),
		IncludeCTA:      boolPref(prefs, "include_cta"),
		AudienceLevel:   stringPref(prefs, "audience_level", "general"),
	}
}

// optimizationPreferences normalizes an elicited preference map. The target
// platform has no default; callers must validate it.
func optimizationPreferences(prefs map[string]any) content.OptimizationPreferences {
	return content.OptimizationPreferences{
		TargetPlatform:   stringPref(prefs, "target_platform", ""),
		ContentFocus:     stringPref(prefs, "content_focus", "main_points"),
		EngagementStyle:  stringPref(prefs, "engagement_style", "moderate"),
		HashtagStrategy:  stringPref(prefs, "hashtag_strategy", "relevant"),
		FormatPreference: stringPref(prefs, "format_preference", "standard"),
	}
}
