package usecase

import (
	"strings"

	"voice-srv/internal/model"
)

const (
	toneFormal         = "formal"
	toneCasual         = "casual"
	toneConversational = "conversational"

	structureComplex = "complex"
	structureSimple  = "simple"

	engagementHigh     = "high"
	engagementModerate = "moderate"
)

// countToneIndicators counts the surface signals tone classification keys on.
func countToneIndicators(text string) model.ToneIndicators {
	indicators := model.ToneIndicators{
		Questions:    strings.Count(text, "?"),
		Exclamations: strings.Count(text, "!"),
	}

	for _, token := range strings.Fields(text) {
		if strings.Contains(token, "'") {
			indicators.Contractions++
		}
	}

	for _, token := range strings.Fields(strings.ToLower(text)) {
		switch token {
		case "i", "me", "my", "mine":
			indicators.FirstPersonUsage++
		case "you", "your", "yours":
			indicators.SecondPersonUsage++
		}
	}
	return indicators
}

// classifyTone maps average sentence length and tone indicators to a tone
// classification. First match wins; comparisons are strict.
func classifyTone(avgSentenceLength float64, indicators model.ToneIndicators) model.ToneAnalysis {
	tone := toneConversational
	switch {
	case avgSentenceLength > 20 && indicators.Contractions < 3:
		tone = toneFormal
	case avgSentenceLength < 12 && indicators.Contractions > 5:
		tone = toneCasual
	}

	structure := structureSimple
	if avgSentenceLength > 18 {
		structure = structureComplex
	}

	engagement := engagementModerate
	if indicators.Questions > 0 {
		engagement = engagementHigh
	}

	return model.ToneAnalysis{
		PrimaryTone:       tone,
		EngagementStyle:   engagement,
		SentenceStructure: structure,
	}
}

// extractCharacteristics computes the full voice characteristics of a text.
func extractCharacteristics(text string) model.VoiceCharacteristics {
	metrics := calculateMetrics(text)
	indicators := countToneIndicators(text)
	return model.VoiceCharacteristics{
		ToneAnalysis:   classifyTone(metrics.AvgSentenceLength, indicators),
		WritingMetrics: metrics,
		ToneIndicators: indicators,
	}
}

// Extract computes the voice characteristics of a single text.
func (uc *implUseCase) Extract(text string) model.VoiceCharacteristics {
	return extractCharacteristics(text)
}
