package usecase

import (
	"testing"

	"voice-srv/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCountToneIndicators(t *testing.T) {
	t.Parallel()

	got := countToneIndicators("Don't you think I'm right? You know my style!")
	assert.Equal(t, 2, got.Contractions)
	assert.Equal(t, 1, got.Questions)
	assert.Equal(t, 1, got.Exclamations)
	assert.Equal(t, 1, got.FirstPersonUsage)
	assert.Equal(t, 2, got.SecondPersonUsage)
}

func TestCountToneIndicatorsPronounsAreExactTokens(t *testing.T) {
	t.Parallel()

	// Pronouns with trailing punctuation are not counted; that is how the
	// tone thresholds were tuned.
	got := countToneIndicators("Give it to me, not to you.")
	assert.Equal(t, 0, got.FirstPersonUsage)
	assert.Equal(t, 0, got.SecondPersonUsage)
}

func TestClassifyTone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		avg            float64
		indicators     model.ToneIndicators
		wantTone       string
		wantStructure  string
		wantEngagement string
	}{
		{
			name:           "formal above both thresholds",
			avg:            21,
			indicators:     model.ToneIndicators{Contractions: 0},
			wantTone:       "formal",
			wantStructure:  "complex",
			wantEngagement: "moderate",
		},
		{
			name:           "casual below both thresholds",
			avg:            10,
			indicators:     model.ToneIndicators{Contractions: 6},
			wantTone:       "casual",
			wantStructure:  "simple",
			wantEngagement: "moderate",
		},
		{
			name:           "middle ground is conversational",
			avg:            15,
			indicators:     model.ToneIndicators{Contractions: 4},
			wantTone:       "conversational",
			wantStructure:  "simple",
			wantEngagement: "moderate",
		},
		{
			name:           "avg exactly 20 is not formal",
			avg:            20,
			indicators:     model.ToneIndicators{Contractions: 0},
			wantTone:       "conversational",
			wantStructure:  "complex",
			wantEngagement: "moderate",
		},
		{
			name:           "avg exactly 12 is not casual",
			avg:            12,
			indicators:     model.ToneIndicators{Contractions: 9},
			wantTone:       "conversational",
			wantStructure:  "simple",
			wantEngagement: "moderate",
		},
		{
			name:           "contractions exactly 3 block formal",
			avg:            25,
			indicators:     model.ToneIndicators{Contractions: 3},
			wantTone:       "conversational",
			wantStructure:  "complex",
			wantEngagement: "moderate",
		},
		{
			name:           "avg exactly 18 is simple",
			avg:            18,
			indicators:     model.ToneIndicators{},
			wantTone:       "conversational",
			wantStructure:  "simple",
			wantEngagement: "moderate",
		},
		{
			name:           "any question raises engagement",
			avg:            15,
			indicators:     model.ToneIndicators{Questions: 1},
			wantTone:       "conversational",
			wantStructure:  "simple",
			wantEngagement: "high",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := classifyTone(tt.avg, tt.indicators)
			assert.Equal(t, tt.wantTone, got.PrimaryTone)
			assert.Equal(t, tt.wantStructure, got.SentenceStructure)
			assert.Equal(t, tt.wantEngagement, got.EngagementStyle)
		})
	}
}

func TestExtractCharacteristicsFormalText(t *testing.T) {
	t.Parallel()

	// 21 words, one sentence, no contractions.
	text := "The committee convened to deliberate upon the proposed amendments " +
		"regarding infrastructure allocation throughout the metropolitan region " +
		"during the fiscal budget year."

	got := extractCharacteristics(text)
	assert.Equal(t, 21, got.WritingMetrics.WordCount)
	assert.InDelta(t, 21, got.WritingMetrics.AvgSentenceLength, 1e-9)
	assert.Equal(t, "formal", got.ToneAnalysis.PrimaryTone)
	assert.Equal(t, "complex", got.ToneAnalysis.SentenceStructure)
}

func TestExtractCharacteristicsCasualText(t *testing.T) {
	t.Parallel()

	// Two 10-word sentences, six contractions.
	text := "I can't believe it's already done and we're so glad. " +
		"Don't worry it'll be fine because you're totally right today."

	got := extractCharacteristics(text)
	assert.Equal(t, 20, got.WritingMetrics.WordCount)
	assert.Equal(t, 2, got.WritingMetrics.SentenceCount)
	assert.Equal(t, 6, got.ToneIndicators.Contractions)
	assert.Equal(t, "casual", got.ToneAnalysis.PrimaryTone)
}

func TestExtractCharacteristicsIsDeterministic(t *testing.T) {
	t.Parallel()

	text := "Same input, same output. Every single time, no exceptions."
	assert.Equal(t, extractCharacteristics(text), extractCharacteristics(text))
}
