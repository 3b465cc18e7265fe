package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateMetricsEmptyText(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", "\n\t "} {
		m := calculateMetrics(text)
		assert.Zero(t, m.WordCount)
		assert.Equal(t, len(text), m.CharacterCount)
		assert.Zero(t, m.SentenceCount)
		assert.Zero(t, m.AvgSentenceLength)
		assert.Zero(t, m.FleschReadingEase)
		assert.Zero(t, m.FleschKincaidGrade)
		assert.Equal(t, "unknown", m.Language)
	}
}

func TestCalculateMetricsCounts(t *testing.T) {
	t.Parallel()

	m := calculateMetrics("One two three. Four five.")
	assert.Equal(t, 5, m.WordCount)
	assert.Equal(t, 25, m.CharacterCount)
	assert.Equal(t, 2, m.SentenceCount)
	assert.InDelta(t, 2.5, m.AvgSentenceLength, 1e-9)
}

func TestCountSentences(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "periods", text: "One. Two. Three.", want: 3},
		{name: "trailing fragment", text: "One. Two", want: 2},
		{name: "no period", text: "no terminator here", want: 1},
		{name: "question and exclamation ignored", text: "Hello! Are you there?", want: 1},
		{name: "consecutive periods collapse", text: "Wait... what.", want: 2},
		{name: "empty", text: "", want: 0},
		{name: "only periods", text: "...", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, countSentences(tt.text))
		})
	}
}

func TestCountSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want int
	}{
		{word: "cat", want: 1},
		{word: "cake", want: 1},
		{word: "beautiful", want: 3},
		{word: "rhythm", want: 1},
		{word: "the", want: 1},
		{word: "syllable", want: 2},
		{word: "Hello,", want: 2},
		{word: "123", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, countSyllables(tt.word))
		})
	}
}

func TestCalculateMetricsReadability(t *testing.T) {
	t.Parallel()

	// 5 words, 1 sentence, 5 syllables.
	m := calculateMetrics("The cat sat on mats.")
	assert.InDelta(t, 206.835-1.015*5-84.6*1, m.FleschReadingEase, 1e-9)
	assert.InDelta(t, 0.39*5+11.8*1-15.59, m.FleschKincaidGrade, 1e-9)
}

func TestDetectLanguageEnglish(t *testing.T) {
	t.Parallel()

	text := "This is a plain English paragraph written with enough ordinary " +
		"words that the trigram model has no trouble recognising the language " +
		"it was written in."
	assert.Equal(t, "en", detectLanguage(text))
}

func TestDetectLanguageUnreliable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unknown", detectLanguage("qzx"))
}
