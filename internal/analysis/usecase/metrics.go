package usecase

import (
	"strings"

	"voice-srv/internal/model"

	"github.com/abadojack/whatlanggo"
)

const languageUnknown = "unknown"

// calculateMetrics measures a body of text. Zero-word input yields zero
// counts apart from character length, with an unknown language.
func calculateMetrics(text string) model.TextMetrics {
	words := strings.Fields(text)
	if len(words) == 0 {
		// Whitespace still counts toward character length.
		return model.TextMetrics{CharacterCount: len(text), Language: languageUnknown}
	}

	wordCount := len(words)
	sentenceCount := countSentences(text)

	// Guard against fragment-only text; a text with words but no period
	// still counts as one sentence.
	effectiveSentences := sentenceCount
	if effectiveSentences < 1 {
		effectiveSentences = 1
	}
	avgSentenceLength := float64(wordCount) / float64(effectiveSentences)

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}
	syllablesPerWord := float64(syllables) / float64(wordCount)

	return model.TextMetrics{
		WordCount:          wordCount,
		CharacterCount:     len(text),
		SentenceCount:      sentenceCount,
		AvgSentenceLength:  avgSentenceLength,
		FleschReadingEase:  206.835 - 1.015*avgSentenceLength - 84.6*syllablesPerWord,
		FleschKincaidGrade: 0.39*avgSentenceLength + 11.8*syllablesPerWord - 15.59,
		Language:           detectLanguage(text),
	}
}

// countSentences counts period-terminated fragments with actual content.
// Sentences ending only in "!" or "?" are undercounted; the tone thresholds
// are tuned against this rule, so it stays.
func countSentences(text string) int {
	count := 0
	for _, fragment := range strings.Split(text, ".") {
		if strings.TrimSpace(fragment) != "" {
			count++
		}
	}
	return count
}

// countSyllables estimates syllables by counting vowel groups, dropping a
// trailing silent e. Every word counts at least one.
func countSyllables(word string) int {
	var letters strings.Builder
	for _, r := range strings.ToLower(word) {
		if r >= 'a' && r <= 'z' {
			letters.WriteRune(r)
		}
	}
	cleaned := letters.String()
	if cleaned == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range cleaned {
		isVowel := strings.ContainsRune("aeiouy", r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(cleaned, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// detectLanguage returns the ISO 639-1 code of the detected language, or
// "unknown" when detection is unreliable. Never fails.
func detectLanguage(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return languageUnknown
	}
	code := info.Lang.Iso6391()
	if code == "" {
		return languageUnknown
	}
	return code
}
