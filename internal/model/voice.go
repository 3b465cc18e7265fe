package model

// TextMetrics holds the statistical measurements of a body of text.
type TextMetrics struct {
	WordCount          int     `json:"word_count" yaml:"word_count"`
	CharacterCount     int     `json:"character_count" yaml:"character_count"`
	SentenceCount      int     `json:"sentence_count" yaml:"sentence_count"`
	AvgSentenceLength  float64 `json:"avg_sentence_length" yaml:"avg_sentence_length"`
	FleschReadingEase  float64 `json:"flesch_reading_ease" yaml:"flesch_reading_ease"`
	FleschKincaidGrade float64 `json:"flesch_kincaid_grade" yaml:"flesch_kincaid_grade"`
	Language           string  `json:"language" yaml:"language"`
}

// ToneIndicators counts the surface signals used for tone classification.
type ToneIndicators struct {
	Contractions      int `json:"contractions" yaml:"contractions"`
	Questions         int `json:"questions" yaml:"questions"`
	Exclamations      int `json:"exclamations" yaml:"exclamations"`
	FirstPersonUsage  int `json:"first_person_usage" yaml:"first_person_usage"`
	SecondPersonUsage int `json:"second_person_usage" yaml:"second_person_usage"`
}

// ToneAnalysis is the classified writing style of a corpus.
type ToneAnalysis struct {
	PrimaryTone       string `json:"primary_tone" yaml:"primary_tone"`
	EngagementStyle   string `json:"engagement_style" yaml:"engagement_style"`
	SentenceStructure string `json:"sentence_structure" yaml:"sentence_structure"`
}

// VoiceCharacteristics groups everything extracted from a writing corpus.
type VoiceCharacteristics struct {
	ToneAnalysis   ToneAnalysis   `json:"tone_analysis" yaml:"tone_analysis"`
	WritingMetrics TextMetrics    `json:"writing_metrics" yaml:"writing_metrics"`
	ToneIndicators ToneIndicators `json:"tone_indicators" yaml:"tone_indicators"`
}

// SampleAnalysis is the per-sample entry of a detailed breakdown. It carries
// the full characteristics of the sample, tone classification included.
type SampleAnalysis struct {
	Sample         string         `json:"sample" yaml:"sample"`
	Source         string         `json:"source,omitempty" yaml:"source,omitempty"`
	ToneAnalysis   ToneAnalysis   `json:"tone_analysis" yaml:"tone_analysis"`
	Metrics        TextMetrics    `json:"metrics" yaml:"metrics"`
	ToneIndicators ToneIndicators `json:"tone_indicators" yaml:"tone_indicators"`
}

// VoiceProfile is the persisted result of a voice analysis.
type VoiceProfile struct {
	Characteristics VoiceCharacteristics `json:"user_voice_characteristics" yaml:"user_voice_characteristics"`
	SampleBreakdown []SampleAnalysis     `json:"sample_breakdown,omitempty" yaml:"sample_breakdown,omitempty"`
	AnalyzedAt      string               `json:"analyzed_at" yaml:"analyzed_at"`
}

// IsZero reports whether the profile carries no analysis at all.
func (p VoiceProfile) IsZero() bool {
	return p.AnalyzedAt == "" && len(p.SampleBreakdown) == 0 &&
		p.Characteristics == (VoiceCharacteristics{})
}
