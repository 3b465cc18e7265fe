package file

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"voice-srv/internal/model"
	"voice-srv/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() log.Logger {
	return log.Init(log.ZapConfig{Level: "fatal"})
}

func sampleProfile() model.VoiceProfile {
	return model.VoiceProfile{
		Characteristics: model.VoiceCharacteristics{
			ToneAnalysis: model.ToneAnalysis{
				PrimaryTone:       "conversational",
				EngagementStyle:   "high",
				SentenceStructure: "simple",
			},
			WritingMetrics: model.TextMetrics{
				WordCount:         42,
				CharacterCount:    230,
				SentenceCount:     5,
				AvgSentenceLength: 8.4,
				Language:          "en",
			},
			ToneIndicators: model.ToneIndicators{Contractions: 3, Questions: 2},
		},
		SampleBreakdown: []model.SampleAnalysis{
			{
				Sample:       "note.md",
				Source:       "posts",
				ToneAnalysis: model.ToneAnalysis{PrimaryTone: "casual", EngagementStyle: "high", SentenceStructure: "simple"},
				Metrics:      model.TextMetrics{WordCount: 42},
			},
		},
		AnalyzedAt: "2026-09-01T12:00:00Z",
	}
}

func TestProfileRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "voice_patterns.yaml")
	repo := NewProfileRepository(testLogger(), path)
	ctx := context.Background()

	want := sampleProfile()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestProfileLoadMissingIsEmpty(t *testing.T) {
	t.Parallel()

	repo := NewProfileRepository(testLogger(), filepath.Join(t.TempDir(), "nope.yaml"))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestProfileSaveReplacesWholesale(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "voice_patterns.yaml")
	repo := NewProfileRepository(testLogger(), path)
	ctx := context.Background()

	first := sampleProfile()
	require.NoError(t, repo.Save(ctx, first))

	second := sampleProfile()
	second.SampleBreakdown = nil
	second.AnalyzedAt = "2026-09-02T08:00:00Z"
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
	assert.Empty(t, got.SampleBreakdown)
}

func TestProfileSaveCreatesDirectoryAndLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "patterns")
	repo := NewProfileRepository(testLogger(), filepath.Join(dir, "voice_patterns.yaml"))

	require.NoError(t, repo.Save(context.Background(), sampleProfile()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "voice_patterns.yaml", entries[0].Name())
}

func TestProfileDocumentKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "voice_patterns.yaml")
	repo := NewProfileRepository(testLogger(), path)

	require.NoError(t, repo.Save(context.Background(), sampleProfile()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.Contains(text, "user_voice_characteristics:"))
	assert.True(t, strings.Contains(text, "sample_breakdown:"))
	assert.True(t, strings.Contains(text, "analyzed_at:"))
}
