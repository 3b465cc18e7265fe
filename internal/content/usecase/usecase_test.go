package usecase

import (
	"context"
	"errors"
	"testing"

	"voice-srv/internal/analysis"
	"voice-srv/internal/content"
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
	"voice-srv/internal/platform"
	"voice-srv/pkg/log"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAnalysisUC struct {
	profile         model.VoiceProfile
	profileCalls    int
	characteristics model.VoiceCharacteristics
}

func (s *stubAnalysisUC) Analyze(context.Context, model.Scope, analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	return analysis.AnalyzeOutput{}, nil
}

func (s *stubAnalysisUC) Enqueue(context.Context, model.Scope, analysis.AnalyzeInput) (analysis.EnqueueOutput, error) {
	return analysis.EnqueueOutput{}, nil
}

func (s *stubAnalysisUC) ExecuteRun(context.Context, analysis.JobMessage) error { return nil }

func (s *stubAnalysisUC) GetProfile(context.Context, model.Scope) (analysis.GetProfileOutput, error) {
	s.profileCalls++
	return analysis.GetProfileOutput{Profile: s.profile, Learned: !s.profile.IsZero()}, nil
}

func (s *stubAnalysisUC) GetRun(context.Context, model.Scope, uuid.UUID) (model.AnalysisRun, error) {
	return model.AnalysisRun{}, analysis.ErrRunNotFound
}

func (s *stubAnalysisUC) ListRuns(context.Context, model.Scope, analysis.ListRunsInput) (analysis.ListRunsOutput, error) {
	return analysis.ListRunsOutput{}, nil
}

func (s *stubAnalysisUC) Extract(string) model.VoiceCharacteristics {
	return s.characteristics
}

type stubPlatformUC struct {
	configs map[string]map[string]any
	calls   []string
}

func (s *stubPlatformUC) GetConfig(_ context.Context, _ model.Scope, name string) (platform.GetConfigOutput, error) {
	s.calls = append(s.calls, name)
	config, ok := s.configs[name]
	if !ok {
		config = map[string]any{}
	}
	return platform.GetConfigOutput{Name: name, Config: config}, nil
}

type stubSink struct {
	category string
	filename string
	content  string
	err      error
}

func (s *stubSink) Write(_ context.Context, category, filename, content string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.category, s.filename, s.content = category, filename, content
	return "/out/" + category + "/" + filename, nil
}

type stubPublisher struct {
	articulations []content.ArticulationPayload
	optimizations []content.OptimizationPayload
	err           error
}

func (s *stubPublisher) PublishArticulation(_ context.Context, payload content.ArticulationPayload) error {
	if s.err != nil {
		return s.err
	}
	s.articulations = append(s.articulations, payload)
	return nil
}

func (s *stubPublisher) PublishOptimization(_ context.Context, payload content.OptimizationPayload) error {
	if s.err != nil {
		return s.err
	}
	s.optimizations = append(s.optimizations, payload)
	return nil
}

func newContentUseCase(analysisUC *stubAnalysisUC, platformUC *stubPlatformUC, sink *stubSink, publisher content.GenerationPublisher) content.UseCase {
	return New(
		log.Init(log.ZapConfig{Level: "fatal"}),
		analysisUC,
		platformUC,
		sink,
		publisher,
	)
}

func TestArticulateEmptyContent(t *testing.T) {
	t.Parallel()

	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, nil)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
			Content:  text,
			Elicitor: elicit.NewStatic(elicit.ActionAccept, nil),
		})
		assert.ErrorIs(t, err, content.ErrEmptyInput)
	}
}

func TestArticulateDeclinedShortCircuits(t *testing.T) {
	t.Parallel()

	analysisUC := &stubAnalysisUC{}
	platformUC := &stubPlatformUC{}
	uc := newContentUseCase(analysisUC, platformUC, &stubSink{}, nil)

	_, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
		Content:  "some words",
		Elicitor: elicit.NewStatic(elicit.ActionDecline, nil),
	})
	require.ErrorIs(t, err, content.ErrDeclined)

	assert.Zero(t, analysisUC.profileCalls)
	assert.Empty(t, platformUC.calls)
}

func TestArticulateCancelledShortCircuits(t *testing.T) {
	t.Parallel()

	analysisUC := &stubAnalysisUC{}
	uc := newContentUseCase(analysisUC, &stubPlatformUC{}, &stubSink{}, nil)

	_, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
		Content:  "some words",
		Elicitor: elicit.NewStatic(elicit.ActionCancel, nil),
	})
	require.ErrorIs(t, err, content.ErrCancelled)
	assert.Zero(t, analysisUC.profileCalls)
}

func TestArticulateDefaultPreferences(t *testing.T) {
	t.Parallel()

	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, nil)

	out, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
		Content:  "plain words to articulate",
		Elicitor: elicit.NewStatic(elicit.ActionAccept, nil),
	})
	require.NoError(t, err)

	prefs := out.Payload.Preferences
	assert.Equal(t, "generic", prefs.TargetPlatform)
	assert.Equal(t, "maintain_original", prefs.TonePreference)
	assert.Equal(t, "optimal", prefs.ContentLength)
	assert.Equal(t, "general", prefs.AudienceLevel)
	assert.False(t, prefs.IncludeExamples)

	assert.True(t, out.Payload.Instructions.PreserveVoice)
	assert.True(t, out.Payload.Instructions.ImproveClarity)
	assert.True(t, out.Payload.Instructions.MaintainAuthenticity)
	assert.False(t, out.Payload.Instructions.OptimizeForPlatform)
}

func TestArticulatePayloadAssembly(t *testing.T) {
	t.Parallel()

	profile := model.VoiceProfile{AnalyzedAt: "2026-09-01T12:00:00Z"}
	characteristics := model.VoiceCharacteristics{
		ToneAnalysis: model.ToneAnalysis{PrimaryTone: "conversational"},
	}
	analysisUC := &stubAnalysisUC{profile: profile, characteristics: characteristics}
	platformUC := &stubPlatformUC{configs: map[string]map[string]any{
		"twitter": {"max_length": 280},
	}}
	publisher := &stubPublisher{}
	uc := newContentUseCase(analysisUC, platformUC, &stubSink{}, publisher)

	out, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
		Content: "words aimed at twitter",
		Elicitor: elicit.NewStatic(elicit.ActionAccept, map[string]any{
			"target_platform": "twitter",
			"include_cta":     true,
		}),
	})
	require.NoError(t, err)

	assert.Equal(t, "words aimed at twitter", out.Payload.OriginalContent)
	assert.Equal(t, "twitter", out.Payload.TargetPlatform)
	assert.Equal(t, profile, out.Payload.VoicePatterns)
	assert.Equal(t, 280, out.Payload.PlatformConfig["max_length"])
	assert.Equal(t, characteristics, out.Payload.InputAnalysis)
	assert.True(t, out.Payload.Preferences.IncludeCTA)
	assert.True(t, out.Payload.Instructions.OptimizeForPlatform)

	assert.True(t, out.Published)
	require.Len(t, publisher.articulations, 1)
}

func TestArticulateUnknownPlatformGetsEmptyConfig(t *testing.T) {
	t.Parallel()

	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, nil)

	out, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
		Content: "words for an unknown place",
		Elicitor: elicit.NewStatic(elicit.ActionAccept, map[string]any{
			"target_platform": "myspace",
		}),
	})
	require.NoError(t, err)
	assert.NotNil(t, out.Payload.PlatformConfig)
	assert.Empty(t, out.Payload.PlatformConfig)
}

func TestArticulatePublishFailureStillReturnsPayload(t *testing.T) {
	t.Parallel()

	publisher := &stubPublisher{err: errors.New("broker down")}
	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, publisher)

	out, err := uc.Articulate(context.Background(), model.Scope{}, content.ArticulateInput{
		Content:  "still prepared",
		Elicitor: elicit.NewStatic(elicit.ActionAccept, nil),
	})
	require.NoError(t, err)
	assert.False(t, out.Published)
	assert.Equal(t, "still prepared", out.Payload.OriginalContent)
}

func TestOptimizeRequiresTargetPlatform(t *testing.T) {
	t.Parallel()

	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, nil)

	_, err := uc.Optimize(context.Background(), model.Scope{}, content.OptimizeInput{
		Content:  "needs a platform",
		Elicitor: elicit.NewStatic(elicit.ActionAccept, nil),
	})
	require.ErrorIs(t, err, content.ErrMissingPlatform)
}

func TestOptimizeDefaultsAndInstructions(t *testing.T) {
	t.Parallel()

	publisher := &stubPublisher{}
	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, publisher)

	out, err := uc.Optimize(context.Background(), model.Scope{}, content.OptimizeInput{
		Content: "optimize this",
		Elicitor: elicit.NewStatic(elicit.ActionAccept, map[string]any{
			"target_platform": "linkedin",
		}),
	})
	require.NoError(t, err)

	prefs := out.Payload.Preferences
	assert.Equal(t, "linkedin", prefs.TargetPlatform)
	assert.Equal(t, "main_points", prefs.ContentFocus)
	assert.Equal(t, "moderate", prefs.EngagementStyle)
	assert.Equal(t, "relevant", prefs.HashtagStrategy)
	assert.Equal(t, "standard", prefs.FormatPreference)

	assert.True(t, out.Payload.Instructions.MaintainVoice)
	assert.True(t, out.Payload.Instructions.AdaptFormat)
	assert.True(t, out.Payload.Instructions.OptimizeLength)
	assert.True(t, out.Payload.Instructions.EnhanceEngagement)

	assert.True(t, out.Published)
	require.Len(t, publisher.optimizations, 1)
}

func TestOptimizeDeclinedShortCircuits(t *testing.T) {
	t.Parallel()

	analysisUC := &stubAnalysisUC{}
	uc := newContentUseCase(analysisUC, &stubPlatformUC{}, &stubSink{}, nil)

	_, err := uc.Optimize(context.Background(), model.Scope{}, content.OptimizeInput{
		Content:  "never analyzed",
		Elicitor: elicit.NewStatic(elicit.ActionDecline, nil),
	})
	require.ErrorIs(t, err, content.ErrDeclined)
	assert.Zero(t, analysisUC.profileCalls)
}

func TestSaveOutputValidation(t *testing.T) {
	t.Parallel()

	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, &stubSink{}, nil)
	ctx := context.Background()

	_, err := uc.SaveOutput(ctx, model.Scope{}, content.SaveOutputInput{
		Category: "scratch", Filename: "a.md", Content: "x",
	})
	assert.ErrorIs(t, err, content.ErrInvalidCategory)

	_, err = uc.SaveOutput(ctx, model.Scope{}, content.SaveOutputInput{
		Category: content.CategoryDraft, Filename: "../a.md", Content: "x",
	})
	assert.ErrorIs(t, err, content.ErrInvalidFilename)

	_, err = uc.SaveOutput(ctx, model.Scope{}, content.SaveOutputInput{
		Category: content.CategoryDraft, Filename: "a.md", Content: "   ",
	})
	assert.ErrorIs(t, err, content.ErrEmptyInput)
}

func TestSaveOutputHappyPath(t *testing.T) {
	t.Parallel()

	sink := &stubSink{}
	uc := newContentUseCase(&stubAnalysisUC{}, &stubPlatformUC{}, sink, nil)

	out, err := uc.SaveOutput(context.Background(), model.Scope{}, content.SaveOutputInput{
		Category: content.CategoryFinal,
		Filename: "post.md",
		Content:  "# done\n",
	})
	require.NoError(t, err)
	assert.Equal(t, "/out/final/post.md", out.Path)
	assert.Equal(t, "# done\n", sink.content)
}
