package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/repository"
	"voice-srv/internal/model"
	"voice-srv/pkg/log"
	"voice-srv/pkg/paginator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCorpusRepo struct {
	samples []analysis.Sample
	err     error
}

func (s *stubCorpusRepo) ListSamples(context.Context) ([]analysis.Sample, error) {
	return s.samples, s.err
}

type stubProfileRepo struct {
	stored  model.VoiceProfile
	saved   int
	saveErr error
	loadErr error
}

func (s *stubProfileRepo) Save(_ context.Context, profile model.VoiceProfile) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.stored = profile
	s.saved++
	return nil
}

func (s *stubProfileRepo) Load(context.Context) (model.VoiceProfile, error) {
	return s.stored, s.loadErr
}

type stubRunRepo struct {
	created []repository.CreateRunOptions
	updated []repository.UpdateRunOptions
}

func (s *stubRunRepo) Create(_ context.Context, opts repository.CreateRunOptions) (model.AnalysisRun, error) {
	s.created = append(s.created, opts)
	return model.AnalysisRun{
		ID:          opts.ID,
		Status:      opts.Status,
		Depth:       opts.Depth,
		FocusAreas:  opts.FocusAreas,
		RequestedBy: opts.RequestedBy,
		RequestedAt: opts.RequestedAt,
	}, nil
}

func (s *stubRunRepo) Update(_ context.Context, opts repository.UpdateRunOptions) error {
	s.updated = append(s.updated, opts)
	return nil
}

func (s *stubRunRepo) Detail(context.Context, uuid.UUID) (model.AnalysisRun, error) {
	return model.AnalysisRun{}, analysis.ErrRunNotFound
}

func (s *stubRunRepo) List(context.Context, repository.ListRunsOptions) ([]model.AnalysisRun, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

type stubProducer struct {
	jobs    []analysis.JobMessage
	results []analysis.ResultMessage
	err     error
}

func (s *stubProducer) PublishJob(_ context.Context, msg analysis.JobMessage) error {
	if s.err != nil {
		return s.err
	}
	s.jobs = append(s.jobs, msg)
	return nil
}

func (s *stubProducer) PublishResult(_ context.Context, msg analysis.ResultMessage) error {
	s.results = append(s.results, msg)
	return nil
}

func newTestUseCase(corpus *stubCorpusRepo, profiles *stubProfileRepo, runs *stubRunRepo, producer analysis.Producer) *implUseCase {
	return &implUseCase{
		l:           log.Init(log.ZapConfig{Level: "fatal"}),
		corpusRepo:  corpus,
		profileRepo: profiles,
		runRepo:     runs,
		producer:    producer,
		clock:       func() time.Time { return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func sampleCorpus() *stubCorpusRepo {
	return &stubCorpusRepo{samples: []analysis.Sample{
		{ID: "post-one.md", Source: "posts", Text: "I write short notes. They stay simple."},
		{ID: "post-two.md", Source: "posts", Text: "Questions keep readers close, right?"},
		{ID: "essay.txt", Source: "essays", Text: "Longer essays explore one idea in depth over several sentences."},
	}}
}

func TestAnalyzeEmptyCorpus(t *testing.T) {
	t.Parallel()

	runs := &stubRunRepo{}
	uc := newTestUseCase(&stubCorpusRepo{}, &stubProfileRepo{}, runs, nil)

	_, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth:              analysis.DepthBasic,
		GenerateGuidelines: true,
	})
	require.ErrorIs(t, err, analysis.ErrEmptyCorpus)

	require.Len(t, runs.updated, 1)
	assert.Equal(t, model.AnalysisStatusFailed, runs.updated[0].Status)
}

func TestAnalyzeInvalidDepth(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(sampleCorpus(), &stubProfileRepo{}, &stubRunRepo{}, nil)

	_, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{Depth: "forensic"})
	require.ErrorIs(t, err, analysis.ErrInvalidDepth)
}

func TestAnalyzeDetailedBreakdown(t *testing.T) {
	t.Parallel()

	corpus := sampleCorpus()
	uc := newTestUseCase(corpus, &stubProfileRepo{}, &stubRunRepo{}, nil)

	out, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth:              analysis.DepthDetailed,
		GenerateGuidelines: true,
	})
	require.NoError(t, err)

	require.Len(t, out.Profile.SampleBreakdown, len(corpus.samples))
	for i, entry := range out.Profile.SampleBreakdown {
		assert.Equal(t, corpus.samples[i].ID, entry.Sample)
		assert.Equal(t, corpus.samples[i].Source, entry.Source)

		want := extractCharacteristics(corpus.samples[i].Text)
		assert.Equal(t, want.ToneAnalysis, entry.ToneAnalysis)
		assert.NotEmpty(t, entry.ToneAnalysis.PrimaryTone)
		assert.NotEmpty(t, entry.ToneAnalysis.EngagementStyle)
		assert.NotEmpty(t, entry.ToneAnalysis.SentenceStructure)
		assert.Equal(t, want.WritingMetrics, entry.Metrics)
		assert.Equal(t, want.ToneIndicators, entry.ToneIndicators)
	}
}

func TestAnalyzeComprehensiveOmitsBreakdown(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(sampleCorpus(), &stubProfileRepo{}, &stubRunRepo{}, nil)

	out, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth:              analysis.DepthComprehensive,
		GenerateGuidelines: true,
	})
	require.NoError(t, err)
	assert.Empty(t, out.Profile.SampleBreakdown)
}

func TestAnalyzeCharacteristicsMatchConcatenation(t *testing.T) {
	t.Parallel()

	corpus := sampleCorpus()
	uc := newTestUseCase(corpus, &stubProfileRepo{}, &stubRunRepo{}, nil)

	out, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth:              analysis.DepthBasic,
		GenerateGuidelines: true,
	})
	require.NoError(t, err)

	combined := ""
	for _, s := range corpus.samples {
		combined += s.Text + "\n"
	}
	assert.Equal(t, extractCharacteristics(combined), out.Profile.Characteristics)
}

func TestAnalyzePersistsProfileOnlyWhenRequested(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name               string
		generateGuidelines bool
		wantSaved          int
	}{
		{name: "guidelines persist the profile", generateGuidelines: true, wantSaved: 1},
		{name: "dry run skips persistence", generateGuidelines: false, wantSaved: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			profiles := &stubProfileRepo{}
			uc := newTestUseCase(sampleCorpus(), profiles, &stubRunRepo{}, nil)

			_, err := uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
				Depth:              analysis.DepthBasic,
				GenerateGuidelines: tt.generateGuidelines,
			})
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, profiles.saved)
		})
	}
}

func TestAnalyzeRecordsCompletedRun(t *testing.T) {
	t.Parallel()

	runs := &stubRunRepo{}
	uc := newTestUseCase(sampleCorpus(), &stubProfileRepo{}, runs, nil)

	out, err := uc.Analyze(context.Background(), model.Scope{Username: "dana"}, analysis.AnalyzeInput{
		Depth:              analysis.DepthBasic,
		GenerateGuidelines: true,
	})
	require.NoError(t, err)

	require.Len(t, runs.created, 1)
	assert.Equal(t, "dana", runs.created[0].RequestedBy)

	assert.Equal(t, model.AnalysisStatusCompleted, out.Run.Status)
	assert.Equal(t, 3, out.Run.SampleCount)
	require.NotNil(t, out.Run.CompletedAt)
	assert.NotEmpty(t, out.Recommendations)
}

func TestEnqueuePublishesJob(t *testing.T) {
	t.Parallel()

	producer := &stubProducer{}
	uc := newTestUseCase(sampleCorpus(), &stubProfileRepo{}, &stubRunRepo{}, producer)

	out, err := uc.Enqueue(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth: analysis.DepthDetailed,
	})
	require.NoError(t, err)

	assert.Equal(t, model.AnalysisStatusPending, out.Run.Status)
	require.Len(t, producer.jobs, 1)
	assert.Equal(t, out.Run.ID, producer.jobs[0].RunID)
	assert.Equal(t, analysis.DepthDetailed, producer.jobs[0].Depth)
}

func TestEnqueueWithoutProducer(t *testing.T) {
	t.Parallel()

	uc := newTestUseCase(sampleCorpus(), &stubProfileRepo{}, &stubRunRepo{}, nil)

	_, err := uc.Enqueue(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth: analysis.DepthBasic,
	})
	require.ErrorIs(t, err, analysis.ErrAsyncUnavailable)
}

func TestExecuteRunPublishesResult(t *testing.T) {
	t.Parallel()

	producer := &stubProducer{}
	profiles := &stubProfileRepo{}
	runs := &stubRunRepo{}
	uc := newTestUseCase(sampleCorpus(), profiles, runs, producer)

	msg := analysis.JobMessage{
		RunID:              uuid.New(),
		Depth:              analysis.DepthComprehensive,
		GenerateGuidelines: true,
	}
	require.NoError(t, uc.ExecuteRun(context.Background(), msg))

	assert.Equal(t, 1, profiles.saved)
	require.Len(t, producer.results, 1)
	assert.Equal(t, model.AnalysisStatusCompleted, producer.results[0].Status)
	assert.Equal(t, 3, producer.results[0].SampleCount)
}

func TestExecuteRunFailurePublishesFailedResult(t *testing.T) {
	t.Parallel()

	producer := &stubProducer{}
	corpus := &stubCorpusRepo{err: errors.New("corpus offline")}
	uc := newTestUseCase(corpus, &stubProfileRepo{}, &stubRunRepo{}, producer)

	err := uc.ExecuteRun(context.Background(), analysis.JobMessage{
		RunID: uuid.New(),
		Depth: analysis.DepthBasic,
	})
	require.Error(t, err)

	require.Len(t, producer.results, 1)
	assert.Equal(t, model.AnalysisStatusFailed, producer.results[0].Status)
	assert.NotEmpty(t, producer.results[0].Error)
}

func TestGetProfileLearnedFlag(t *testing.T) {
	t.Parallel()

	profiles := &stubProfileRepo{}
	uc := newTestUseCase(sampleCorpus(), profiles, &stubRunRepo{}, nil)

	out, err := uc.GetProfile(context.Background(), model.Scope{})
	require.NoError(t, err)
	assert.False(t, out.Learned)

	_, err = uc.Analyze(context.Background(), model.Scope{}, analysis.AnalyzeInput{
		Depth:              analysis.DepthBasic,
		GenerateGuidelines: true,
	})
	require.NoError(t, err)

	out, err = uc.GetProfile(context.Background(), model.Scope{})
	require.NoError(t, err)
	assert.True(t, out.Learned)
}
