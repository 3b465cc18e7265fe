package usecase

import (
	"context"
	"strings"
	"time"

	"voice-srv/internal/analysis"
	"voice-srv/internal/analysis/repository"
	"voice-srv/internal/model"

	"github.com/google/uuid"
)

func validateDepth(depth string) error {
	switch depth {
	case analysis.DepthBasic, analysis.DepthComprehensive, analysis.DepthDetailed:
		return nil
	default:
		return analysis.ErrInvalidDepth
	}
}

// analyzeCorpus concatenates the samples and extracts the overall voice
// profile. Per-sample characteristics are computed for comprehensive and
// detailed depths, but only detailed publishes them in the breakdown.
func (uc *implUseCase) analyzeCorpus(samples []analysis.Sample, depth string) (model.VoiceProfile, error) {
	if len(samples) == 0 {
		return model.VoiceProfile{}, analysis.ErrEmptyCorpus
	}

	var combined strings.Builder
	var breakdown []model.SampleAnalysis
	for _, sample := range samples {
		combined.WriteString(sample.Text)
		combined.WriteString("\n")

		if depth != analysis.DepthBasic {
			characteristics := extractCharacteristics(sample.Text)
			if depth == analysis.DepthDetailed {
				breakdown = append(breakdown, model.SampleAnalysis{
					Sample:         sample.ID,
					Source:         sample.Source,
					ToneAnalysis:   characteristics.ToneAnalysis,
					Metrics:        characteristics.WritingMetrics,
					ToneIndicators: characteristics.ToneIndicators,
				})
			}
		}
	}

	return model.VoiceProfile{
		Characteristics: extractCharacteristics(combined.String()),
		SampleBreakdown: breakdown,
		AnalyzedAt:      uc.clock().UTC().Format(time.RFC3339),
	}, nil
}

// Analyze runs a full synchronous analysis and records it in the run history.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.AnalyzeOutput, error) {
	if err := validateDepth(input.Depth); err != nil {
		return analysis.AnalyzeOutput{}, err
	}

	run, err := uc.runRepo.Create(ctx, repository.CreateRunOptions{
		ID:          uuid.New(),
		Status:      model.AnalysisStatusRunning,
		Depth:       input.Depth,
		FocusAreas:  input.FocusAreas,
		RequestedBy: sc.Username,
		RequestedAt: uc.clock().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: create run: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	samples, err := uc.corpusRepo.ListSamples(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: list samples: %v", err)
		uc.failRun(ctx, run.ID, err)
		return analysis.AnalyzeOutput{}, err
	}

	profile, err := uc.analyzeCorpus(samples, input.Depth)
	if err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.Analyze: %v", err)
		uc.failRun(ctx, run.ID, err)
		return analysis.AnalyzeOutput{}, err
	}

	if input.GenerateGuidelines {
		if err := uc.profileRepo.Save(ctx, profile); err != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Analyze: save profile: %v", err)
			uc.failRun(ctx, run.ID, err)
			return analysis.AnalyzeOutput{}, err
		}
	}

	run, err = uc.completeRun(ctx, run, profile, len(samples))
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Analyze: complete run: %v", err)
		return analysis.AnalyzeOutput{}, err
	}

	return analysis.AnalyzeOutput{
		Run:             run,
		Profile:         profile,
		Recommendations: buildRecommendations(profile),
	}, nil
}

// Enqueue records a pending run and hands it to the broker.
func (uc *implUseCase) Enqueue(ctx context.Context, sc model.Scope, input analysis.AnalyzeInput) (analysis.EnqueueOutput, error) {
	if err := validateDepth(input.Depth); err != nil {
		return analysis.EnqueueOutput{}, err
	}
	if uc.producer == nil {
		uc.l.Errorf(ctx, "analysis.usecase.Enqueue: producer is not configured")
		return analysis.EnqueueOutput{}, analysis.ErrAsyncUnavailable
	}

	run, err := uc.runRepo.Create(ctx, repository.CreateRunOptions{
		ID:          uuid.New(),
		Status:      model.AnalysisStatusPending,
		Depth:       input.Depth,
		FocusAreas:  input.FocusAreas,
		RequestedBy: sc.Username,
		RequestedAt: uc.clock().UTC(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Enqueue: create run: %v", err)
		return analysis.EnqueueOutput{}, err
	}

	msg := analysis.JobMessage{
		RunID:              run.ID,
		Depth:              input.Depth,
		FocusAreas:         input.FocusAreas,
		GenerateGuidelines: input.GenerateGuidelines,
	}
	if err := uc.producer.PublishJob(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Enqueue: publish job: %v", err)
		uc.failRun(ctx, run.ID, err)
		return analysis.EnqueueOutput{}, err
	}

	return analysis.EnqueueOutput{Run: run}, nil
}

// ExecuteRun performs a previously enqueued run and publishes the result.
func (uc *implUseCase) ExecuteRun(ctx context.Context, msg analysis.JobMessage) error {
	if err := uc.runRepo.Update(ctx, repository.UpdateRunOptions{
		ID:     msg.RunID,
		Status: model.AnalysisStatusRunning,
	}); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.ExecuteRun: mark running: %v", err)
		return err
	}

	samples, err := uc.corpusRepo.ListSamples(ctx)
	if err == nil {
		var profile model.VoiceProfile
		profile, err = uc.analyzeCorpus(samples, msg.Depth)
		if err == nil {
			if msg.GenerateGuidelines {
				err = uc.profileRepo.Save(ctx, profile)
			}
			if err == nil {
				if _, err = uc.completeRun(ctx, model.AnalysisRun{ID: msg.RunID}, profile, len(samples)); err == nil {
					uc.publishResult(ctx, analysis.ResultMessage{
						RunID:       msg.RunID,
						Status:      model.AnalysisStatusCompleted,
						SampleCount: len(samples),
					})
					return nil
				}
			}
		}
	}

	uc.l.Errorf(ctx, "analysis.usecase.ExecuteRun: run %s failed: %v", msg.RunID, err)
	uc.failRun(ctx, msg.RunID, err)
	uc.publishResult(ctx, analysis.ResultMessage{
		RunID:  msg.RunID,
		Status: model.AnalysisStatusFailed,
		Error:  err.Error(),
	})
	return err
}

func (uc *implUseCase) completeRun(ctx context.Context, run model.AnalysisRun, profile model.VoiceProfile, sampleCount int) (model.AnalysisRun, error) {
	completedAt := uc.clock().UTC()
	if err := uc.runRepo.Update(ctx, repository.UpdateRunOptions{
		ID:          run.ID,
		Status:      model.AnalysisStatusCompleted,
		SampleCount: &sampleCount,
		Profile:     &profile,
		CompletedAt: &completedAt,
	}); err != nil {
		return model.AnalysisRun{}, err
	}

	run.Status = model.AnalysisStatusCompleted
	run.SampleCount = sampleCount
	run.Profile = &profile
	run.CompletedAt = &completedAt
	return run, nil
}

// failRun is best-effort; the original error is what the caller sees.
func (uc *implUseCase) failRun(ctx context.Context, id uuid.UUID, cause error) {
	msg := cause.Error()
	completedAt := uc.clock().UTC()
	if err := uc.runRepo.Update(ctx, repository.UpdateRunOptions{
		ID:          id,
		Status:      model.AnalysisStatusFailed,
		Error:       &msg,
		CompletedAt: &completedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.failRun: %v", err)
	}
}

func (uc *implUseCase) publishResult(ctx context.Context, msg analysis.ResultMessage) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishResult(ctx, msg); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.publishResult: %v", err)
	}
}

// buildRecommendations derives writing advice from the extracted profile.
func buildRecommendations(profile model.VoiceProfile) []string {
	recommendations := make([]string, 0, 4)

	switch profile.Characteristics.ToneAnalysis.PrimaryTone {
	case toneFormal:
		recommendations = append(recommendations, "Your writing leans formal; it fits professional platforms well, but consider loosening it for social posts.")
	case toneCasual:
		recommendations = append(recommendations, "Your casual, contraction-heavy style fits short-form platforms; tighten it up for professional audiences.")
	default:
		recommendations = append(recommendations, "Your conversational tone transfers well across platforms.")
	}

	if profile.Characteristics.ToneAnalysis.EngagementStyle != engagementHigh {
		recommendations = append(recommendations, "Consider asking questions to invite engagement.")
	}
	if profile.Characteristics.ToneAnalysis.SentenceStructure == structureComplex {
		recommendations = append(recommendations, "Break up long sentences when targeting short-form platforms.")
	}
	if profile.Characteristics.WritingMetrics.FleschReadingEase < 50 {
		recommendations = append(recommendations, "Your text reads at a difficult level; simpler wording widens your audience.")
	}
	return recommendations
}
