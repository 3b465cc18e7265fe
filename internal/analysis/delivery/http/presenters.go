package http

import (
	"voice-srv/internal/analysis"
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
	"voice-srv/pkg/paginator"
	"voice-srv/pkg/response"
)

// =====================================================
// Request DTOs
// =====================================================

type voicePreferencesReq struct {
	AnalysisDepth      string   `json:"analysis_depth,omitempty"`
	FocusAreas         []string `json:"focus_areas,omitempty"`
	IncludeExamples    bool     `json:"include_examples,omitempty"`
	GenerateGuidelines *bool    `json:"generate_guidelines,omitempty"`
}

type analyzeReq struct {
	Preferences       *voicePreferencesReq `json:"preferences,omitempty"`
	ElicitationAction string               `json:"elicitation_action,omitempty"`
	Async             bool                 `json:"async,omitempty"`
}

func (r analyzeReq) toInput() analysis.AnalyzeInput {
	input := analysis.AnalyzeInput{
		Depth:              analysis.DepthComprehensive,
		FocusAreas:         []string{"tone", "style", "structure"},
		GenerateGuidelines: true,
		Async:              r.Async,
	}
	if r.Preferences == nil {
		return input
	}

	if r.Preferences.AnalysisDepth != "" {
		input.Depth = r.Preferences.AnalysisDepth
	}
	if len(r.Preferences.FocusAreas) > 0 {
		input.FocusAreas = r.Preferences.FocusAreas
	}
	input.IncludeExamples = r.Preferences.IncludeExamples
	if r.Preferences.GenerateGuidelines != nil {
		input.GenerateGuidelines = *r.Preferences.GenerateGuidelines
	}
	return input
}

type listRunsReq struct {
	paginator.PaginateQuery
	Status string `form:"status"`
}

// =====================================================
// Response DTOs
// =====================================================

type runResp struct {
	ID          string              `json:"id"`
	Status      string              `json:"status"`
	Depth       string              `json:"depth"`
	FocusAreas  []string            `json:"focus_areas,omitempty"`
	SampleCount int                 `json:"sample_count"`
	Error       string              `json:"error,omitempty"`
	RequestedBy string              `json:"requested_by,omitempty"`
	RequestedAt response.DateTime   `json:"requested_at"`
	CompletedAt *response.DateTime  `json:"completed_at,omitempty"`
	Profile     *model.VoiceProfile `json:"profile,omitempty"`
}

type analyzeResp struct {
	Run             runResp            `json:"run"`
	Profile         model.VoiceProfile `json:"profile"`
	Recommendations []string           `json:"recommendations"`
}

type enqueueResp struct {
	Run runResp `json:"run"`
}

type elicitationResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type profileResp struct {
	Learned                  bool                       `json:"learned"`
	UserVoiceCharacteristics model.VoiceCharacteristics `json:"user_voice_characteristics"`
	SampleBreakdown          []model.SampleAnalysis     `json:"sample_breakdown,omitempty"`
	AnalyzedAt               string                     `json:"analyzed_at,omitempty"`
}

type listRunsResp struct {
	Runs      []runResp                   `json:"runs"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func newRunResp(run model.AnalysisRun) runResp {
	resp := runResp{
		ID:          run.ID.String(),
		Status:      string(run.Status),
		Depth:       run.Depth,
		FocusAreas:  run.FocusAreas,
		SampleCount: run.SampleCount,
		Error:       run.Error,
		RequestedBy: run.RequestedBy,
		RequestedAt: response.DateTime(run.RequestedAt),
		Profile:     run.Profile,
	}
	if run.CompletedAt != nil {
		completedAt := response.DateTime(*run.CompletedAt)
		resp.CompletedAt = &completedAt
	}
	return resp
}

func (h *handler) newAnalyzeResp(output analysis.AnalyzeOutput) analyzeResp {
	return analyzeResp{
		Run:             newRunResp(output.Run),
		Profile:         output.Profile,
		Recommendations: output.Recommendations,
	}
}

func (h *handler) newEnqueueResp(output analysis.EnqueueOutput) enqueueResp {
	return enqueueResp{Run: newRunResp(output.Run)}
}

func newElicitationResp(action elicit.Action) elicitationResp {
	if action == elicit.ActionCancel {
		return elicitationResp{Status: "cancelled", Message: "Voice analysis cancelled"}
	}
	return elicitationResp{Status: "declined", Message: "Voice analysis declined; no analysis was performed"}
}

func (h *handler) newProfileResp(output analysis.GetProfileOutput) profileResp {
	return profileResp{
		Learned:                  output.Learned,
		UserVoiceCharacteristics: output.Profile.Characteristics,
		SampleBreakdown:          output.Profile.SampleBreakdown,
		AnalyzedAt:               output.Profile.AnalyzedAt,
	}
}

func (h *handler) newListRunsResp(output analysis.ListRunsOutput) listRunsResp {
	resp := listRunsResp{
		Runs:      make([]runResp, len(output.Runs)),
		Paginator: output.Paginator.ToResponse(),
	}
	for i, run := range output.Runs {
		resp.Runs[i] = newRunResp(run)
	}
	return resp
}
