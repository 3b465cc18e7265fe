package http

import (
	"voice-srv/internal/analysis"
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
	"voice-srv/pkg/response"
	"voice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// Analyze - Run or enqueue a voice analysis over the writing corpus
// @Summary Analyze the writing corpus
// @Description Extracts the voice profile from the corpus. Set async=true to enqueue the run instead of waiting for it.
// @Tags Analysis
// @Accept json
// @Produce json
// @Param body body analyzeReq false "Analysis preferences"
// @Success 200 {object} analyzeResp
// @Success 202 {object} enqueueResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyses [post]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, action, sc, err := h.processAnalyzeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: processAnalyzeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Declined/cancelled preference prompts never reach the analyzer
	if action != elicit.ActionAccept {
		response.OK(c, newElicitationResp(action))
		return
	}

	// 3. Convert to UseCase input
	input := req.toInput()

	// 4. Call UseCase
	if input.Async {
		output, err := h.uc.Enqueue(ctx, sc, input)
		if err != nil {
			h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Enqueue failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
			return
		}
		response.Accepted(c, h.newEnqueueResp(output))
		return
	}

	output, err := h.uc.Analyze(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.Analyze: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	// 5. Return response
	response.OK(c, h.newAnalyzeResp(output))
}

// ListRuns - List analysis runs
// @Summary List analysis runs
// @Description Pages through the analysis run history, newest first
// @Tags Analysis
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Param status query string false "Filter by status"
// @Success 200 {object} listRunsResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyses [get]
func (h *handler) ListRuns(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processListRunsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ListRuns: processListRunsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.ListRuns(ctx, sc, analysis.ListRunsInput{
		PaginateQuery: req.PaginateQuery,
		Status:        model.AnalysisStatus(req.Status),
	})
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.ListRuns: usecase ListRuns failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListRunsResp(output))
}

// GetRun - Fetch one analysis run
// @Summary Get an analysis run
// @Description Returns one analysis run with its profile snapshot
// @Tags Analysis
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {object} runResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/analyses/{id} [get]
func (h *handler) GetRun(c *gin.Context) {
	ctx := c.Request.Context()

	id, sc, err := h.processGetRunRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetRun: processGetRunRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	run, err := h.uc.GetRun(ctx, sc, id)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetRun: usecase GetRun failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, newRunResp(run))
}

// GetProfile - Fetch the current voice profile
// @Summary Get the voice profile
// @Description Returns the stored voice profile; learned is false when no analysis has been persisted yet
// @Tags Analysis
// @Produce json
// @Success 200 {object} profileResp
// @Failure 500 {object} response.Resp
// @Router /api/v1/voice-profile [get]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.GetProfile(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "analysis.delivery.http.GetProfile: usecase GetProfile failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProfileResp(output))
}
