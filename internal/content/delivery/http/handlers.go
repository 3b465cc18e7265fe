package http

import (
	"errors"

	"voice-srv/internal/content"
	"voice-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Articulate - Prepare an articulation payload for raw content
// @Summary Prepare an articulation request
// @Description Builds the generation payload that articulates the content in the user's voice. Never generates text itself.
// @Tags Content
// @Accept json
// @Produce json
// @Param body body articulateReq true "Content and preferences"
// @Success 200 {object} articulateResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/articulations [post]
func (h *handler) Articulate(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	req, action, sc, err := h.processArticulateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.Articulate: processArticulateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	// 2. Convert to UseCase input
	input := req.toInput(action)

	// 3. Call UseCase
	output, err := h.uc.Articulate(ctx, sc, input)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrDeclined):
			response.OK(c, newDeclinedResp())
		case errors.Is(err, content.ErrCancelled):
			response.OK(c, newCancelledResp())
		default:
			h.l.Errorf(ctx, "content.delivery.http.Articulate: usecase Articulate failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
		}
		return
	}

	// 4. Return response
	response.OK(c, h.newArticulateResp(output))
}

// Optimize - Prepare a platform-optimization payload for raw content
// @Summary Prepare an optimization request
// @Description Builds the generation payload that adapts the content to a target platform while keeping the user's voice
// @Tags Content
// @Accept json
// @Produce json
// @Param body body optimizeReq true "Content and preferences"
// @Success 200 {object} optimizeResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/optimizations [post]
func (h *handler) Optimize(c *gin.Context) {
	ctx := c.Request.Context()

	req, action, sc, err := h.processOptimizeRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.Optimize: processOptimizeRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	input := req.toInput(action)

	output, err := h.uc.Optimize(ctx, sc, input)
	if err != nil {
		switch {
		case errors.Is(err, content.ErrDeclined):
			response.OK(c, newDeclinedResp())
		case errors.Is(err, content.ErrCancelled):
			response.OK(c, newCancelledResp())
		default:
			h.l.Errorf(ctx, "content.delivery.http.Optimize: usecase Optimize failed: %v", err)
			response.Error(c, h.mapError(err), h.discord)
		}
		return
	}

	response.OK(c, h.newOptimizeResp(output))
}

// SaveOutput - Store generated content
// @Summary Store generated content
// @Description Writes generated content verbatim under the given category and filename
// @Tags Content
// @Accept json
// @Produce json
// @Param body body saveOutputReq true "Output to store"
// @Success 200 {object} saveOutputResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/content/outputs [post]
func (h *handler) SaveOutput(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processSaveOutputRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.SaveOutput: processSaveOutputRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	output, err := h.uc.SaveOutput(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "content.delivery.http.SaveOutput: usecase SaveOutput failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, saveOutputResp{Path: output.Path})
}
