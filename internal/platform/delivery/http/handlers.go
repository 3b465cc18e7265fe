package http

import (
	"voice-srv/pkg/response"
	"voice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

type configResp struct {
	Platform string         `json:"platform"`
	Config   map[string]any `json:"config"`
}

// GetConfig - Fetch a platform's configuration document
// @Summary Get a platform config
// @Description Returns the platform's formatting configuration; unknown platforms yield an empty config
// @Tags Platform
// @Produce json
// @Param name path string true "Platform name"
// @Success 200 {object} configResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/platforms/{name} [get]
func (h *handler) GetConfig(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	output, err := h.uc.GetConfig(ctx, sc, c.Param("name"))
	if err != nil {
		h.l.Errorf(ctx, "platform.delivery.http.GetConfig: usecase GetConfig failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, configResp{Platform: output.Name, Config: output.Config})
}
