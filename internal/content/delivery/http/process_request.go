package http

import (
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
	"voice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processArticulateRequest(c *gin.Context) (articulateReq, elicit.Action, model.Scope, error) {
	var req articulateReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", model.Scope{}, err
	}

	action, err := elicit.ParseAction(req.ElicitationAction)
	if err != nil {
		return req, "", model.Scope{}, errInvalidElicitation
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, action, sc, nil
}

func (h *handler) processOptimizeRequest(c *gin.Context) (optimizeReq, elicit.Action, model.Scope, error) {
	var req optimizeReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", model.Scope{}, err
	}

	action, err := elicit.ParseAction(req.ElicitationAction)
	if err != nil {
		return req, "", model.Scope{}, errInvalidElicitation
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, action, sc, nil
}

func (h *handler) processSaveOutputRequest(c *gin.Context) (saveOutputReq, model.Scope, error) {
	var req saveOutputReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
