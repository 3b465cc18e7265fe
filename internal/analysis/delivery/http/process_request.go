package http

import (
	"voice-srv/internal/elicit"
	"voice-srv/internal/model"
	"voice-srv/pkg/scope"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (h *handler) processAnalyzeRequest(c *gin.Context) (analyzeReq, elicit.Action, model.Scope, error) {
	var req analyzeReq

	// A bodyless request runs a default comprehensive analysis.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, "", model.Scope{}, err
		}
	}

	action, err := elicit.ParseAction(req.ElicitationAction)
	if err != nil {
		return req, "", model.Scope{}, errInvalidElicitation
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, action, sc, nil
}

func (h *handler) processListRunsRequest(c *gin.Context) (listRunsReq, model.Scope, error) {
	var req listRunsReq

	if err := c.ShouldBindQuery(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processGetRunRequest(c *gin.Context) (uuid.UUID, model.Scope, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, model.Scope{}, errInvalidRunID
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return id, sc, nil
}
