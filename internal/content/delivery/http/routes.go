package http

import (
	"voice-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/content")
	api.Use(mw.Auth())
	{
		api.POST("/articulations", h.Articulate)
		api.POST("/optimizations", h.Optimize)
		api.POST("/outputs", h.SaveOutput)
	}
}
