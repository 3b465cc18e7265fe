package http

import (
	"voice-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/analyses", h.Analyze)
		api.GET("/analyses", h.ListRuns)
		api.GET("/analyses/:id", h.GetRun)
		api.GET("/voice-profile", h.GetProfile)
	}
}
