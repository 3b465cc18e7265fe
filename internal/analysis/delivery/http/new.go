package http

import (
	"voice-srv/internal/analysis"
	"voice-srv/internal/middleware"
	"voice-srv/pkg/discord"
	"voice-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the analysis HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      analysis.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc analysis.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
