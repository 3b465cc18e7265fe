package http

import (
	"voice-srv/internal/content"
	"voice-srv/internal/middleware"
	"voice-srv/pkg/discord"
	"voice-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the content HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      content.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc content.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
