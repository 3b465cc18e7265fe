package consumer

import (
	"voice-srv/internal/analysis"
	"voice-srv/pkg/log"
)

// Handler consumes analysis job messages as a sarama consumer group handler.
type Handler struct {
	l  log.Logger
	uc analysis.UseCase
}

// New creates the jobs topic handler.
func New(l log.Logger, uc analysis.UseCase) *Handler {
	return &Handler{l: l, uc: uc}
}
