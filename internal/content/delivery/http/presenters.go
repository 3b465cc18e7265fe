package http

import (
	"voice-srv/internal/content"
	"voice-srv/internal/elicit"
)

// =====================================================
// Request DTOs
// =====================================================

type articulateReq struct {
	Content           string         `json:"content"`
	Preferences       map[string]any `json:"preferences,omitempty"`
	ElicitationAction string         `json:"elicitation_action,omitempty"`
}

func (r articulateReq) toInput(action elicit.Action) content.ArticulateInput {
	return content.ArticulateInput{
		Content:  r.Content,
		Elicitor: elicit.NewStatic(action, r.Preferences),
	}
}

type optimizeReq struct {
	Content           string         `json:"content"`
	Preferences       map[string]any `json:"preferences,omitempty"`
	ElicitationAction string         `json:"elicitation_action,omitempty"`
}

func (r optimizeReq) toInput(action elicit.Action) content.OptimizeInput {
	return content.OptimizeInput{
		Content:  r.Content,
		Elicitor: elicit.NewStatic(action, r.Preferences),
	}
}

type saveOutputReq struct {
	Category string `json:"category" binding:"required"`
	Filename string `json:"filename" binding:"required"`
	Content  string `json:"content"`
}

func (r saveOutputReq) toInput() content.SaveOutputInput {
	return content.SaveOutputInput{
		Category: r.Category,
		Filename: r.Filename,
		Content:  r.Content,
	}
}

// =====================================================
// Response DTOs
// =====================================================

type articulateResp struct {
	Status    string                      `json:"status"`
	Payload   content.ArticulationPayload `json:"payload"`
	Published bool                        `json:"published"`
}

type optimizeResp struct {
	Status    string                      `json:"status"`
	Payload   content.OptimizationPayload `json:"payload"`
	Published bool                        `json:"published"`
}

type saveOutputResp struct {
	Path string `json:"path"`
}

type elicitationResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *handler) newArticulateResp(output content.ArticulateOutput) articulateResp {
	return articulateResp{
		Status:    "prepared",
		Payload:   output.Payload,
		Published: output.Published,
	}
}

func (h *handler) newOptimizeResp(output content.OptimizeOutput) optimizeResp {
	return optimizeResp{
		Status:    "prepared",
		Payload:   output.Payload,
		Published: output.Published,
	}
}

func newDeclinedResp() elicitationResp {
	return elicitationResp{Status: "declined", Message: "Preferences declined; no payload was prepared"}
}

func newCancelledResp() elicitationResp {
	return elicitationResp{Status: "cancelled", Message: "Request cancelled; no payload was prepared"}
}
