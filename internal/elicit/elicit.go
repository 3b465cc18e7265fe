package elicit

import (
	"context"
	"fmt"
)

// Action is the user's response to a preference prompt.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
	ActionCancel  Action = "cancel"
)

// Outcome is the result of asking the user for preferences.
type Outcome struct {
	Action      Action
	Preferences map[string]any
}

// Request describes what is being asked of the user.
type Request struct {
	Message string
	Schema  string
}

// Elicitor asks the user for preferences before content preparation.
type Elicitor interface {
	Elicit(ctx context.Context, req Request) (Outcome, error)
}

// ParseAction maps a wire value to an Action. An empty value means the
// caller supplied preferences inline and accepts the prompt.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case "":
		return ActionAccept, nil
	case ActionAccept, ActionDecline, ActionCancel:
		return Action(s), nil
	default:
		return "", fmt.Errorf("elicit: invalid action %q", s)
	}
}

// Static is an Elicitor with a predetermined outcome. The HTTP layer uses
// it to fold the preference prompt into a single request.
type Static struct {
	outcome Outcome
}

// NewStatic builds a Static elicitor for one request.
func NewStatic(action Action, preferences map[string]any) *Static {
	return &Static{outcome: Outcome{Action: action, Preferences: preferences}}
}

// Elicit returns the predetermined outcome.
func (s *Static) Elicit(_ context.Context, _ Request) (Outcome, error) {
	return s.outcome, nil
}
