package actions

import (
	"health-advisor/internal/flow"
	"health-advisor/internal/model"
)

// ActionHandler defines the contract for all session actions.
// Validate reports whether the action may run; Apply replaces *state with
// the transitioned session.
type ActionHandler interface {
	Validate(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage
	Apply(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage
}
