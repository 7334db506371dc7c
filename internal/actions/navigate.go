package actions

import (
	"health-advisor/internal/flow"
	"health-advisor/internal/model"
)

type NextHandler struct{}

func (h *NextHandler) Validate(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	if state.Resolved {
		return flowMessages(flow.ErrSessionResolved)
	}
	if !ctl.CanProceed(*state) {
		return []model.CalculationMessage{critical(CodeCannotProceed, "Select at least one option before moving on")}
	}
	return nil
}

func (h *NextHandler) Apply(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	next, err := ctl.Next(*state)
	if err != nil {
		return flowMessages(err)
	}
	*state = next
	return nil
}

type BackHandler struct{}

func (h *BackHandler) Validate(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	if state.Resolved {
		return flowMessages(flow.ErrSessionResolved)
	}
	if state.Position == 0 {
		return []model.CalculationMessage{{
			Level:   model.LevelWarning,
			Code:    CodeAlreadyAtStart,
			Message: "Already at the first question",
		}}
	}
	return nil
}

func (h *BackHandler) Apply(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	next, err := ctl.GoBack(*state)
	if err != nil {
		return flowMessages(err)
	}
	*state = next
	return nil
}

// ResetHandler is always valid, including on a resolved session.
type ResetHandler struct{}

func (h *ResetHandler) Validate(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	return nil
}

func (h *ResetHandler) Apply(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	*state = flow.Reset()
	return nil
}
