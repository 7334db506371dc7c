package actions

import (
	"strings"

	json "github.com/goccy/go-json"

	"health-advisor/internal/flow"
	"health-advisor/internal/model"
)

type answerProps struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

func parseAnswerProps(action *model.Action) (answerProps, []model.CalculationMessage) {
	var props answerProps
	if err := json.Unmarshal(action.ActionProperties, &props); err != nil {
		return props, []model.CalculationMessage{critical(CodeInvalidProperties, "Action properties are not valid JSON: "+err.Error())}
	}
	if strings.TrimSpace(props.QuestionID) == "" || strings.TrimSpace(props.Value) == "" {
		return props, []model.CalculationMessage{critical(CodeInvalidProperties, "question_id and value are required")}
	}
	return props, nil
}

type RecordSingleAnswerHandler struct{}

func (h *RecordSingleAnswerHandler) Validate(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	props, msgs := parseAnswerProps(action)
	if msgs != nil {
		return msgs
	}
	_, err := ctl.RecordSingleAnswer(*state, props.QuestionID, props.Value)
	return flowMessages(err)
}

func (h *RecordSingleAnswerHandler) Apply(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	props, _ := parseAnswerProps(action)
	next, err := ctl.RecordSingleAnswer(*state, props.QuestionID, props.Value)
	if err != nil {
		return flowMessages(err)
	}
	msgs := staleWarnings(ctl, *state, next)
	*state = next
	return msgs
}

type ToggleMultiAnswerHandler struct{}

func (h *ToggleMultiAnswerHandler) Validate(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	props, msgs := parseAnswerProps(action)
	if msgs != nil {
		return msgs
	}
	_, err := ctl.ToggleMultiAnswer(*state, props.QuestionID, props.Value)
	return flowMessages(err)
}

func (h *ToggleMultiAnswerHandler) Apply(ctl *flow.Controller, state *model.SessionState, action *model.Action) []model.CalculationMessage {
	props, _ := parseAnswerProps(action)
	next, err := ctl.ToggleMultiAnswer(*state, props.QuestionID, props.Value)
	if err != nil {
		return flowMessages(err)
	}
	msgs := staleWarnings(ctl, *state, next)
	*state = next
	return msgs
}
