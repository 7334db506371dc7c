package actions

import (
	"errors"
	"fmt"
	"strings"

	"health-advisor/internal/flow"
	"health-advisor/internal/model"
)

const (
	CodeInvalidProperties = "INVALID_PROPERTIES"
	CodeUnknownQuestion   = "UNKNOWN_QUESTION"
	CodeModeMismatch      = "MODE_MISMATCH"
	CodeInvalidOption     = "INVALID_OPTION"
	CodeNotVisible        = "QUESTION_NOT_VISIBLE"
	CodeCannotProceed     = "CANNOT_PROCEED"
	CodeSessionResolved   = "SESSION_RESOLVED"
	CodeAlreadyAtStart    = "ALREADY_AT_START"
	CodeStaleAnswers      = "STALE_ANSWERS"
	CodeFlowError         = "FLOW_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{flow.ErrSessionResolved, CodeSessionResolved},
	{flow.ErrUnknownQuestion, CodeUnknownQuestion},
	{flow.ErrModeMismatch, CodeModeMismatch},
	{flow.ErrInvalidOption, CodeInvalidOption},
	{flow.ErrNotVisible, CodeNotVisible},
	{flow.ErrCannotProceed, CodeCannotProceed},
}

func critical(code, message string) model.CalculationMessage {
	return model.CalculationMessage{Level: model.LevelCritical, Code: code, Message: message}
}

// flowMessages turns a flow transition error into a CRITICAL message.
func flowMessages(err error) []model.CalculationMessage {
	if err == nil {
		return nil
	}
	for _, ec := range errorCodes {
		if errors.Is(err, ec.err) {
			return []model.CalculationMessage{critical(ec.code, err.Error())}
		}
	}
	return []model.CalculationMessage{critical(CodeFlowError, err.Error())}
}

// staleWarnings reports answers that became hidden during one action.
func staleWarnings(ctl *flow.Controller, before, after model.SessionState) []model.CalculationMessage {
	old := make(map[string]bool)
	for _, id := range ctl.Stale(before) {
		old[id] = true
	}
	var fresh []string
	for _, id := range ctl.Stale(after) {
		if !old[id] {
			fresh = append(fresh, id)
		}
	}
	if len(fresh) == 0 {
		return nil
	}
	return []model.CalculationMessage{{
		Level:   model.LevelWarning,
		Code:    CodeStaleAnswers,
		Message: fmt.Sprintf("Answers kept for hidden questions: %s", strings.Join(fresh, ", ")),
	}}
}
