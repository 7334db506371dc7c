package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"health-advisor/internal/actions"
	"health-advisor/internal/flow"
	"health-advisor/internal/jsonpatch"
	"health-advisor/internal/logging"
	"health-advisor/internal/model"
)

// Engine replays session actions over a fresh questionnaire session.
// Nothing is kept between calls.
type Engine struct {
	ctl    *flow.Controller
	lookup func(name string) (actions.ActionHandler, bool)
}

func New(ctl *flow.Controller) *Engine {
	return &Engine{ctl: ctl, lookup: actions.Get}
}

// Process applies req's actions in order, stopping at the first CRITICAL
// message. The caller must ensure req has at least one action.
func (e *Engine) Process(req *model.ReplayRequest) *model.ReplayResponse {
	start := time.Now()

	state := flow.Reset()

	var allMessages []model.CalculationMessage
	var processed []model.ProcessedAction
	outcome := model.OutcomeSuccess
	hasCritical := false

	// Track last successfully applied action for end_session
	lastActionID := req.Actions[0].ActionID
	lastActionIndex := 0

	for i, act := range req.Actions {
		handler, ok := e.lookup(act.ActionName)
		if !ok {
			msg := model.CalculationMessage{
				ID:      len(allMessages),
				Level:   model.LevelCritical,
				Code:    "UNKNOWN_ACTION",
				Message: fmt.Sprintf("Unknown action: %s", act.ActionName),
			}
			allMessages = append(allMessages, msg)
			processed = append(processed, model.ProcessedAction{
				Action:                    act,
				CalculationMessageIndexes: []int{msg.ID},
				AnswersPatch:              jsonpatch.Marshal(nil),
			})
			outcome = model.OutcomeFailure
			break
		}

		// Validate
		var msgIndexes []int
		for _, vm := range handler.Validate(e.ctl, &state, &act) {
			vm.ID = len(allMessages)
			allMessages = append(allMessages, vm)
			msgIndexes = append(msgIndexes, vm.ID)
			if vm.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		if hasCritical {
			outcome = model.OutcomeFailure
			processed = append(processed, model.ProcessedAction{
				Action:                    act,
				CalculationMessageIndexes: msgIndexes,
				AnswersPatch:              jsonpatch.Marshal(nil),
			})
			break
		}

		// Apply
		before := state
		for _, am := range handler.Apply(e.ctl, &state, &act) {
			am.ID = len(allMessages)
			allMessages = append(allMessages, am)
			msgIndexes = append(msgIndexes, am.ID)
			if am.Level == model.LevelCritical {
				hasCritical = true
			}
		}

		// A failed apply is rolled back, so it changed nothing
		if hasCritical {
			state = before
			outcome = model.OutcomeFailure
			processed = append(processed, model.ProcessedAction{
				Action:                    act,
				CalculationMessageIndexes: msgIndexes,
				AnswersPatch:              jsonpatch.Marshal(nil),
			})
			break
		}

		ops, err := jsonpatch.DiffValues(before.Answers, state.Answers)
		if err != nil {
			logging.Warn().Err(err).Str("action_id", act.ActionID).Msg("failed to diff answers")
		}
		processed = append(processed, model.ProcessedAction{
			Action:                    act,
			CalculationMessageIndexes: msgIndexes,
			AnswersPatch:              jsonpatch.Marshal(ops),
		})

		lastActionID = act.ActionID
		lastActionIndex = i
	}

	elapsed := time.Since(start)
	now := time.Now().UTC()

	if allMessages == nil {
		allMessages = []model.CalculationMessage{}
	}

	logging.Debug().
		Str("client_id", req.ClientID).
		Int("actions", len(processed)).
		Bool("resolved", state.Resolved).
		Str("outcome", outcome).
		Msg("session replayed")

	return &model.ReplayResponse{
		ReplayMetadata: model.ReplayMetadata{
			ReplayID:          uuid.New().String(),
			ClientID:          req.ClientID,
			ReplayStartedAt:   now.Add(-elapsed).Format(time.RFC3339),
			ReplayCompletedAt: now.Format(time.RFC3339),
			ReplayDurationMs:  elapsed.Milliseconds(),
			ReplayOutcome:     outcome,
		},
		ReplayResult: model.ReplayResult{
			Messages: allMessages,
			Actions:  processed,
			EndSession: model.SessionEnvelope{
				ActionID:    lastActionID,
				ActionIndex: lastActionIndex,
				Session:     state,
			},
		},
	}
}
