package model

import json "github.com/goccy/go-json"

type ReplayResponse struct {
	ReplayMetadata ReplayMetadata `json:"replay_metadata"`
	ReplayResult   ReplayResult   `json:"replay_result"`
}

type ReplayMetadata struct {
	ReplayID          string `json:"replay_id"`
	ClientID          string `json:"client_id"`
	ReplayStartedAt   string `json:"replay_started_at"`
	ReplayCompletedAt string `json:"replay_completed_at"`
	ReplayDurationMs  int64  `json:"replay_duration_ms"`
	ReplayOutcome     string `json:"replay_outcome"`
}

type ReplayResult struct {
	Messages   []CalculationMessage `json:"messages"`
	Actions    []ProcessedAction    `json:"actions"`
	EndSession SessionEnvelope      `json:"end_session"`
}

type ProcessedAction struct {
	Action                    Action          `json:"action"`
	CalculationMessageIndexes []int           `json:"calculation_message_indexes,omitempty"`
	AnswersPatch              json.RawMessage `json:"answers_patch"`
}

type SessionEnvelope struct {
	ActionID    string       `json:"action_id"`
	ActionIndex int          `json:"action_index"`
	Session     SessionState `json:"session"`
}

type RecommendResponse struct {
	Result  RecommendationResult `json:"result"`
	Visible []string             `json:"visible_question_ids"`
}

type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

const (
	OutcomeSuccess = "SUCCESS"
	OutcomeFailure = "FAILURE"
)
