package model

import json "github.com/goccy/go-json"

type ReplayRequest struct {
	ClientID string   `json:"client_id"`
	Actions  []Action `json:"actions"`
}

type Action struct {
	ActionID         string          `json:"action_id"`
	ActionName       string          `json:"action_name"`
	ActionProperties json.RawMessage `json:"action_properties,omitempty"`
}

type AnswersRequest struct {
	Answers AnswerMap `json:"answers"`
}
