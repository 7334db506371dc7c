package model

// SessionState is one immutable snapshot of a questionnaire session.
// Position indexes the currently visible question list.
type SessionState struct {
	Answers  AnswerMap             `json:"answers"`
	Position int                   `json:"position"`
	Resolved bool                  `json:"resolved"`
	Result   *RecommendationResult `json:"result,omitempty"`
}
