// Package flow drives a questionnaire whose visible questions change as
// answers arrive. Every transition returns a new model.SessionState; the
// state passed in is never modified.
package flow

import (
	"errors"
	"fmt"
	"sort"

	"health-advisor/internal/catalog"
	"health-advisor/internal/model"
	"health-advisor/internal/predicate"
)

var (
	ErrUnknownQuestion = errors.New("unknown question")
	ErrModeMismatch    = errors.New("question mode mismatch")
	ErrInvalidOption   = errors.New("invalid option")
	ErrNotVisible      = errors.New("question is not visible")
	ErrCannotProceed   = errors.New("current question has no answer")
	ErrSessionResolved = errors.New("session already resolved")
)

// Resolver produces the recommendation once the questionnaire ends.
type Resolver interface {
	Resolve(answers model.AnswerMap) model.RecommendationResult
}

type Controller struct {
	catalog  *catalog.Catalog
	resolver Resolver
}

func NewController(c *catalog.Catalog, r Resolver) *Controller {
	return &Controller{catalog: c, resolver: r}
}

// VisibleQuestions filters the catalog to the questions whose predicate
// holds for answers, in catalog order. It is recomputed from scratch on
// every call.
func VisibleQuestions(c *catalog.Catalog, answers model.AnswerMap) []model.Question {
	out := make([]model.Question, 0, len(c.Questions))
	for i := range c.Questions {
		if predicate.Eval(c.Questions[i].VisibleIf, answers) {
			out = append(out, c.Questions[i])
		}
	}
	return out
}

// CheckAnswers verifies an answer map received from outside a session:
// every id names a catalog question, every answer has the shape of that
// question's mode and every selected value is one of its options. Empty
// answers are treated as absent.
func CheckAnswers(c *catalog.Catalog, answers model.AnswerMap) error {
	var errs []error

	var unknown []string
	for id := range answers {
		if _, ok := c.Question(id); !ok {
			unknown = append(unknown, id)
		}
	}
	sort.Strings(unknown)
	for _, id := range unknown {
		errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownQuestion, id))
	}

	for i := range c.Questions {
		q := &c.Questions[i]
		a, ok := answers[q.ID]
		if !ok || a.Empty() {
			continue
		}
		if a.IsMulti() != (q.Mode == model.ModeMultiple) {
			errs = append(errs, fmt.Errorf("%w: %s is %s", ErrModeMismatch, q.ID, q.Mode))
			continue
		}
		values := a.Selected()
		if a.IsMulti() {
			values = a.Values
		}
		for _, v := range values {
			if _, ok := q.Option(v); !ok {
				errs = append(errs, fmt.Errorf("%w: %s has no option %q", ErrInvalidOption, q.ID, v))
			}
		}
	}

	return errors.Join(errs...)
}

// Reset returns an empty session positioned on the first question.
func Reset() model.SessionState {
	return model.SessionState{Answers: model.AnswerMap{}}
}

func (ctl *Controller) Visible(s model.SessionState) []model.Question {
	return VisibleQuestions(ctl.catalog, s.Answers)
}

// Current returns the question at the session position.
func (ctl *Controller) Current(s model.SessionState) (model.Question, bool) {
	if s.Resolved {
		return model.Question{}, false
	}
	visible := ctl.Visible(s)
	if s.Position < 0 || s.Position >= len(visible) {
		return model.Question{}, false
	}
	return visible[s.Position], true
}

// CanProceed reports whether the current question has at least one value.
func (ctl *Controller) CanProceed(s model.SessionState) bool {
	q, ok := ctl.Current(s)
	if !ok {
		return false
	}
	a, ok := s.Answers[q.ID]
	return ok && !a.Empty()
}

// RecordSingleAnswer replaces the answer of a single-select question and
// moves to the question after it in the recomputed visible list, resolving
// the session when none is left.
func (ctl *Controller) RecordSingleAnswer(s model.SessionState, questionID, value string) (model.SessionState, error) {
	q, err := ctl.answerable(s, questionID, value, model.ModeSingle)
	if err != nil {
		return s, err
	}

	next := model.SessionState{Answers: s.Answers.Clone()}
	next.Answers[q.ID] = model.Single(value)

	visible := VisibleQuestions(ctl.catalog, next.Answers)
	next.Position = indexOf(visible, q.ID) + 1
	return ctl.settle(next, visible), nil
}

// ToggleMultiAnswer flips one value of a multi-select question. Selecting
// none clears every other value and selecting anything else drops none.
// The session position stays on the toggled question.
func (ctl *Controller) ToggleMultiAnswer(s model.SessionState, questionID, value string) (model.SessionState, error) {
	q, err := ctl.answerable(s, questionID, value, model.ModeMultiple)
	if err != nil {
		return s, err
	}

	next := model.SessionState{Answers: s.Answers.Clone()}
	values := toggle(s.Answers[q.ID], value)
	if len(values) == 0 {
		delete(next.Answers, q.ID)
	} else {
		next.Answers[q.ID] = model.Multi(values...)
	}

	next.Position = indexOf(VisibleQuestions(ctl.catalog, next.Answers), q.ID)
	return next, nil
}

func toggle(a model.Answer, value string) []string {
	var current []string
	if a.IsMulti() {
		current = a.Values
	}
	if value == model.NoneValue {
		if containsValue(current, model.NoneValue) {
			return nil
		}
		return []string{model.NoneValue}
	}

	out := make([]string, 0, len(current)+1)
	found := false
	for _, v := range current {
		switch v {
		case model.NoneValue:
		case value:
			found = true
		default:
			out = append(out, v)
		}
	}
	if !found {
		out = append(out, value)
	}
	return out
}

// Next advances past the current question once it has an answer.
func (ctl *Controller) Next(s model.SessionState) (model.SessionState, error) {
	if s.Resolved {
		return s, ErrSessionResolved
	}
	if !ctl.CanProceed(s) {
		return s, ErrCannotProceed
	}
	next := model.SessionState{Answers: s.Answers.Clone(), Position: s.Position + 1}
	return ctl.settle(next, ctl.Visible(next)), nil
}

// GoBack moves to the previous visible question. Answers are kept, so
// moving forward again shows what was entered before.
func (ctl *Controller) GoBack(s model.SessionState) (model.SessionState, error) {
	if s.Resolved {
		return s, ErrSessionResolved
	}
	next := model.SessionState{Answers: s.Answers.Clone(), Position: s.Position}
	if next.Position > 0 {
		next.Position--
	}
	return next, nil
}

// Stale returns the ids of stored answers whose questions are hidden now,
// in catalog order.
func (ctl *Controller) Stale(s model.SessionState) []string {
	visible := ctl.Visible(s)
	shown := make(map[string]bool, len(visible))
	for _, q := range visible {
		shown[q.ID] = true
	}
	var out []string
	for _, q := range ctl.catalog.Questions {
		if _, ok := s.Answers[q.ID]; ok && !shown[q.ID] {
			out = append(out, q.ID)
		}
	}
	return out
}

// settle resolves the session when the position ran past the last
// visible question.
func (ctl *Controller) settle(s model.SessionState, visible []model.Question) model.SessionState {
	if s.Position < len(visible) {
		return s
	}
	res := ctl.resolver.Resolve(s.Answers)
	s.Position = len(visible)
	s.Resolved = true
	s.Result = &res
	return s
}

func (ctl *Controller) answerable(s model.SessionState, questionID, value string, mode model.QuestionMode) (*model.Question, error) {
	if s.Resolved {
		return nil, ErrSessionResolved
	}
	q, ok := ctl.catalog.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}
	if q.Mode != mode {
		return nil, fmt.Errorf("%w: %s is %s", ErrModeMismatch, questionID, q.Mode)
	}
	if _, ok := q.Option(value); !ok {
		return nil, fmt.Errorf("%w: %s has no option %q", ErrInvalidOption, questionID, value)
	}
	if !predicate.Eval(q.VisibleIf, s.Answers) {
		return nil, fmt.Errorf("%w: %s", ErrNotVisible, questionID)
	}
	return q, nil
}

func indexOf(qs []model.Question, id string) int {
	for i, q := range qs {
		if q.ID == id {
			return i
		}
	}
	return -1
}

func containsValue(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}
