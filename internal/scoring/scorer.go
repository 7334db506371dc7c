// Package scoring accumulates weighted risk points from a questionnaire's
// answers and collects the reasons behind them.
package scoring

import (
	"errors"
	"fmt"
	"sort"

	"health-advisor/internal/catalog"
	"health-advisor/internal/model"
)

// Outcome is the result of one accumulation pass.
type Outcome struct {
	Scores model.Scores
	// ReasonKeys holds at most MaxReasons distinct keys.
	ReasonKeys []string
}

type Scorer struct {
	catalog *catalog.Catalog
	table   Table
}

// NewScorer binds a contribution table to a catalog, rejecting entries that
// name unknown questions, options or reason keys.
func NewScorer(c *catalog.Catalog, t Table) (*Scorer, error) {
	if err := t.Validate(c); err != nil {
		return nil, err
	}
	return &Scorer{catalog: c, table: t}, nil
}

// Score walks the catalog in order and the options of each question in
// option order, so the outcome never depends on map iteration order.
// A NoneValue selection contributes nothing, and answers stored for
// questions that are currently hidden still count unless a guard excludes
// them.
func (s *Scorer) Score(answers model.AnswerMap) Outcome {
	var scores model.Scores
	reasons := newReasonList()
	gender := answers.Value("gender")
	mult := ageMultiplier(answers)

	for i := range s.catalog.Questions {
		q := &s.catalog.Questions[i]
		a, ok := answers[q.ID]
		if !ok {
			continue
		}
		rules := s.table[q.ID]
		if len(rules) == 0 {
			continue
		}

		for _, o := range q.Options {
			if o.Value == model.NoneValue || !a.Has(o.Value) {
				continue
			}
			c, ok := rules[o.Value]
			if !ok {
				continue
			}
			if c.Gender != "" && c.Gender != gender {
				continue
			}

			p := c.Points
			if c.AgeScaled {
				p = p.scale(mult)
			}
			addPoints(&scores, p)

			if c.Reason != "" {
				r, _ := s.catalog.Reason(c.Reason)
				reasons.add(c.Reason, r.Urgent)
			}
		}
	}

	return Outcome{Scores: scores, ReasonKeys: reasons.keys(MaxReasons)}
}

// Validate checks every table entry against the catalog.
func (t Table) Validate(c *catalog.Catalog) error {
	var errs []error

	ids := make([]string, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		q, ok := c.Question(id)
		if !ok {
			errs = append(errs, fmt.Errorf("scoring table: unknown question %q", id))
			continue
		}
		values := make([]string, 0, len(t[id]))
		for v := range t[id] {
			values = append(values, v)
		}
		sort.Strings(values)

		for _, v := range values {
			if v == model.NoneValue && q.Mode == model.ModeMultiple {
				errs = append(errs, fmt.Errorf("scoring table: %s.%s: the none option cannot carry points", id, v))
			}
			if _, ok := q.Option(v); !ok {
				errs = append(errs, fmt.Errorf("scoring table: %s has no option %q", id, v))
			}
			if key := t[id][v].Reason; key != "" {
				if _, ok := c.Reason(key); !ok {
					errs = append(errs, fmt.Errorf("scoring table: %s.%s: unknown reason %q", id, v, key))
				}
			}
		}
	}

	return errors.Join(errs...)
}
