// Package decision turns accumulated risk scores into one package
// recommendation with a short justification.
package decision

import (
	"errors"
	"fmt"
	"strings"

	"health-advisor/internal/catalog"
	"health-advisor/internal/model"
	"health-advisor/internal/scoring"
)

// DefaultReasonKey is used when no answer triggered a reason.
const DefaultReasonKey = "default"

// ReasonSeparator joins the phrases of one language.
const ReasonSeparator = "; "

// Resolver is safe for concurrent use; it holds no mutable state.
type Resolver struct {
	catalog *catalog.Catalog
	scorer  *scoring.Scorer
	rules   []Rule
}

// NewResolver wires the catalog, contribution table and rule list together
// and fails if any of them references something the catalog lacks.
func NewResolver(c *catalog.Catalog, table scoring.Table, rules []Rule) (*Resolver, error) {
	scorer, err := scoring.NewScorer(c, table)
	if err != nil {
		return nil, err
	}
	if err := ValidateRules(c, rules); err != nil {
		return nil, err
	}
	return &Resolver{catalog: c, scorer: scorer, rules: rules}, nil
}

// NewDefaultResolver uses DefaultTable and DefaultRules.
func NewDefaultResolver(c *catalog.Catalog) (*Resolver, error) {
	return NewResolver(c, scoring.DefaultTable, DefaultRules)
}

// ValidateRules checks that every rule selects a catalog package, that the
// default reason exists and that the list ends in a catch-all.
func ValidateRules(c *catalog.Catalog, rules []Rule) error {
	var errs []error
	if len(rules) == 0 {
		return errors.New("decision: empty rule list")
	}
	for i, r := range rules {
		if r.When == nil {
			errs = append(errs, fmt.Errorf("decision: rule %d (%s) has no guard", i, r.Name))
		}
		if _, ok := c.Package(r.Slug); !ok {
			errs = append(errs, fmt.Errorf("decision: rule %d (%s) selects unknown package %q", i, r.Name, r.Slug))
		}
	}
	if last := rules[len(rules)-1]; last.When != nil && !last.When(Signals{Answers: model.AnswerMap{}}) {
		errs = append(errs, errors.New("decision: last rule must hold for empty answers"))
	}
	if _, ok := c.Reason(DefaultReasonKey); !ok {
		errs = append(errs, fmt.Errorf("decision: reason catalog lacks %q", DefaultReasonKey))
	}
	return errors.Join(errs...)
}

// Resolve scores answers and picks a package. It never fails: missing
// answers simply contribute nothing, which leads toward the lowest tier.
func (r *Resolver) Resolve(answers model.AnswerMap) model.RecommendationResult {
	if answers == nil {
		answers = model.AnswerMap{}
	}
	out := r.scorer.Score(answers)

	rule, ok := Decide(r.rules, Signals{Scores: out.Scores, Answers: answers})
	if !ok {
		rule = r.rules[len(r.rules)-1]
	}
	pkg, _ := r.catalog.Package(rule.Slug)

	keys := out.ReasonKeys
	if len(keys) == 0 {
		keys = []string{DefaultReasonKey}
	}

	return model.RecommendationResult{
		PackageSlug: pkg.Slug,
		PackageName: copyText(pkg.Name),
		Price:       pkg.Price,
		Reason:      r.renderReasons(keys),
		ReasonKeys:  keys,
		Scores:      out.Scores,
	}
}

// Scores exposes the accumulation pass without a decision.
func (r *Resolver) Scores(answers model.AnswerMap) model.Scores {
	return r.scorer.Score(answers).Scores
}

// renderReasons joins the phrases language by language. A phrase lacking
// a language is left out of that language's string.
func (r *Resolver) renderReasons(keys []string) model.LocalizedText {
	var texts []model.LocalizedText
	langs := map[string]bool{}
	for _, k := range keys {
		reason, ok := r.catalog.Reason(k)
		if !ok {
			continue
		}
		texts = append(texts, reason.Text)
		for lang := range reason.Text {
			langs[lang] = true
		}
	}

	out := make(model.LocalizedText, len(langs))
	for lang := range langs {
		parts := make([]string, 0, len(texts))
		for _, t := range texts {
			if s, ok := t[lang]; ok && s != "" {
				parts = append(parts, s)
			}
		}
		out[lang] = strings.Join(parts, ReasonSeparator)
	}
	return out
}

func copyText(t model.LocalizedText) model.LocalizedText {
	out := make(model.LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}
