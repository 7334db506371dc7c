package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"health-advisor/internal/model"
	"health-advisor/internal/predicate"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Issue is one catalog configuration defect found at startup.
type Issue struct {
	Path    string
	Message string
}

func (i *Issue) Error() string {
	return i.Path + ": " + i.Message
}

func issuef(path, format string, args ...interface{}) error {
	return &Issue{Path: path, Message: fmt.Sprintf(format, args...)}
}

// Validate checks struct rules, id uniqueness and that every visibility
// predicate only reads questions that come earlier in catalog order.
func (c *Catalog) Validate() error {
	var errs []error

	if err := structValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, issuef(fieldPath(fe.Namespace()), "failed %q validation", fe.Tag()))
			}
		} else {
			errs = append(errs, err)
		}
	}

	seen := make(map[string]int, len(c.Questions))
	for i, q := range c.Questions {
		path := fmt.Sprintf("questions[%d]", i)
		if prev, dup := seen[q.ID]; dup {
			errs = append(errs, issuef(path, "duplicate question id %q (first at questions[%d])", q.ID, prev))
			continue
		}

		values := make(map[string]bool, len(q.Options))
		for j, o := range q.Options {
			if values[o.Value] {
				errs = append(errs, issuef(fmt.Sprintf("%s.options[%d]", path, j), "duplicate option value %q", o.Value))
			}
			values[o.Value] = true
		}

		errs = append(errs, c.checkPredicate(path+".visible_if", q.VisibleIf, seen)...)
		seen[q.ID] = i
	}

	slugs := make(map[string]bool, len(c.Packages))
	for i, p := range c.Packages {
		if slugs[p.Slug] {
			errs = append(errs, issuef(fmt.Sprintf("packages[%d]", i), "duplicate package slug %q", p.Slug))
		}
		slugs[p.Slug] = true
	}

	keys := make(map[string]bool, len(c.Reasons))
	for i, r := range c.Reasons {
		if keys[r.Key] {
			errs = append(errs, issuef(fmt.Sprintf("reasons[%d]", i), "duplicate reason key %q", r.Key))
		}
		keys[r.Key] = true
	}

	return errors.Join(errs...)
}

// checkPredicate verifies that p only references questions in earlier,
// which maps already-validated question ids to their catalog index.
func (c *Catalog) checkPredicate(path string, p *model.Predicate, earlier map[string]int) []error {
	if p == nil {
		return nil
	}
	var errs []error
	empty, mixed := predicate.Check(p)
	for _, sub := range empty {
		errs = append(errs, issuef(path+sub, "empty predicate"))
	}
	for _, sub := range mixed {
		errs = append(errs, issuef(path+sub, "predicate node mixes a question leaf and combinators"))
	}
	if len(errs) > 0 {
		return errs
	}

	for _, ref := range predicate.Refs(p) {
		idx, ok := earlier[ref.Question]
		if !ok {
			errs = append(errs, issuef(path, "references question %q which is not earlier in the catalog", ref.Question))
			continue
		}
		target := &c.Questions[idx]
		for _, v := range ref.Values {
			if _, ok := target.Option(v); !ok {
				errs = append(errs, issuef(path, "question %q has no option %q", ref.Question, v))
			}
		}
	}
	return errs
}

// fieldPath trims the root struct name from a validator namespace.
func fieldPath(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
