// Package predicate evaluates declarative visibility rules over an answer map.
package predicate

import (
	"fmt"

	"health-advisor/internal/model"
)

// Eval reports whether p holds for answers. A nil predicate always holds.
// Leaves naming an unanswered question are false.
func Eval(p *model.Predicate, answers model.AnswerMap) bool {
	if p == nil {
		return true
	}
	switch {
	case len(p.All) > 0:
		for i := range p.All {
			if !Eval(&p.All[i], answers) {
				return false
			}
		}
		return true
	case len(p.Any) > 0:
		for i := range p.Any {
			if Eval(&p.Any[i], answers) {
				return true
			}
		}
		return false
	case p.Not != nil:
		return !Eval(p.Not, answers)
	}
	return evalLeaf(p, answers)
}

func evalLeaf(p *model.Predicate, answers model.AnswerMap) bool {
	a, ok := answers[p.Question]
	if !ok || a.Empty() {
		return false
	}
	if p.Equals != "" && !a.Has(p.Equals) {
		return false
	}
	if len(p.In) > 0 {
		found := false
		for _, v := range p.In {
			if a.Has(v) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Ref is one question reference made by a predicate leaf.
type Ref struct {
	Question string
	Values   []string
}

// Refs walks p and returns every leaf reference in document order.
func Refs(p *model.Predicate) []Ref {
	if p == nil {
		return nil
	}
	var out []Ref
	for i := range p.All {
		out = append(out, Refs(&p.All[i])...)
	}
	for i := range p.Any {
		out = append(out, Refs(&p.Any[i])...)
	}
	if p.Not != nil {
		out = append(out, Refs(p.Not)...)
	}
	if p.Question != "" {
		r := Ref{Question: p.Question}
		if p.Equals != "" {
			r.Values = append(r.Values, p.Equals)
		}
		r.Values = append(r.Values, p.In...)
		out = append(out, r)
	}
	return out
}

// Empty reports whether p is a node with no combinator and no leaf.
func Empty(p *model.Predicate) bool {
	return p != nil && parts(p) == 0
}

// Mixed reports whether p sets more than one of all, any, not and a leaf
// question. Eval would only read the first of them.
func Mixed(p *model.Predicate) bool {
	return p != nil && parts(p) > 1
}

// Check walks p and returns the path of every empty or mixed node, using
// "" for the root and ".all[i]", ".any[i]", ".not" below it.
func Check(p *model.Predicate) (empty, mixed []string) {
	check(p, "", &empty, &mixed)
	return empty, mixed
}

func check(p *model.Predicate, path string, empty, mixed *[]string) {
	if p == nil {
		return
	}
	switch {
	case Empty(p):
		*empty = append(*empty, path)
	case Mixed(p):
		*mixed = append(*mixed, path)
	}
	for i := range p.All {
		check(&p.All[i], fmt.Sprintf("%s.all[%d]", path, i), empty, mixed)
	}
	for i := range p.Any {
		check(&p.Any[i], fmt.Sprintf("%s.any[%d]", path, i), empty, mixed)
	}
	if p.Not != nil {
		check(p.Not, path+".not", empty, mixed)
	}
}

func parts(p *model.Predicate) int {
	n := 0
	if len(p.All) > 0 {
		n++
	}
	if len(p.Any) > 0 {
		n++
	}
	if p.Not != nil {
		n++
	}
	if p.Question != "" {
		n++
	}
	return n
}
