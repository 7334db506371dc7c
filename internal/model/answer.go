package model

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Answer is the value recorded for one question: a single value for
// single-select questions, an ordered set for multi-select ones.
type Answer struct {
	Value  string
	Values []string
	multi  bool
}

func Single(value string) Answer {
	return Answer{Value: value}
}

func Multi(values ...string) Answer {
	vs := make([]string, 0, len(values))
	for _, v := range values {
		if !contains(vs, v) {
			vs = append(vs, v)
		}
	}
	return Answer{Values: vs, multi: true}
}

func (a Answer) IsMulti() bool { return a.multi }

// Selected returns the selected values. A multi-select set that holds
// NoneValue next to other values is read as {NoneValue}.
func (a Answer) Selected() []string {
	if !a.multi {
		if a.Value == "" {
			return nil
		}
		return []string{a.Value}
	}
	if contains(a.Values, NoneValue) {
		return []string{NoneValue}
	}
	return a.Values
}

func (a Answer) Has(value string) bool {
	return contains(a.Selected(), value)
}

func (a Answer) Empty() bool {
	return len(a.Selected()) == 0
}

func (a Answer) clone() Answer {
	if !a.multi {
		return a
	}
	vs := make([]string, len(a.Values))
	copy(vs, a.Values)
	return Answer{Values: vs, multi: true}
}

func (a Answer) MarshalJSON() ([]byte, error) {
	if a.multi {
		vs := a.Values
		if vs == nil {
			vs = []string{}
		}
		return json.Marshal(vs)
	}
	return json.Marshal(a.Value)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = Single(s)
		return nil
	}
	var vs []string
	if err := json.Unmarshal(data, &vs); err != nil {
		return fmt.Errorf("answer must be a string or a list of strings: %w", err)
	}
	*a = Multi(vs...)
	return nil
}

func (a *Answer) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = Single(node.Value)
		return nil
	case yaml.SequenceNode:
		var vs []string
		if err := node.Decode(&vs); err != nil {
			return err
		}
		*a = Multi(vs...)
		return nil
	}
	return errors.New("answer must be a scalar or a sequence")
}

// AnswerMap maps question id to its recorded answer.
type AnswerMap map[string]Answer

func (m AnswerMap) Clone() AnswerMap {
	out := make(AnswerMap, len(m))
	for k, v := range m {
		out[k] = v.clone()
	}
	return out
}

// Value returns the single value recorded for id, or "". A set holding
// exactly one selected value reads as that value, so Value and Has agree.
func (m AnswerMap) Value(id string) string {
	a, ok := m[id]
	if !ok {
		return ""
	}
	if a.multi {
		if sel := a.Selected(); len(sel) == 1 {
			return sel[0]
		}
		return ""
	}
	return a.Value
}

// Has reports whether value is among the selected values of id.
func (m AnswerMap) Has(id, value string) bool {
	a, ok := m[id]
	return ok && a.Has(value)
}

func contains(vs []string, v string) bool {
	for _, s := range vs {
		if s == v {
			return true
		}
	}
	return false
}
