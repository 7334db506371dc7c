package predicate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"health-advisor/internal/model"
)

func TestEval(t *testing.T) {
	answers := model.AnswerMap{
		"gender":            model.Single("female"),
		"age":               model.Single("50to59"),
		"digestiveSymptoms": model.Multi("heartburn", "bloating"),
		"familyCancer":      model.Multi("none", "stomach"),
	}

	tests := []struct {
		name string
		p    *model.Predicate
		want bool
	}{
		{"nil holds", nil, true},
		{"equals match", &model.Predicate{Question: "gender", Equals: "female"}, true},
		{"equals mismatch", &model.Predicate{Question: "gender", Equals: "male"}, false},
		{"absent question", &model.Predicate{Question: "smoking", Equals: "never"}, false},
		{"in single", &model.Predicate{Question: "age", In: []string{"40to49", "50to59"}}, true},
		{"in multi", &model.Predicate{Question: "digestiveSymptoms", In: []string{"blood", "heartburn"}}, true},
		{"none is authoritative", &model.Predicate{Question: "familyCancer", In: []string{"stomach"}}, false},
		{"answered", &model.Predicate{Question: "age", Answered: true}, true},
		{"not absent", &model.Predicate{Not: &model.Predicate{Question: "smoking", Answered: true}}, true},
		{"all", &model.Predicate{All: []model.Predicate{
			{Question: "gender", Equals: "female"},
			{Question: "age", In: []string{"over60"}},
		}}, false},
		{"any", &model.Predicate{Any: []model.Predicate{
			{Question: "gender", Equals: "male"},
			{Question: "age", In: []string{"50to59"}},
		}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Eval(tt.p, answers))
		})
	}
}

func TestRefs(t *testing.T) {
	p := &model.Predicate{Any: []model.Predicate{
		{Question: "gender", Equals: "male"},
		{Not: &model.Predicate{Question: "age", In: []string{"under30", "30to39"}}},
	}}

	refs := Refs(p)

	assert.Equal(t, []Ref{
		{Question: "gender", Values: []string{"male"}},
		{Question: "age", Values: []string{"under30", "30to39"}},
	}, refs)
}

func TestCheck(t *testing.T) {
	leaf := model.Predicate{Question: "gender", Equals: "male"}

	tests := []struct {
		name  string
		p     *model.Predicate
		empty []string
		mixed []string
	}{
		{"nil", nil, nil, nil},
		{"leaf", &leaf, nil, nil},
		{"empty root", &model.Predicate{}, []string{""}, nil},
		{"leaf with all", &model.Predicate{Question: "gender", Equals: "male", All: []model.Predicate{leaf}}, nil, []string{""}},
		{"all with not", &model.Predicate{All: []model.Predicate{leaf}, Not: &leaf}, nil, []string{""}},
		{
			"nested",
			&model.Predicate{Any: []model.Predicate{
				leaf,
				{},
				{Not: &model.Predicate{Question: "age", Answered: true, Any: []model.Predicate{leaf}}},
			}},
			[]string{".any[1]"},
			[]string{".any[2].not"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			empty, mixed := Check(tt.p)
			assert.Equal(t, tt.empty, empty)
			assert.Equal(t, tt.mixed, mixed)
		})
	}
}
