package decision

import "health-advisor/internal/model"

// Signals is what a rule guard can read: the accumulated scores and the
// raw answers for the few guards that check an answer flag directly.
type Signals struct {
	Scores  model.Scores
	Answers model.AnswerMap
}

// Rule pairs a guard with the package it selects.
type Rule struct {
	Name string
	Slug string
	When func(Signals) bool
}

// DefaultRules is evaluated top to bottom; the first guard that holds wins.
// The last rule always holds.
var DefaultRules = []Rule{
	{
		Name: "vip",
		Slug: "vip-total",
		When: func(s Signals) bool {
			sc := s.Scores
			return sc.Overall >= 25 ||
				(sc.Cancer >= 12 && sc.Cardio >= 8) ||
				sc.Cancer >= 15 ||
				s.Answers.Value("checkupGoal") == "deepest" ||
				(s.Answers.Value("age") == "over60" && sc.Cancer >= 10)
		},
	},
	{
		Name: "cardiac",
		Slug: "heart-brain",
		When: func(s Signals) bool {
			return s.Scores.Cardio >= 10 || s.Scores.Brain >= 8
		},
	},
	{
		Name: "gastrointestinal",
		Slug: "gi-combined",
		When: func(s Signals) bool {
			sc := s.Scores
			return s.Answers.Has("digestiveSymptoms", "blood") ||
				sc.Digestive >= 10 ||
				(sc.Digestive >= 6 && (sc.Cancer >= 6 || sc.Liver >= 4))
		},
	},
	{
		Name: "stomach",
		Slug: "gastroscopy",
		When: func(s Signals) bool {
			h := s.Answers.Value("stomachHistory")
			return s.Scores.Digestive >= 6 || h == "ulcer" || h == "h_pylori"
		},
	},
	{
		Name: "early-cancer",
		Slug: "cancer-early",
		When: func(s Signals) bool {
			if hasSymptoms(s.Answers, "digestiveSymptoms") || hasSymptoms(s.Answers, "cardioSymptoms") {
				return false
			}
			return s.Scores.Cancer >= 6 || s.Scores.Liver >= 5
		},
	},
	{
		Name: "vascular-fallback",
		Slug: "heart-brain",
		When: func(s Signals) bool {
			return s.Scores.Cardio >= 5 || s.Scores.Metabolic >= 6
		},
	},
	{
		Name: "digestive-fallback",
		Slug: "gastroscopy",
		When: func(s Signals) bool {
			return s.Scores.Digestive >= 3 || s.Scores.Overall >= 12
		},
	},
	{
		Name: "default",
		Slug: "essential",
		When: func(Signals) bool { return true },
	},
}

// hasSymptoms reports whether a symptom question has any selection other
// than none. An unanswered question has no symptoms.
func hasSymptoms(answers model.AnswerMap, id string) bool {
	a, ok := answers[id]
	if !ok {
		return false
	}
	for _, v := range a.Selected() {
		if v != model.NoneValue {
			return true
		}
	}
	return false
}

// Decide returns the first rule whose guard holds, and false when none does.
func Decide(rules []Rule, s Signals) (Rule, bool) {
	for _, r := range rules {
		if r.When(s) {
			return r, true
		}
	}
	return Rule{}, false
}
