package scoring

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-advisor/internal/catalog"
	"health-advisor/internal/model"
)

func newTestScorer(t *testing.T) (*Scorer, *catalog.Catalog) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	s, err := NewScorer(c, DefaultTable)
	require.NoError(t, err)
	return s, c
}

func TestScoreEmptyAnswers(t *testing.T) {
	s, _ := newTestScorer(t)

	out := s.Score(model.AnswerMap{})

	assert.Equal(t, model.Scores{}, out.Scores)
	assert.Empty(t, out.ReasonKeys)
}

func TestElevatedPSAOnlyCountsForMales(t *testing.T) {
	s, _ := newTestScorer(t)

	male := s.Score(model.AnswerMap{
		"gender":       model.Single("male"),
		"age":          model.Single("50to59"),
		"maleProstate": model.Single("elevated_psa"),
	})
	female := s.Score(model.AnswerMap{
		"gender":       model.Single("female"),
		"age":          model.Single("50to59"),
		"maleProstate": model.Single("elevated_psa"),
	})
	noGender := s.Score(model.AnswerMap{
		"age":          model.Single("50to59"),
		"maleProstate": model.Single("elevated_psa"),
	})

	assert.Equal(t, 6, male.Scores.Cancer)
	assert.Contains(t, male.ReasonKeys, "elevated_psa")

	assert.Equal(t, 2, female.Scores.Cancer)
	assert.NotContains(t, female.ReasonKeys, "elevated_psa")

	assert.Equal(t, female.Scores, noGender.Scores)
}

func TestAgeMultiplierScalesFamilyHistoryOnly(t *testing.T) {
	s, _ := newTestScorer(t)

	tests := []struct {
		age        string
		wantCancer int
	}{
		{"", 3},
		{"under30", 3},
		{"40to49", 3 + 1},
		{"50to59", 4 + 2},
		{"over60", 4 + 3},
	}

	for _, tt := range tests {
		t.Run("age="+tt.age, func(t *testing.T) {
			answers := model.AnswerMap{"familyCancer": model.Multi("stomach")}
			if tt.age != "" {
				answers["age"] = model.Single(tt.age)
			}
			assert.Equal(t, tt.wantCancer, s.Score(answers).Scores.Cancer)
		})
	}

	young := s.Score(model.AnswerMap{"age": model.Single("under30"), "smoking": model.Single("regular")})
	old := s.Score(model.AnswerMap{"age": model.Single("over60"), "smoking": model.Single("regular")})
	assert.Equal(t, 4, young.Scores.Cancer)
	assert.Equal(t, 4+3, old.Scores.Cancer, "lifestyle points are not age-scaled")
}

func TestNoneIsAuthoritative(t *testing.T) {
	s, _ := newTestScorer(t)

	out := s.Score(model.AnswerMap{
		"familyCancer":      model.Multi("none", "stomach", "lung"),
		"digestiveSymptoms": model.Multi("blood", "none"),
	})

	assert.Equal(t, model.Scores{}, out.Scores)
	assert.Empty(t, out.ReasonKeys)
}

func TestMultiSelectIsAdditive(t *testing.T) {
	s, _ := newTestScorer(t)

	out := s.Score(model.AnswerMap{
		"chronicConditions": model.Multi("diabetes", "hypertension"),
	})

	assert.Equal(t, 6, out.Scores.Overall)
	assert.Equal(t, 5, out.Scores.Cardio)
	assert.Equal(t, 3, out.Scores.Metabolic)
	assert.Equal(t, []string{"hypertension", "diabetes"}, out.ReasonKeys, "catalog option order, not selection order")
}

func TestReasonsAreDeduplicatedAndCapped(t *testing.T) {
	s, _ := newTestScorer(t)

	out := s.Score(model.AnswerMap{
		"smoking":      model.Single("regular"),
		"smokingYears": model.Single("over20"),
		"drinking":     model.Single("daily"),
		"exercise":     model.Single("sedentary"),
		"stress":       model.Single("high"),
	})

	assert.Equal(t, []string{"smoking", "alcohol", "sedentary"}, out.ReasonKeys)
}

func TestUrgentReasonsComeFirst(t *testing.T) {
	s, _ := newTestScorer(t)

	out := s.Score(model.AnswerMap{
		"age":               model.Single("over60"),
		"smoking":           model.Single("regular"),
		"digestiveSymptoms": model.Multi("weight_loss", "blood"),
	})

	require.NotEmpty(t, out.ReasonKeys)
	assert.Equal(t, "blood_in_stool", out.ReasonKeys[0])
	assert.Equal(t, []string{"blood_in_stool", "age_50plus", "smoking"}, out.ReasonKeys)
}

func TestScoreIsDeterministic(t *testing.T) {
	s, c := newTestScorer(t)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 50; i++ {
		answers := randomAnswers(rng, c)
		first := s.Score(answers)
		for j := 0; j < 5; j++ {
			assert.Equal(t, first, s.Score(answers.Clone()))
		}
	}
}

func TestScoreIsMonotonic(t *testing.T) {
	s, c := newTestScorer(t)
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 30; i++ {
		base := randomAnswers(rng, c)
		before := s.Score(base).Scores

		for _, q := range c.Questions {
			if _, answered := base[q.ID]; answered {
				continue
			}
			for _, o := range q.Options {
				next := base.Clone()
				if q.Mode == model.ModeMultiple {
					next[q.ID] = model.Multi(o.Value)
				} else {
					next[q.ID] = model.Single(o.Value)
				}
				after := s.Score(next).Scores
				assertNotBelow(t, before, after, q.ID+"="+o.Value)
			}
		}
	}
}

func assertNotBelow(t *testing.T, before, after model.Scores, label string) {
	t.Helper()
	assert.GreaterOrEqual(t, after.Overall, before.Overall, label)
	assert.GreaterOrEqual(t, after.Cancer, before.Cancer, label)
	assert.GreaterOrEqual(t, after.Cardio, before.Cardio, label)
	assert.GreaterOrEqual(t, after.Digestive, before.Digestive, label)
	assert.GreaterOrEqual(t, after.Metabolic, before.Metabolic, label)
	assert.GreaterOrEqual(t, after.Brain, before.Brain, label)
	assert.GreaterOrEqual(t, after.Liver, before.Liver, label)
}

// randomAnswers answers roughly half of the catalog with random options.
func randomAnswers(rng *rand.Rand, c *catalog.Catalog) model.AnswerMap {
	answers := model.AnswerMap{}
	for _, q := range c.Questions {
		if rng.Intn(2) == 0 {
			continue
		}
		if q.Mode == model.ModeSingle {
			answers[q.ID] = model.Single(q.Options[rng.Intn(len(q.Options))].Value)
			continue
		}
		var vs []string
		for _, o := range q.Options {
			if o.Value != model.NoneValue && rng.Intn(3) == 0 {
				vs = append(vs, o.Value)
			}
		}
		if len(vs) == 0 {
			vs = []string{model.NoneValue}
		}
		answers[q.ID] = model.Multi(vs...)
	}
	return answers
}

func TestTableValidate(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)

	bad := Table{
		"ghost":   {"x": {Points: Points{Overall: 1}}},
		"smoking": {"cigars": {Points: Points{Overall: 1}}, "regular": {Reason: "nope"}},
		"diet":    {"none": {Points: Points{Overall: 1}}},
	}

	err = bad.Validate(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown question "ghost"`)
	assert.Contains(t, err.Error(), `smoking has no option "cigars"`)
	assert.Contains(t, err.Error(), `unknown reason "nope"`)
	assert.Contains(t, err.Error(), "none option cannot carry points")

	_, err = NewScorer(c, bad)
	assert.Error(t, err)
}
