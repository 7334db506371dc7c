package scoring

import "health-advisor/internal/model"

// Points is one contribution to the risk accumulators. All fields are
// non-negative; no rule ever lowers a score.
type Points struct {
	Overall   int
	Cancer    int
	Cardio    int
	Digestive int
	Metabolic int
	Brain     int
	Liver     int
}

// Contribution is the table entry for one (question, value) pair.
type Contribution struct {
	Points

	// Gender restricts the contribution to respondents whose gender answer
	// equals it. An absent gender answer skips the contribution.
	Gender string

	// AgeScaled multiplies the cancer, cardio and brain points by the age
	// band multiplier. Only family-history answers use it.
	AgeScaled bool

	// Reason is the reason catalog key appended when the contribution fires.
	Reason string
}

// Age multipliers in tenths, keyed by age option value.
var ageMultipliers = map[string]int{
	"under30": 10,
	"30to39":  10,
	"40to49":  11,
	"50to59":  12,
	"over60":  13,
}

func ageMultiplier(answers model.AnswerMap) int {
	if m, ok := ageMultipliers[answers.Value("age")]; ok {
		return m
	}
	return 10
}

// scaled applies a multiplier in tenths, rounding half up.
func scaled(v, tenths int) int {
	return (v*tenths + 5) / 10
}

func (p Points) scale(tenths int) Points {
	p.Cancer = scaled(p.Cancer, tenths)
	p.Cardio = scaled(p.Cardio, tenths)
	p.Brain = scaled(p.Brain, tenths)
	return p
}

func addPoints(s *model.Scores, p Points) {
	s.Overall += p.Overall
	s.Cancer += p.Cancer
	s.Cardio += p.Cardio
	s.Digestive += p.Digestive
	s.Metabolic += p.Metabolic
	s.Brain += p.Brain
	s.Liver += p.Liver
}
