package model

// LocalizedText is a bundle of display strings keyed by language tag.
// The engine carries it around but never reads its contents.
type LocalizedText map[string]string

type QuestionMode string

const (
	ModeSingle   QuestionMode = "single"
	ModeMultiple QuestionMode = "multiple"
)

// NoneValue is the exclusive "none of these" option of multi-select questions.
const NoneValue = "none"

type Option struct {
	Value       string        `json:"value" yaml:"value" validate:"required"`
	Label       LocalizedText `json:"label" yaml:"label" validate:"required"`
	Description LocalizedText `json:"description,omitempty" yaml:"description,omitempty"`
}

type Question struct {
	ID        string        `json:"id" yaml:"id" validate:"required"`
	Mode      QuestionMode  `json:"mode" yaml:"mode" validate:"required,oneof=single multiple"`
	Title     LocalizedText `json:"title" yaml:"title" validate:"required"`
	Options   []Option      `json:"options" yaml:"options" validate:"required,min=1,dive"`
	VisibleIf *Predicate    `json:"visible_if,omitempty" yaml:"visible_if,omitempty"`
}

// Option returns the option with the given value.
func (q *Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Predicate is a declarative visibility rule. Exactly one of the combinators
// (All, Any, Not) or a leaf on Question is expected to be set.
type Predicate struct {
	All []Predicate `json:"all,omitempty" yaml:"all,omitempty"`
	Any []Predicate `json:"any,omitempty" yaml:"any,omitempty"`
	Not *Predicate  `json:"not,omitempty" yaml:"not,omitempty"`

	Question string   `json:"question,omitempty" yaml:"question,omitempty"`
	Equals   string   `json:"equals,omitempty" yaml:"equals,omitempty"`
	In       []string `json:"in,omitempty" yaml:"in,omitempty"`
	Answered bool     `json:"answered,omitempty" yaml:"answered,omitempty"`
}
