package catalog

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"health-advisor/internal/model"
)

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, len(c.Questions), 35)
	assert.Len(t, c.Packages, PackageCount)

	q, ok := c.Question("maleProstate")
	require.True(t, ok)
	assert.Equal(t, model.ModeSingle, q.Mode)
	assert.NotNil(t, q.VisibleIf)

	_, ok = c.Package("essential")
	assert.True(t, ok)

	r, ok := c.Reason("blood_in_stool")
	require.True(t, ok)
	assert.True(t, r.Urgent)

	assert.Equal(t, 0, c.Position("gender"))
	assert.Equal(t, -1, c.Position("nope"))
}

const packagesYAML = `
packages:
  - {slug: a, name: {en: A}, price: 1}
  - {slug: b, name: {en: B}, price: 1}
  - {slug: c, name: {en: C}, price: 1}
  - {slug: d, name: {en: D}, price: 1}
  - {slug: e, name: {en: E}, price: 1}
  - {slug: f, name: {en: F}, price: 1}
reasons:
  - {key: default, text: {en: ok}}
`

func issues(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	return strings.Split(err.Error(), "\n")
}

func TestParseRejectsForwardReference(t *testing.T) {
	data := `
questions:
  - id: first
    mode: single
    title: {en: First}
    visible_if: {question: second, equals: "yes"}
    options: [{value: "yes", label: {en: "Yes"}}]
  - id: second
    mode: single
    title: {en: Second}
    options: [{value: "yes", label: {en: "Yes"}}]
` + packagesYAML

	_, err := Parse([]byte(data))

	msgs := issues(t, err)
	assert.Contains(t, msgs[0], "questions[0].visible_if")
	assert.Contains(t, msgs[0], "not earlier in the catalog")

	var issue *Issue
	assert.True(t, errors.As(err, &issue))
}

func TestParseRejectsSelfReference(t *testing.T) {
	data := `
questions:
  - id: loop
    mode: single
    title: {en: Loop}
    visible_if: {question: loop, answered: true}
    options: [{value: x, label: {en: X}}]
` + packagesYAML

	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `references question "loop"`)
}

func TestParseRejectsUnknownOptionValue(t *testing.T) {
	data := `
questions:
  - id: gender
    mode: single
    title: {en: Gender}
    options: [{value: male, label: {en: Male}}, {value: female, label: {en: Female}}]
  - id: prostate
    mode: single
    title: {en: Prostate}
    visible_if: {question: gender, equals: man}
    options: [{value: normal, label: {en: Normal}}]
` + packagesYAML

	_, err := Parse([]byte(data))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `question "gender" has no option "man"`)
}

func TestParseRejectsMalformedPredicateNodes(t *testing.T) {
	tests := []struct {
		name, visibleIf, want string
	}{
		{"leaf mixed with all", `{question: gender, equals: male, all: [{question: gender, answered: true}]}`, "questions[1].visible_if: predicate node mixes"},
		{"nested mixed node", `{any: [{question: gender, equals: male, not: {question: gender, equals: female}}]}`, "questions[1].visible_if.any[0]: predicate node mixes"},
		{"nested empty node", `{all: [{question: gender, equals: male}, {}]}`, "questions[1].visible_if.all[1]: empty predicate"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `
questions:
  - id: gender
    mode: single
    title: {en: Gender}
    options: [{value: male, label: {en: Male}}, {value: female, label: {en: Female}}]
  - id: prostate
    mode: single
    title: {en: Prostate}
    visible_if: ` + tt.visibleIf + `
    options: [{value: normal, label: {en: Normal}}]
` + packagesYAML

			_, err := Parse([]byte(data))
			msgs := issues(t, err)
			assert.Contains(t, strings.Join(msgs, "\n"), tt.want)
		})
	}
}

func TestParseCollectsAllIssues(t *testing.T) {
	data := `
questions:
  - id: dup
    mode: sometimes
    title: {en: Dup}
    options: [{value: x, label: {en: X}}, {value: x, label: {en: X}}]
  - id: dup
    mode: single
    title: {en: Dup}
    options: [{value: y, label: {en: Y}}]
packages:
  - {slug: a, name: {en: A}, price: 1}
reasons:
  - {key: default, text: {en: ok}}
`

	_, err := Parse([]byte(data))
	msgs := issues(t, err)

	joined := strings.Join(msgs, "\n")
	assert.Contains(t, joined, `"oneof"`)
	assert.Contains(t, joined, `"len"`)
	assert.Contains(t, joined, `duplicate option value "x"`)
	assert.Contains(t, joined, `duplicate question id "dup"`)
}

func TestWithPrices(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	priced := c.WithPrices(map[string]int64{"essential": 450000, "unknown": 1, "gi-combined": -5})

	p, _ := priced.Package("essential")
	assert.Equal(t, int64(450000), p.Price)

	orig, _ := c.Package("essential")
	assert.Equal(t, int64(500000), orig.Price)

	gi, _ := priced.Package("gi-combined")
	assert.Equal(t, int64(1500000), gi.Price)
}
