package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examaudit/examdash/internal/exam"
	"github.com/examaudit/examdash/internal/record"
)

func rec(no string, mutate ...func(*record.Record)) record.Record {
	r := record.Record{QuestionNo: no}
	for _, m := range mutate {
		m(&r)
	}
	return r
}

func questionNos(records []record.Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.QuestionNo)
	}
	return out
}

func TestApply_InactiveCriteriaReturnEverything(t *testing.T) {
	records := []record.Record{rec("1"), rec("2"), rec("3")}
	got := Apply(records, New())
	assert.Equal(t, []string{"1", "2", "3"}, questionNos(got))
}

func TestApply_NumericRangeWhenAllParse(t *testing.T) {
	records := []record.Record{rec("10"), rec("11"), rec("12"), rec("13")}
	c := New()
	c.Range = &Range{Lo: 11, Hi: 12}
	got := Apply(records, c)
	assert.Equal(t, []string{"11", "12"}, questionNos(got))
}

func TestApply_RangeFallsBackToPositionalIndices(t *testing.T) {
	// One non-numeric question_no anywhere flips range semantics for the
	// whole collection: [1,2] selects rows 2 and 3, not values 1 and 2.
	records := []record.Record{rec("1"), rec("2"), rec("x")}
	c := New()
	c.Range = &Range{Lo: 1, Hi: 2}
	got := Apply(records, c)
	assert.Equal(t, []string{"2", "x"}, questionNos(got))
}

func TestApply_ExplicitNumericModeDropsUnparseable(t *testing.T) {
	records := []record.Record{rec("1"), rec("2"), rec("x")}
	c := New()
	c.Range = &Range{Lo: 1, Hi: 2}
	c.RangeMode = RangeNumeric
	got := Apply(records, c)
	assert.Equal(t, []string{"1", "2"}, questionNos(got))
}

func TestApply_ExplicitPositionalMode(t *testing.T) {
	records := []record.Record{rec("10"), rec("20"), rec("30")}
	c := New()
	c.Range = &Range{Lo: 0, Hi: 1}
	c.RangeMode = RangePositional
	got := Apply(records, c)
	assert.Equal(t, []string{"10", "20"}, questionNos(got))
}

func TestResolveRangeMode(t *testing.T) {
	assert.Equal(t, RangeNumeric, ResolveRangeMode([]record.Record{rec("1"), rec(" 2 ")}))
	assert.Equal(t, RangePositional, ResolveRangeMode([]record.Record{rec("1"), rec("2b")}))
	assert.Equal(t, RangePositional, ResolveRangeMode([]record.Record{rec("1"), rec("")}))
}

func TestApply_TriStateFilters(t *testing.T) {
	records := []record.Record{
		rec("1", func(r *record.Record) { r.HasImages = true }),
		rec("2"),
		rec("3", func(r *record.Record) { r.Illegible = true; r.MixedLang = true }),
	}

	c := New()
	c.HasImages = Yes
	assert.Equal(t, []string{"1"}, questionNos(Apply(records, c)))

	c = New()
	c.HasImages = No
	assert.Equal(t, []string{"2", "3"}, questionNos(Apply(records, c)))

	c = New()
	c.Illegible = Yes
	c.MixedLang = Yes
	assert.Equal(t, []string{"3"}, questionNos(Apply(records, c)))
}

func TestApply_DecisionSet(t *testing.T) {
	records := []record.Record{
		rec("1", func(r *record.Record) { r.FinalDecision = "agree_with_key" }),
		rec("2", func(r *record.Record) { r.FinalDecision = "override_key" }),
		rec("3", func(r *record.Record) { r.FinalDecision = "agree_with_key" }),
	}

	c := New()
	c.Decisions = []string{"override_key"}
	assert.Equal(t, []string{"2"}, questionNos(Apply(records, c)))

	// "All" present or empty selection means no constraint.
	c.Decisions = []string{"All", "override_key"}
	assert.Len(t, Apply(records, c), 3)
	c.Decisions = nil
	assert.Len(t, Apply(records, c), 3)
}

func TestApply_DepthSet(t *testing.T) {
	records := []record.Record{
		rec("1", func(r *record.Record) { r.Depth = "deep" }),
		rec("2", func(r *record.Record) { r.Depth = "standard" }),
	}
	c := New()
	c.Depths = []string{"deep"}
	assert.Equal(t, []string{"1"}, questionNos(Apply(records, c)))
	c.Depths = nil
	assert.Len(t, Apply(records, c), 2)
}

func TestApply_ConfidenceBoundsAreInclusive(t *testing.T) {
	records := []record.Record{
		rec("1", func(r *record.Record) { r.Confidence = 0.5 }),
		rec("2", func(r *record.Record) { r.Confidence = 0.7 }),
		rec("3", func(r *record.Record) { r.Confidence = 0.9 }),
	}
	c := New()
	c.ConfidenceLo = 0.5
	c.ConfidenceHi = 0.7
	assert.Equal(t, []string{"1", "2"}, questionNos(Apply(records, c)))
}

func TestApply_SearchTermIntegration(t *testing.T) {
	records := []record.Record{
		rec("1", func(r *record.Record) { r.AnswerText = "photosynthesis in plants" }),
		rec("2", func(r *record.Record) { r.Why = []string{"mentions Photosynthesis"} }),
		rec("3"),
	}
	c := New()
	c.Search = "photosynthesis"
	assert.Equal(t, []string{"1", "2"}, questionNos(Apply(records, c)))

	// Whitespace-only terms are inactive.
	c.Search = "   "
	assert.Len(t, Apply(records, c), 3)
}

func TestApply_ConjunctionIsOrderIndependent(t *testing.T) {
	records := []record.Record{
		rec("1", func(r *record.Record) { r.FinalDecision = "override_key"; r.Confidence = 0.95 }),
		rec("2", func(r *record.Record) { r.FinalDecision = "override_key"; r.Confidence = 0.4 }),
		rec("3", func(r *record.Record) { r.FinalDecision = "agree_with_key"; r.Confidence = 0.95 }),
		rec("4", func(r *record.Record) { r.FinalDecision = "override_key"; r.Confidence = 0.9 }),
	}

	a := New()
	a.Decisions = []string{"override_key"}
	b := New()
	b.ConfidenceLo = 0.9
	b.ConfidenceHi = 1.0
	combined := New()
	combined.Decisions = []string{"override_key"}
	combined.ConfidenceLo = 0.9
	combined.ConfidenceHi = 1.0

	assert.Equal(t, Apply(records, combined), Apply(Apply(records, a), b))
	assert.Equal(t, Apply(records, combined), Apply(Apply(records, b), a))
	assert.Equal(t, []string{"1", "4"}, questionNos(Apply(records, combined)))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	records := []record.Record{rec("1"), rec("2"), rec("3")}
	before := questionNos(records)
	c := New()
	c.Range = &Range{Lo: 2, Hi: 2}
	_ = Apply(records, c)
	assert.Equal(t, before, questionNos(records))
}

func TestApply_EndToEndScenario(t *testing.T) {
	// Load a document with 5 questions, 2 overrides, 1 non-numeric
	// question_no; decision filter then confidence range on top.
	src := `{"questions": [
		{"question_no": "1", "answer": {"label": "1", "text": "a"},
		 "rethink": {"final_decision": "override_key"}, "confidence": 0.95},
		{"question_no": "2", "answer": {"label": "2", "text": "b"},
		 "rethink": {"final_decision": "agree_with_key"}, "confidence": 0.8},
		{"question_no": "3a", "answer": {"label": "3", "text": "c"},
		 "rethink": {"final_decision": "agree_with_key"}, "confidence": 0.99},
		{"question_no": "4", "answer": {"label": "4", "text": "d"},
		 "rethink": {"final_decision": "override_key"}, "confidence": 0.6},
		{"question_no": "5", "answer": {"label": "5", "text": "e"},
		 "rethink": {"final_decision": "agree_with_key"}, "confidence": 0.91}
	]}`
	doc, err := exam.Parse("e2e.json", []byte(src))
	require.NoError(t, err)
	require.Empty(t, exam.Validate(doc.Data))
	records := record.Normalize(doc)
	require.Len(t, records, 5)

	c := New()
	c.Decisions = []string{"override_key"}
	overrides := Apply(records, c)
	assert.Equal(t, []string{"1", "4"}, questionNos(overrides))

	c.ConfidenceLo = 0.9
	c.ConfidenceHi = 1.0
	assert.Equal(t, []string{"1"}, questionNos(Apply(records, c)))
	// Applying the confidence bound on top of the first result intersects.
	top := New()
	top.ConfidenceLo = 0.9
	top.ConfidenceHi = 1.0
	assert.Equal(t, []string{"1"}, questionNos(Apply(overrides, top)))
}
