package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/examaudit/examdash/internal/record"
)

func TestMatches_CaseInsensitiveAnswerText(t *testing.T) {
	r := record.Record{AnswerText: "The Mitochondria is the powerhouse"}
	assert.True(t, Matches(r, "MITOCHONDRIA"))
	assert.True(t, Matches(r, "powerhouse"))
	assert.False(t, Matches(r, "chloroplast"))
}

func TestMatches_WhyEntries(t *testing.T) {
	r := record.Record{Why: []string{"first reason", "second REASON about gravity"}}
	assert.True(t, Matches(r, "gravity"))
}

func TestMatches_FindingsEntries(t *testing.T) {
	r := record.Record{Findings: []string{"diagram label swapped"}}
	assert.True(t, Matches(r, "Diagram"))
}

func TestMatches_ScansNestedOthers(t *testing.T) {
	r := record.Record{Others: []record.Alternative{{Text: "Foo BAR", Reason: ""}}}
	assert.True(t, Matches(r, "bar"))

	r = record.Record{Others: []record.Alternative{{Text: "", Reason: "too VAGUE"}}}
	assert.True(t, Matches(r, "vague"))
}

func TestMatches_NoHitAnywhere(t *testing.T) {
	r := record.Record{
		AnswerText: "alpha",
		Why:        []string{"beta"},
		Findings:   []string{"gamma"},
		Others:     []record.Alternative{{Text: "delta", Reason: "epsilon"}},
	}
	assert.False(t, Matches(r, "zeta"))
}

func TestMatches_EmptyRecord(t *testing.T) {
	assert.False(t, Matches(record.Record{}, "anything"))
}
