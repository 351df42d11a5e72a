package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/examaudit/examdash/internal/record"
)

func packetRecord() record.Record {
	return record.Record{
		QuestionNo:       "7",
		Depth:            "deep",
		Confidence:       0.925,
		FinalDecision:    "override_key",
		AnswerLabel:      "3",
		AnswerText:       "the third option is correct",
		ProvidedKeyLabel: "2",
		Why:              []string{"reason one", "reason two", "reason three"},
		Others: []record.Alternative{
			{Label: "1", Text: "alt one", Reason: "off topic"},
			{Label: "2", Text: "alt two", Reason: ""},
			{Label: "4", Text: "alt four", Reason: "never shown"},
		},
		Illegible: true,
		HasImages: true,
	}
}

func TestMarkdown_PacketStructure(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	md := Markdown([]record.Record{packetRecord()}, now, Options{})

	assert.True(t, strings.HasPrefix(md, "# Exam Solution Review Packet\n"))
	assert.Contains(t, md, "**Generated:** 2026-03-01 09:00:00")
	assert.Contains(t, md, "**Total Questions:** 1")
	assert.Contains(t, md, "## 1. Question 7")
	assert.Contains(t, md, "**Depth:** deep")
	assert.Contains(t, md, "**Confidence:** 92.5%")
	assert.Contains(t, md, "**Decision:** override_key")
	assert.Contains(t, md, "### Chosen Answer: 3")
	assert.Contains(t, md, "the third option is correct")
	assert.Contains(t, md, "**Provided Key:** 2")
}

func TestMarkdown_TruncatesWhyAndOthersToTwo(t *testing.T) {
	md := Markdown([]record.Record{packetRecord()}, time.Now(), Options{})

	assert.Contains(t, md, "1. reason one")
	assert.Contains(t, md, "2. reason two")
	assert.NotContains(t, md, "reason three")

	assert.Contains(t, md, "**Option 1:** alt one")
	assert.Contains(t, md, "*Reason:* off topic")
	assert.Contains(t, md, "**Option 2:** alt two")
	assert.NotContains(t, md, "alt four")
}

func TestMarkdown_FlagsLine(t *testing.T) {
	md := Markdown([]record.Record{packetRecord()}, time.Now(), Options{})
	assert.Contains(t, md, "**Flags:** Illegible, Has Images")

	plain := packetRecord()
	plain.Illegible = false
	plain.HasImages = false
	md = Markdown([]record.Record{plain}, time.Now(), Options{})
	assert.NotContains(t, md, "**Flags:**")
}

func TestMarkdown_CircledLabels(t *testing.T) {
	md := Markdown([]record.Record{packetRecord()}, time.Now(), Options{CircledLabels: true})
	assert.Contains(t, md, "### Chosen Answer: ③")
	assert.Contains(t, md, "**Provided Key:** ②")
	assert.Contains(t, md, "**Option ①:** alt one")
}

func TestMarkdown_SectionsNumberedInFilteredOrder(t *testing.T) {
	a := packetRecord()
	a.QuestionNo = "9"
	b := packetRecord()
	b.QuestionNo = "4"
	md := Markdown([]record.Record{a, b}, time.Now(), Options{})

	first := strings.Index(md, "## 1. Question 9")
	second := strings.Index(md, "## 2. Question 4")
	assert.True(t, first >= 0 && second > first, "sections must follow input order")
}

func TestFormatLabel(t *testing.T) {
	assert.Equal(t, "3", FormatLabel("3", false))
	assert.Equal(t, "③", FormatLabel("3", true))
	assert.Equal(t, "A", FormatLabel("A", true))
	assert.Equal(t, "", FormatLabel("", true))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "lon...", Truncate("longer text", 3))
	assert.Equal(t, "untouched", Truncate("untouched", 0))
}
