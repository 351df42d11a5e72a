package filter

import (
	"slices"
	"strconv"
	"strings"

	"github.com/examaudit/examdash/internal/record"
)

// Apply returns the subset of records satisfying every active criterion,
// preserving original relative order. The input is treated as read-only; the
// result is a fresh slice, never an in-place mutation.
func Apply(records []record.Record, c Criteria) []record.Record {
	mode := c.RangeMode
	if c.Range != nil && mode == RangeAuto {
		mode = ResolveRangeMode(records)
	}

	decisionsActive := c.decisionsActive()
	depthsActive := len(c.Depths) > 0
	term := strings.TrimSpace(c.Search)

	out := make([]record.Record, 0, len(records))
	for i, r := range records {
		if c.Range != nil && !inRange(r, i, *c.Range, mode) {
			continue
		}
		if !c.HasImages.Match(r.HasImages) {
			continue
		}
		if decisionsActive && !slices.Contains(c.Decisions, r.FinalDecision) {
			continue
		}
		if !c.Illegible.Match(r.Illegible) {
			continue
		}
		if !c.MixedLang.Match(r.MixedLang) {
			continue
		}
		if depthsActive && !slices.Contains(c.Depths, r.Depth) {
			continue
		}
		if r.Confidence < c.ConfidenceLo || r.Confidence > c.ConfidenceHi {
			continue
		}
		if term != "" && !Matches(r, term) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ResolveRangeMode decides how RangeAuto interprets bounds for a collection:
// numeric when every record's question_no parses as an integer, positional
// otherwise. The switch is whole-collection, never per-record.
func ResolveRangeMode(records []record.Record) RangeMode {
	for _, r := range records {
		if _, err := strconv.Atoi(strings.TrimSpace(r.QuestionNo)); err != nil {
			return RangePositional
		}
	}
	return RangeNumeric
}

func inRange(r record.Record, index int, rng Range, mode RangeMode) bool {
	switch mode {
	case RangePositional:
		return index >= rng.Lo && index <= rng.Hi
	default:
		n, err := strconv.Atoi(strings.TrimSpace(r.QuestionNo))
		if err != nil {
			return false
		}
		return n >= rng.Lo && n <= rng.Hi
	}
}
