// Package filter applies a composable multi-predicate filter to a record set.
// Criteria are an immutable snapshot of the reviewer's controls; applying them
// is a stateless, order-preserving set intersection.
package filter

import "strings"

// TriState is a three-way boolean constraint: unconstrained, must be true,
// or must be false.
type TriState int

const (
	Any TriState = iota
	Yes
	No
)

// ParseTriState maps control values to a TriState. Unknown values mean no
// constraint.
func ParseTriState(s string) TriState {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return Yes
	case "no", "false", "0":
		return No
	default:
		return Any
	}
}

// Match reports whether v satisfies the constraint.
func (t TriState) Match(v bool) bool {
	switch t {
	case Yes:
		return v
	case No:
		return !v
	default:
		return true
	}
}

// RangeMode selects how the question range predicate interprets its bounds.
type RangeMode int

const (
	// RangeAuto filters by parsed question numbers when every record's
	// question_no parses as an integer, and silently switches the whole
	// collection to positional indices when any one does not. This mirrors
	// the historical behavior; callers wanting determinism pick an explicit
	// mode instead.
	RangeAuto RangeMode = iota
	RangeNumeric
	RangePositional
)

// Range is an inclusive [Lo, Hi] bound on question number or position.
type Range struct {
	Lo int
	Hi int
}

// Criteria is the full set of active constraints, applied as a conjunction.
// Empty sets and Any tri-states are inactive; the confidence bounds are
// always applied, so build Criteria with New to get the open [0, 1] range.
type Criteria struct {
	Range     *Range
	RangeMode RangeMode

	HasImages TriState
	Illegible TriState
	MixedLang TriState

	// Decisions is a membership constraint on final_decision. An empty set
	// or one containing "All" is no constraint.
	Decisions []string

	// Depths is a membership constraint on depth. Empty means unconstrained.
	Depths []string

	ConfidenceLo float64
	ConfidenceHi float64

	// Search is a case-insensitive substring term over the free-text fields.
	// Empty or whitespace-only is inactive.
	Search string
}

// New returns Criteria with every predicate inactive.
func New() Criteria {
	return Criteria{ConfidenceLo: 0.0, ConfidenceHi: 1.0}
}

func (c Criteria) decisionsActive() bool {
	if len(c.Decisions) == 0 {
		return false
	}
	for _, d := range c.Decisions {
		if d == "All" {
			return false
		}
	}
	return true
}
