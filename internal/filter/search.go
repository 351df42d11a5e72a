package filter

import (
	"strings"

	"github.com/examaudit/examdash/internal/record"
)

// Matches reports whether term occurs, case-insensitively, in any of the
// record's free-text fields. Scan order is answer text, why entries, findings
// entries, then each alternative's text and reason, short-circuiting on the
// first hit. Callers treat an empty or whitespace term as inactive; it never
// reaches this predicate.
func Matches(r record.Record, term string) bool {
	term = strings.ToLower(term)

	if strings.Contains(strings.ToLower(r.AnswerText), term) {
		return true
	}
	for _, w := range r.Why {
		if strings.Contains(strings.ToLower(w), term) {
			return true
		}
	}
	for _, f := range r.Findings {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	for _, o := range r.Others {
		if strings.Contains(strings.ToLower(o.Text), term) ||
			strings.Contains(strings.ToLower(o.Reason), term) {
			return true
		}
	}
	return false
}
