// Package stats computes the KPI summary and analytics aggregates shown above
// the record table. Everything here is a pure function of a (usually already
// filtered) record set; chart drawing belongs to the client.
package stats

import "github.com/examaudit/examdash/internal/record"

const (
	DecisionAgree    = "agree_with_key"
	DecisionOverride = "override_key"

	// LowConfidenceCutoff flags records the reviewer should look at first.
	LowConfidenceCutoff = 0.7
)

// Summary is the KPI header for a record set.
type Summary struct {
	Total         int     `json:"total"`
	AgreeWithKey  int     `json:"agree_with_key"`
	AgreeRate     float64 `json:"agree_rate"`
	OverrideKey   int     `json:"override_key"`
	OverrideRate  float64 `json:"override_rate"`
	AvgConfidence float64 `json:"avg_confidence"`
	WithImages    int     `json:"with_images"`

	Mismatches    int `json:"mismatches"`
	Illegible     int `json:"illegible"`
	MixedLang     int `json:"mixed_lang"`
	WithRunnerUp  int `json:"with_runner_up"`
	LowConfidence int `json:"low_confidence"`
}

// Summarize computes the KPI summary. Rates are percentages of Total and are
// zero for an empty set.
func Summarize(records []record.Record) Summary {
	s := Summary{Total: len(records)}

	var confSum float64
	for _, r := range records {
		switch r.FinalDecision {
		case DecisionAgree:
			s.AgreeWithKey++
		case DecisionOverride:
			s.OverrideKey++
		}
		confSum += r.Confidence
		if r.HasImages {
			s.WithImages++
		}
		if r.Mismatch {
			s.Mismatches++
		}
		if r.Illegible {
			s.Illegible++
		}
		if r.MixedLang {
			s.MixedLang++
		}
		if r.RunnerUp != "" {
			s.WithRunnerUp++
		}
		if r.Confidence < LowConfidenceCutoff {
			s.LowConfidence++
		}
	}

	if s.Total > 0 {
		s.AgreeRate = float64(s.AgreeWithKey) / float64(s.Total) * 100
		s.OverrideRate = float64(s.OverrideKey) / float64(s.Total) * 100
		s.AvgConfidence = confSum / float64(s.Total)
	}
	return s
}
