package stats

import (
	"sort"
	"strconv"

	"github.com/examaudit/examdash/internal/record"
)

// histogramBins splits the [0,1] confidence range for the distribution chart.
const histogramBins = 20

// Count is a labeled tally used for distribution charts.
type Count struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DecisionMismatch tallies records by decision and mismatch status.
type DecisionMismatch struct {
	Decision string `json:"decision"`
	Mismatch bool   `json:"mismatch"`
	Count    int    `json:"count"`
}

// HistogramBin is one confidence bucket; Lo inclusive, Hi exclusive except
// for the last bin which includes 1.0.
type HistogramBin struct {
	Lo    float64 `json:"lo"`
	Hi    float64 `json:"hi"`
	Count int     `json:"count"`
}

// ConfidenceStats summarizes confidence within one decision group.
type ConfidenceStats struct {
	Decision string  `json:"decision"`
	Count    int     `json:"count"`
	Min      float64 `json:"min"`
	Avg      float64 `json:"avg"`
	Max      float64 `json:"max"`
}

// KeyMatch compares chosen answers against provided keys, over records that
// carry a provided key at all.
type KeyMatch struct {
	WithKey int `json:"with_key"`
	Matches int `json:"matches"`
	Differs int `json:"differs"`
}

// RateBucket is an override rate within one grouping bucket.
type RateBucket struct {
	Key       string  `json:"key"`
	Total     int     `json:"total"`
	Overrides int     `json:"overrides"`
	Rate      float64 `json:"rate"`
}

// Analytics bundles every aggregate the dashboard charts from.
type Analytics struct {
	DecisionCounts       []Count            `json:"decision_counts"`
	DecisionMismatch     []DecisionMismatch `json:"decision_mismatch"`
	ConfidenceHistogram  []HistogramBin     `json:"confidence_histogram"`
	ConfidenceByDecision []ConfidenceStats  `json:"confidence_by_decision"`
	AnswerLabelCounts    []Count            `json:"answer_label_counts"`
	KeyMatch             KeyMatch           `json:"key_match"`
	OverrideByDepth      []RateBucket       `json:"override_by_depth"`
	OverrideByImages     []RateBucket       `json:"override_by_images"`
}

// Analyze computes all chart aggregates for a record set. Output slices are
// sorted by key so responses are deterministic.
func Analyze(records []record.Record) Analytics {
	return Analytics{
		DecisionCounts:       decisionCounts(records),
		DecisionMismatch:     decisionMismatch(records),
		ConfidenceHistogram:  confidenceHistogram(records),
		ConfidenceByDecision: confidenceByDecision(records),
		AnswerLabelCounts:    answerLabelCounts(records),
		KeyMatch:             keyMatch(records),
		OverrideByDepth:      overrideRateBy(records, func(r record.Record) string { return r.Depth }),
		OverrideByImages:     overrideRateBy(records, func(r record.Record) string { return strconv.FormatBool(r.HasImages) }),
	}
}

func sortedCounts(m map[string]int) []Count {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]Count, 0, len(keys))
	for _, k := range keys {
		out = append(out, Count{Key: k, Count: m[k]})
	}
	return out
}

func decisionCounts(records []record.Record) []Count {
	m := map[string]int{}
	for _, r := range records {
		m[r.FinalDecision]++
	}
	return sortedCounts(m)
}

func decisionMismatch(records []record.Record) []DecisionMismatch {
	type key struct {
		decision string
		mismatch bool
	}
	m := map[key]int{}
	for _, r := range records {
		m[key{r.FinalDecision, r.Mismatch}]++
	}
	keys := make([]key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].decision != keys[j].decision {
			return keys[i].decision < keys[j].decision
		}
		return !keys[i].mismatch && keys[j].mismatch
	})
	out := make([]DecisionMismatch, 0, len(keys))
	for _, k := range keys {
		out = append(out, DecisionMismatch{Decision: k.decision, Mismatch: k.mismatch, Count: m[k]})
	}
	return out
}

func confidenceHistogram(records []record.Record) []HistogramBin {
	bins := make([]HistogramBin, histogramBins)
	width := 1.0 / float64(histogramBins)
	for i := range bins {
		bins[i].Lo = float64(i) * width
		bins[i].Hi = float64(i+1) * width
	}
	for _, r := range records {
		c := r.Confidence
		if c < 0 || c > 1 {
			continue
		}
		idx := int(c / width)
		if idx >= histogramBins {
			idx = histogramBins - 1
		}
		bins[idx].Count++
	}
	return bins
}

func confidenceByDecision(records []record.Record) []ConfidenceStats {
	type agg struct {
		count    int
		sum      float64
		min, max float64
	}
	m := map[string]*agg{}
	for _, r := range records {
		a, ok := m[r.FinalDecision]
		if !ok {
			a = &agg{min: r.Confidence, max: r.Confidence}
			m[r.FinalDecision] = a
		}
		a.count++
		a.sum += r.Confidence
		if r.Confidence < a.min {
			a.min = r.Confidence
		}
		if r.Confidence > a.max {
			a.max = r.Confidence
		}
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]ConfidenceStats, 0, len(keys))
	for _, k := range keys {
		a := m[k]
		out = append(out, ConfidenceStats{
			Decision: k,
			Count:    a.count,
			Min:      a.min,
			Avg:      a.sum / float64(a.count),
			Max:      a.max,
		})
	}
	return out
}

func answerLabelCounts(records []record.Record) []Count {
	m := map[string]int{}
	for _, r := range records {
		m[r.AnswerLabel]++
	}
	return sortedCounts(m)
}

func keyMatch(records []record.Record) KeyMatch {
	var km KeyMatch
	for _, r := range records {
		if r.ProvidedKeyLabel == "" {
			continue
		}
		km.WithKey++
		if r.AnswerLabel == r.ProvidedKeyLabel {
			km.Matches++
		} else {
			km.Differs++
		}
	}
	return km
}

func overrideRateBy(records []record.Record, keyOf func(record.Record) string) []RateBucket {
	totals := map[string]int{}
	overrides := map[string]int{}
	for _, r := range records {
		k := keyOf(r)
		totals[k]++
		if r.FinalDecision == DecisionOverride {
			overrides[k]++
		}
	}
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]RateBucket, 0, len(keys))
	for _, k := range keys {
		b := RateBucket{Key: k, Total: totals[k], Overrides: overrides[k]}
		b.Rate = float64(b.Overrides) / float64(b.Total) * 100
		out = append(out, b)
	}
	return out
}
