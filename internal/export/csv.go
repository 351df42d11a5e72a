package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"math"
	"strconv"

	"github.com/examaudit/examdash/internal/record"
)

// csvColumns is the fixed export column set, in order.
var csvColumns = []string{
	"question_no",
	"answer_label",
	"answer_text",
	"provided_key_label",
	"final_decision",
	"confidence",
	"depth",
	"has_images",
	"illegible",
	"mixed_lang",
	"runner_up",
}

// CSV serializes records to UTF-8 CSV with a header row, one record per row,
// in the given (already filtered) order. Confidence is exported as a
// percentage rounded to two decimals.
func CSV(records []record.Record) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvColumns); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}
	for _, r := range records {
		row := []string{
			r.QuestionNo,
			r.AnswerLabel,
			r.AnswerText,
			r.ProvidedKeyLabel,
			r.FinalDecision,
			formatPercent(r.Confidence),
			r.Depth,
			strconv.FormatBool(r.HasImages),
			strconv.FormatBool(r.Illegible),
			strconv.FormatBool(r.MixedLang),
			r.RunnerUp,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// formatPercent converts a [0,1] confidence to a percentage rounded to two
// decimal places.
func formatPercent(confidence float64) string {
	pct := math.Round(confidence*100*100) / 100
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
