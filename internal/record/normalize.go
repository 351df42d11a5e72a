package record

import (
	"github.com/examaudit/examdash/internal/docpath"
	"github.com/examaudit/examdash/internal/exam"
)

// Normalize flattens every question of an accepted document into a Record,
// in document order. It is total: malformed questions become default-filled
// records, never errors, and nothing is sorted or deduped. Normalization runs
// once per document load; callers cache the result against the document.
func Normalize(doc *exam.Document) []Record {
	defaultDepth := docpath.String(doc.Data, "defaults.depth", "")

	records := make([]Record, 0, len(doc.Questions))
	for i, q := range doc.Questions {
		r := Record{
			QuestionNo: docpath.String(q, "question_no", ""),
			Depth:      docpath.String(q, "depth", defaultDepth),

			AnswerLabel: docpath.String(q, "answer.label", ""),
			AnswerText:  docpath.String(q, "answer.text", ""),

			ProvidedKeyLabel: docpath.String(q, "rethink.provided_key.label", ""),
			FirstGuess:       docpath.String(q, "rethink.first_guess", ""),
			FinalDecision:    docpath.String(q, "rethink.final_decision", ""),
			OverrideKey:      docpath.Bool(q, "rethink.override_key", false),
			Mismatch:         docpath.Bool(q, "rethink.mismatch", false),
			RethinkNote:      docpath.String(q, "rethink.note", ""),

			Illegible: docpath.Bool(q, "flags.illegible", false),
			MixedLang: docpath.Bool(q, "flags.mixed_lang", false),

			// Lossy but deterministic: non-numeric confidence becomes 0.0.
			Confidence: docpath.Float(q, "confidence", 0.0),
			RunnerUp:   docpath.String(q, "runner_up", ""),

			HasImages: docpath.Bool(q, "metadata.input_metadata.has_images", false),
			Version:   docpath.String(q, "metadata.version", ""),

			Why:            docpath.Strings(q, "why"),
			Findings:       docpath.Strings(q, "findings"),
			Others:         alternatives(q),
			TeachingPoints: docpath.Strings(q, "teaching_points"),
			ErratumNote:    docpath.String(q, "metadata.erratum_note", ""),

			Source: q,
		}
		if i < len(doc.RawQuestions) {
			r.Raw = doc.RawQuestions[i]
		}
		records = append(records, r)
	}
	return records
}

func alternatives(q map[string]any) []Alternative {
	list, ok := docpath.Get(q, "others", nil).([]any)
	if !ok {
		return nil
	}
	out := make([]Alternative, 0, len(list))
	for _, item := range list {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, Alternative{
			Label:  docpath.String(m, "label", ""),
			Text:   docpath.String(m, "text", ""),
			Reason: docpath.String(m, "reason", ""),
		})
	}
	return out
}
