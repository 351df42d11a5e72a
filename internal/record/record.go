// Package record flattens nested exam questions into the default-filled
// projection consumed by filtering, stats, and export.
package record

import "encoding/json"

// Alternative is one rejected answer option with its dismissal reason.
type Alternative struct {
	Label  string `json:"label"`
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Record is the flattened projection of one question. Every field has a real
// zero default; consumers never see nulls. Source and Raw carry the original
// nested question for detail rendering and byte-identical JSON re-export, and
// are never written back into the document.
type Record struct {
	QuestionNo string `json:"question_no"`
	Depth      string `json:"depth"`

	AnswerLabel string `json:"answer_label"`
	AnswerText  string `json:"answer_text"`

	ProvidedKeyLabel string `json:"provided_key_label"`
	FirstGuess       string `json:"first_guess"`
	FinalDecision    string `json:"final_decision"`
	OverrideKey      bool   `json:"override_key"`
	Mismatch         bool   `json:"mismatch"`
	RethinkNote      string `json:"rethink_note"`

	Illegible bool `json:"illegible"`
	MixedLang bool `json:"mixed_lang"`

	Confidence float64 `json:"confidence"`
	RunnerUp   string  `json:"runner_up"`

	HasImages bool   `json:"has_images"`
	Version   string `json:"version"`

	Why            []string      `json:"why"`
	Findings       []string      `json:"findings"`
	Others         []Alternative `json:"others"`
	TeachingPoints []string      `json:"teaching_points"`
	ErratumNote    string        `json:"erratum_note"`

	Source map[string]any  `json:"-"`
	Raw    json.RawMessage `json:"-"`
}
