// Package exam parses and validates audit documents: one JSON file per exam,
// describing per-question answers, confidence scores, and rethink decisions.
package exam

import (
	"encoding/json"
	"fmt"

	"github.com/examaudit/examdash/internal/docpath"
)

// Document is one parsed input file. Data holds the full generic parse for
// path lookups; RawQuestions holds the original bytes of each question so
// JSON export can re-emit them without re-deriving any field.
type Document struct {
	Name         string
	Data         map[string]any
	Questions    []map[string]any
	RawQuestions []json.RawMessage
	Meta         Metadata
}

// Metadata is the document-level header shown alongside the record table.
type Metadata struct {
	Source             string `json:"source"`
	PagesParsed        int    `json:"pages_parsed"`
	HasGlobalAnswerKey bool   `json:"has_global_answer_key"`
	DefaultDepth       string `json:"default_depth"`
}

// Parse decodes raw JSON bytes into a Document. Malformed JSON is a hard
// failure for this document only. Structural problems (missing or empty
// questions) are left for Validate; Parse never rejects a well-formed object.
func Parse(name string, data []byte) (*Document, error) {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	doc := &Document{
		Name: name,
		Data: root,
		Meta: Metadata{
			Source:             docpath.String(root, "doc.source", "Unknown"),
			PagesParsed:        docpath.Int(root, "doc.pages_parsed", 0),
			HasGlobalAnswerKey: docpath.Bool(root, "doc.has_global_answer_key", false),
			DefaultDepth:       docpath.String(root, "defaults.depth", ""),
		},
	}

	// Capture the original question bytes. This only succeeds when questions
	// is an array; otherwise Validate reports the shape problem.
	var raw struct {
		Questions []json.RawMessage `json:"questions"`
	}
	if err := json.Unmarshal(data, &raw); err == nil {
		doc.RawQuestions = raw.Questions
	}

	if list, ok := root["questions"].([]any); ok {
		doc.Questions = make([]map[string]any, len(list))
		for i, item := range list {
			if m, ok := item.(map[string]any); ok {
				doc.Questions[i] = m
			} else {
				doc.Questions[i] = map[string]any{}
			}
		}
	}

	return doc, nil
}
