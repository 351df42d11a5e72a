package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/examaudit/examdash/internal/record"
)

type jsonEnvelope struct {
	Questions []json.RawMessage `json:"questions"`
	Metadata  jsonMetadata      `json:"metadata"`
}

type jsonMetadata struct {
	TotalExported   int    `json:"total_exported"`
	ExportTimestamp string `json:"export_timestamp"`
}

// JSON re-emits the original nested question objects for every record, in
// filtered order. The raw source bytes pass through untouched (only
// re-indented), so every exported question is identical to what was parsed
// from the source document.
func JSON(records []record.Record, now time.Time) (string, error) {
	questions := make([]json.RawMessage, 0, len(records))
	for _, r := range records {
		if len(r.Raw) > 0 {
			questions = append(questions, r.Raw)
		}
	}

	env := jsonEnvelope{
		Questions: questions,
		Metadata: jsonMetadata{
			TotalExported:   len(questions),
			ExportTimestamp: now.Format(time.RFC3339),
		},
	}

	out, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal json export: %w", err)
	}
	return string(out), nil
}
