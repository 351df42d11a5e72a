// Package export serializes a filtered record set to CSV, JSON, Markdown,
// DOCX, and an HTML preview of the Markdown packet.
package export

// circledLabels maps the answer labels 1-5 to their circled-digit form used
// on Korean exam sheets.
var circledLabels = map[string]string{
	"1": "①",
	"2": "②",
	"3": "③",
	"4": "④",
	"5": "⑤",
}

// FormatLabel renders an answer label, optionally as a circled digit.
// Labels outside 1-5 pass through unchanged.
func FormatLabel(label string, circled bool) string {
	if label == "" {
		return ""
	}
	if circled {
		if c, ok := circledLabels[label]; ok {
			return c
		}
	}
	return label
}

// Truncate shortens text to max characters, appending an ellipsis when cut.
// Used for compact listings, never for export payloads.
func Truncate(text string, max int) string {
	if max <= 0 || len([]rune(text)) <= max {
		return text
	}
	return string([]rune(text)[:max]) + "..."
}
