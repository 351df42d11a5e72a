package export

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// MarkdownHTML renders a Markdown review packet to HTML for in-browser
// preview.
func MarkdownHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown preview: %w", err)
	}
	return buf.String(), nil
}
