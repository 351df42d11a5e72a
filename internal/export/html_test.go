package export

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/examaudit/examdash/internal/record"
)

func TestMarkdownHTML_RendersPacket(t *testing.T) {
	md := Markdown([]record.Record{packetRecord()}, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), Options{})
	html, err := MarkdownHTML(md)
	require.NoError(t, err)

	assert.Contains(t, html, "<h1>Exam Solution Review Packet</h1>")
	assert.Contains(t, html, "<h2>1. Question 7</h2>")
	assert.Contains(t, html, "<h3>Chosen Answer: 3</h3>")
	assert.Contains(t, html, "<strong>Decision:</strong>")
}
