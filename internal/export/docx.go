package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fumiama/go-docx"

	"github.com/examaudit/examdash/internal/record"
)

// DOCX writes the review packet as a Word document, mirroring the Markdown
// packet structure: one section per record in filtered order.
func DOCX(w io.Writer, records []record.Record, now time.Time, opts Options) error {
	doc := docx.New().WithDefaultTheme()

	doc.AddParagraph().AddText("Exam Solution Review Packet").Size("36").Bold()
	doc.AddParagraph().AddText("Generated: " + now.Format("2006-01-02 15:04:05"))
	doc.AddParagraph().AddText(fmt.Sprintf("Total Questions: %d", len(records)))

	for i, r := range records {
		doc.AddParagraph() // section spacer
		doc.AddParagraph().AddText(fmt.Sprintf("%d. Question %s", i+1, r.QuestionNo)).Size("28").Bold()
		doc.AddParagraph().AddText(fmt.Sprintf("Depth: %s | Confidence: %.1f%% | Decision: %s",
			r.Depth, r.Confidence*100, r.FinalDecision))

		doc.AddParagraph().AddText("Chosen Answer: " + FormatLabel(r.AnswerLabel, opts.CircledLabels)).Bold()
		if r.AnswerText != "" {
			doc.AddParagraph().AddText(r.AnswerText)
		}

		if r.ProvidedKeyLabel != "" {
			doc.AddParagraph().AddText("Provided Key: " + FormatLabel(r.ProvidedKeyLabel, opts.CircledLabels))
		}

		if len(r.Why) > 0 {
			doc.AddParagraph().AddText("Why").Bold()
			for n, reason := range topN(r.Why) {
				doc.AddParagraph().AddText(fmt.Sprintf("%d. %s", n+1, reason))
			}
		}

		if len(r.Others) > 0 {
			doc.AddParagraph().AddText("Other Options").Bold()
			for _, o := range r.Others[:min(packetTopN, len(r.Others))] {
				doc.AddParagraph().AddText(fmt.Sprintf("Option %s: %s", FormatLabel(o.Label, opts.CircledLabels), o.Text))
				if o.Reason != "" {
					doc.AddParagraph().AddText("Reason: " + o.Reason)
				}
			}
		}

		if flags := flagNames(r); len(flags) > 0 {
			doc.AddParagraph().AddText("Flags: " + strings.Join(flags, ", "))
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
