package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/examaudit/examdash/internal/record"
)

// packetTopN caps why/others entries per question in the review packet.
// Fixed presentation policy, not configurable.
const packetTopN = 2

// Options controls packet formatting shared by Markdown and DOCX.
type Options struct {
	CircledLabels bool
}

// Markdown produces the human-readable review packet, one section per record
// in filtered order.
func Markdown(records []record.Record, now time.Time, opts Options) string {
	var b strings.Builder

	b.WriteString("# Exam Solution Review Packet\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", now.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "**Total Questions:** %d\n", len(records))
	b.WriteString("---\n")

	for i, r := range records {
		fmt.Fprintf(&b, "\n## %d. Question %s\n", i+1, r.QuestionNo)

		fmt.Fprintf(&b, "**Depth:** %s  \n", r.Depth)
		fmt.Fprintf(&b, "**Confidence:** %.1f%%  \n", r.Confidence*100)
		fmt.Fprintf(&b, "**Decision:** %s\n", r.FinalDecision)

		fmt.Fprintf(&b, "\n### Chosen Answer: %s\n", FormatLabel(r.AnswerLabel, opts.CircledLabels))
		fmt.Fprintf(&b, "%s\n", r.AnswerText)

		if r.ProvidedKeyLabel != "" {
			fmt.Fprintf(&b, "\n**Provided Key:** %s\n", FormatLabel(r.ProvidedKeyLabel, opts.CircledLabels))
		}

		if len(r.Why) > 0 {
			b.WriteString("\n### Why\n")
			for n, reason := range topN(r.Why) {
				fmt.Fprintf(&b, "%d. %s\n", n+1, reason)
			}
		}

		if len(r.Others) > 0 {
			b.WriteString("\n### Other Options\n")
			for _, o := range r.Others[:min(packetTopN, len(r.Others))] {
				fmt.Fprintf(&b, "\n**Option %s:** %s\n", FormatLabel(o.Label, opts.CircledLabels), o.Text)
				if o.Reason != "" {
					fmt.Fprintf(&b, "*Reason:* %s\n", o.Reason)
				}
			}
		}

		if flags := flagNames(r); len(flags) > 0 {
			fmt.Fprintf(&b, "\n**Flags:** %s\n", strings.Join(flags, ", "))
		}

		b.WriteString("\n---\n")
	}

	return b.String()
}

func topN(items []string) []string {
	if len(items) > packetTopN {
		return items[:packetTopN]
	}
	return items
}

func flagNames(r record.Record) []string {
	var flags []string
	if r.Illegible {
		flags = append(flags, "Illegible")
	}
	if r.MixedLang {
		flags = append(flags, "Mixed Language")
	}
	if r.HasImages {
		flags = append(flags, "Has Images")
	}
	return flags
}
