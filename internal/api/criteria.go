package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/examaudit/examdash/internal/filter"
)

// parseCriteria builds a filter snapshot from query parameters. Absent
// parameters leave their predicate inactive; malformed numerics are a client
// error rather than being silently ignored.
//
// Recognized parameters:
//
//	range_lo, range_hi  inclusive question range (both required to activate)
//	range_mode          auto | numeric | positional (default auto)
//	has_images, illegible, mixed_lang   all | yes | no
//	decision            repeatable final_decision membership
//	depth               repeatable depth membership
//	confidence_lo, confidence_hi        inclusive bounds, default [0, 1]
//	q                   free-text search term
func parseCriteria(r *http.Request) (filter.Criteria, error) {
	q := r.URL.Query()
	c := filter.New()

	loStr, hiStr := q.Get("range_lo"), q.Get("range_hi")
	if (loStr == "") != (hiStr == "") {
		return c, fmt.Errorf("range_lo and range_hi must be given together")
	}
	if loStr != "" {
		lo, err := strconv.Atoi(loStr)
		if err != nil {
			return c, fmt.Errorf("invalid range_lo: %q", loStr)
		}
		hi, err := strconv.Atoi(hiStr)
		if err != nil {
			return c, fmt.Errorf("invalid range_hi: %q", hiStr)
		}
		c.Range = &filter.Range{Lo: lo, Hi: hi}
	}

	switch q.Get("range_mode") {
	case "", "auto":
		c.RangeMode = filter.RangeAuto
	case "numeric":
		c.RangeMode = filter.RangeNumeric
	case "positional":
		c.RangeMode = filter.RangePositional
	default:
		return c, fmt.Errorf("invalid range_mode: %q", q.Get("range_mode"))
	}

	c.HasImages = filter.ParseTriState(q.Get("has_images"))
	c.Illegible = filter.ParseTriState(q.Get("illegible"))
	c.MixedLang = filter.ParseTriState(q.Get("mixed_lang"))

	c.Decisions = q["decision"]
	c.Depths = q["depth"]

	if v := q.Get("confidence_lo"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("invalid confidence_lo: %q", v)
		}
		c.ConfidenceLo = f
	}
	if v := q.Get("confidence_hi"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return c, fmt.Errorf("invalid confidence_hi: %q", v)
		}
		c.ConfidenceHi = f
	}

	c.Search = q.Get("q")
	return c, nil
}
