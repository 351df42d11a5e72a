package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/examaudit/examdash/internal/filter"
	"github.com/examaudit/examdash/internal/store"
)

// handleRecords returns the filtered record page for a document. Filtering
// is a stateless re-derivation over the cached record set; the pagination
// cursor lives entirely in the query string.
func (s *Server) handleRecords(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}

	criteria, err := parseCriteria(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	filtered := filter.Apply(e.Records, criteria)

	page, pageSize, err := s.parsePagination(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := min(start+pageSize, total)
	if start > total {
		start = total
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"document":    chi.URLParam(r, "name"),
		"total":       total,
		"page":        page,
		"page_size":   pageSize,
		"total_pages": totalPages,
		"range_mode":  rangeModeName(e, criteria),
		"records":     filtered[start:end],
	})
}

// handleRecordDetail returns one record's flat projection together with its
// original nested question for the detail pane.
func (s *Server) handleRecordDetail(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}

	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || idx < 0 || idx >= len(e.Records) {
		jsonError(w, "record index out of range", http.StatusNotFound)
		return
	}

	rec := e.Records[idx]
	writeJSON(w, http.StatusOK, map[string]any{
		"index":    idx,
		"record":   rec,
		"question": json.RawMessage(rec.Raw),
	})
}

func (s *Server) parsePagination(r *http.Request) (page, pageSize int, err error) {
	page, pageSize = 1, s.cfg.DefaultPageSize

	if v := r.URL.Query().Get("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 1 {
			return 0, 0, badParam("page", v)
		}
	}
	if v := r.URL.Query().Get("page_size"); v != "" {
		pageSize, err = strconv.Atoi(v)
		if err != nil || pageSize < 1 {
			return 0, 0, badParam("page_size", v)
		}
		if pageSize > s.cfg.MaxPageSize {
			pageSize = s.cfg.MaxPageSize
		}
	}
	return page, pageSize, nil
}

// rangeModeName reports how the range predicate was (or would be)
// interpreted for this collection, so clients can label their range control.
func rangeModeName(e *store.Entry, c filter.Criteria) string {
	mode := c.RangeMode
	if mode == filter.RangeAuto {
		mode = filter.ResolveRangeMode(e.Records)
	}
	if mode == filter.RangePositional {
		return "positional"
	}
	return "numeric"
}

func badParam(name, value string) error {
	return &paramError{name: name, value: value}
}

type paramError struct {
	name  string
	value string
}

func (e *paramError) Error() string {
	return "invalid " + e.name + ": " + strconv.Quote(e.value)
}
