package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/examaudit/examdash/internal/filter"
	"github.com/examaudit/examdash/internal/record"
	"github.com/examaudit/examdash/internal/stats"
)

// handleSummary returns the KPI header for the current filtered view.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	filtered, ok := s.filteredView(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document": chi.URLParam(r, "name"),
		"summary":  stats.Summarize(filtered),
	})
}

// handleAnalytics returns the chart aggregates for the current filtered view.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	filtered, ok := s.filteredView(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"document":  chi.URLParam(r, "name"),
		"analytics": stats.Analyze(filtered),
	})
}

func (s *Server) filteredView(w http.ResponseWriter, r *http.Request) ([]record.Record, bool) {
	e := s.entry(w, r)
	if e == nil {
		return nil, false
	}
	criteria, err := parseCriteria(r)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return filter.Apply(e.Records, criteria), true
}
