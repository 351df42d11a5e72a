package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/examaudit/examdash/internal/export"
	"github.com/examaudit/examdash/internal/filter"
)

// handleExport serializes the current filtered view in the requested format.
// The same filter parameters as the records query apply, plus labels=circled
// for the Markdown and DOCX packets.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
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

	opts := export.Options{CircledLabels: r.URL.Query().Get("labels") == "circled"}
	base := strings.TrimSuffix(chi.URLParam(r, "name"), ".json")
	now := time.Now()

	switch chi.URLParam(r, "format") {
	case "csv":
		out, err := export.CSV(filtered)
		if err != nil {
			jsonError(w, "csv export failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		serveDownload(w, base+"_export.csv", "text/csv; charset=utf-8", []byte(out))

	case "json":
		out, err := export.JSON(filtered, now)
		if err != nil {
			jsonError(w, "json export failed: "+err.Error(), http.StatusInternalServerError)
			return
		}
		serveDownload(w, base+"_export.json", "application/json; charset=utf-8", []byte(out))

	case "markdown":
		out := export.Markdown(filtered, now, opts)
		serveDownload(w, base+"_review.md", "text/markdown; charset=utf-8", []byte(out))

	case "docx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", base+"_review.docx"))
		if err := export.DOCX(w, filtered, now, opts); err != nil {
			// Headers are already out; all we can do is log.
			s.log.Error("docx export failed", "document", base, "error", err)
		}

	default:
		jsonError(w, "unsupported export format: "+chi.URLParam(r, "format"), http.StatusBadRequest)
	}
}

// handlePreview renders the Markdown review packet as HTML for in-browser
// inspection before downloading.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
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

	opts := export.Options{CircledLabels: r.URL.Query().Get("labels") == "circled"}
	md := export.Markdown(filtered, time.Now(), opts)
	html, err := export.MarkdownHTML(md)
	if err != nil {
		jsonError(w, "preview failed: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func serveDownload(w http.ResponseWriter, filename, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(data)
}
