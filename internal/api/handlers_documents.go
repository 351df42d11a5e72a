package api

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/examaudit/examdash/internal/store"
)

// handleListDocuments lists the loaded documents with their metadata.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	names := s.store.Names()
	docs := make([]map[string]any, 0, len(names))
	for _, name := range names {
		e := s.store.Get(name)
		if e == nil {
			continue
		}
		docs = append(docs, map[string]any{
			"name":           name,
			"loaded_at":      e.LoadedAt,
			"question_count": len(e.Records),
			"metadata":       e.Doc.Meta,
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": docs})
}

// handleUploadDocuments accepts one or more JSON documents via multipart
// form. Each file is validated independently; one rejected file never blocks
// the others. The per-file result carries the missing-field descriptors for
// schema-invalid documents.
func (s *Server) handleUploadDocuments(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	files := r.MultipartForm.File["files"]
	if len(files) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	var results []map[string]any
	loaded := 0
	for _, fh := range files {
		name := sanitizeFilename(fh.Filename)
		if !strings.EqualFold(filepath.Ext(name), ".json") {
			results = append(results, map[string]any{
				"filename": name,
				"error":    "unsupported file type: " + filepath.Ext(name),
			})
			continue
		}

		f, err := fh.Open()
		if err != nil {
			results = append(results, map[string]any{
				"filename": name,
				"error":    "failed to open file",
			})
			continue
		}

		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil || int64(len(data)) > s.cfg.MaxUploadBytes {
			results = append(results, map[string]any{
				"filename": name,
				"error":    "file too large or read error",
			})
			continue
		}

		entry, err := s.store.LoadBytes(name, data)
		if err != nil {
			result := map[string]any{
				"filename": name,
				"error":    err.Error(),
			}
			var rejected *store.RejectedError
			if errors.As(err, &rejected) {
				result["missing_fields"] = rejected.Missing
			}
			results = append(results, result)
			continue
		}

		loaded++
		results = append(results, map[string]any{
			"filename":       name,
			"question_count": len(entry.Records),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"loaded":  loaded,
		"results": results,
	})
}

// handleDocumentMeta returns one document's metadata and record count.
func (s *Server) handleDocumentMeta(w http.ResponseWriter, r *http.Request) {
	e := s.entry(w, r)
	if e == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"name":           chi.URLParam(r, "name"),
		"loaded_at":      e.LoadedAt,
		"question_count": len(e.Records),
		"metadata":       e.Doc.Meta,
	})
}

// handleDeleteDocument drops a document from the session. Nothing is
// persisted, so this only affects the in-memory registry.
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !s.store.Remove(name) {
		jsonError(w, "document not found: "+name, http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"removed": name})
}

// sanitizeFilename strips any path components from an uploaded filename.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == string(filepath.Separator) {
		return "upload.json"
	}
	return name
}
