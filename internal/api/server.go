// Package api exposes the review dashboard over HTTP: document management,
// filtered record queries, stats, and exports. It is a thin wrapper; all
// pipeline logic lives in the exam/record/filter/export packages.
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/examaudit/examdash/internal/config"
	"github.com/examaudit/examdash/internal/store"
)

// Server is the HTTP API server for the dashboard.
type Server struct {
	router chi.Router
	store  *store.Store
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(st *store.Store, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		store: st,
		log:   log,
		cfg:   cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints.
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(s.cfg.APIKey, s.log))

		r.Get("/api/documents", s.handleListDocuments)
		r.Post("/api/documents", s.handleUploadDocuments)
		r.Get("/api/documents/{name}", s.handleDocumentMeta)
		r.Delete("/api/documents/{name}", s.handleDeleteDocument)

		r.Get("/api/documents/{name}/records", s.handleRecords)
		r.Get("/api/documents/{name}/records/{index}", s.handleRecordDetail)

		r.Get("/api/documents/{name}/export/{format}", s.handleExport)
		r.Get("/api/documents/{name}/preview", s.handlePreview)

		r.Get("/api/documents/{name}/stats/summary", s.handleSummary)
		r.Get("/api/documents/{name}/stats/analytics", s.handleAnalytics)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// entry resolves the document named in the URL, writing a 404 when absent.
func (s *Server) entry(w http.ResponseWriter, r *http.Request) *store.Entry {
	name := chi.URLParam(r, "name")
	e := s.store.Get(name)
	if e == nil {
		jsonError(w, "document not found: "+name, http.StatusNotFound)
	}
	return e
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
