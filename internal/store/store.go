// Package store holds the loaded documents for a review session, keyed by
// filename. Normalization runs once per load and is cached against the
// document, so switching the active document is a lookup, not a recompute.
package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/examaudit/examdash/internal/exam"
	"github.com/examaudit/examdash/internal/record"
)

// Entry is one loaded document with its cached record set.
type Entry struct {
	Doc      *exam.Document
	Records  []record.Record
	LoadedAt time.Time
}

// RejectedError reports a document that parsed but failed schema validation.
// The missing-field descriptors are surfaced to the caller; the document is
// simply excluded from the loaded set.
type RejectedError struct {
	Name    string
	Missing []string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%s rejected: missing %s", e.Name, strings.Join(e.Missing, ", "))
}

// Store is the session registry. The mutex guards the map only; entries are
// immutable once stored, consistent with the single-reviewer model.
type Store struct {
	mu   sync.RWMutex
	docs map[string]*Entry
	log  *slog.Logger
}

func New(log *slog.Logger) *Store {
	return &Store{
		docs: make(map[string]*Entry),
		log:  log,
	}
}

// LoadBytes parses, validates, normalizes, and registers one document.
// Malformed JSON is a hard failure; a schema-invalid document returns a
// *RejectedError. Either way, already-loaded documents are unaffected.
func (s *Store) LoadBytes(name string, data []byte) (*Entry, error) {
	doc, err := exam.Parse(name, data)
	if err != nil {
		return nil, err
	}
	if missing := exam.Validate(doc.Data); len(missing) > 0 {
		return nil, &RejectedError{Name: name, Missing: missing}
	}

	entry := &Entry{
		Doc:      doc,
		Records:  record.Normalize(doc),
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	s.docs[name] = entry
	s.mu.Unlock()

	return entry, nil
}

// LoadFile loads a single JSON file, keyed by its base name.
func (s *Store) LoadFile(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return s.LoadBytes(filepath.Base(path), data)
}

// LoadDir loads every *.json file in dir, in sorted order. Files that fail
// to parse or validate are logged and skipped; one bad file never blocks the
// rest. Returns the number of documents loaded.
func (s *Store) LoadDir(dir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return 0, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)

	loaded := 0
	for _, path := range paths {
		if _, err := s.LoadFile(path); err != nil {
			s.log.Warn("skipping document", "path", path, "error", err)
			continue
		}
		loaded++
	}
	return loaded, nil
}

// Get returns the entry for name, or nil.
func (s *Store) Get(name string) *Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[name]
}

// Names returns the loaded document names, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.docs))
	for name := range s.docs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Remove drops a document from the session. Reports whether it was present.
func (s *Store) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.docs[name]
	delete(s.docs, name)
	return ok
}

// Len returns the number of loaded documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
