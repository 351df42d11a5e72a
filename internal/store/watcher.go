package store

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher keeps the store in sync with a data directory: new or rewritten
// JSON files are reloaded, removed files are dropped from the session.
type Watcher struct {
	store *Store
	log   *slog.Logger
	fw    *fsnotify.Watcher
	done  chan struct{}
}

// NewWatcher starts watching dir. Call Start to begin processing events.
func NewWatcher(s *Store, dir string, log *slog.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{
		store: s,
		log:   log,
		fw:    fw,
		done:  make(chan struct{}),
	}, nil
}

// Start launches the event loop.
func (w *Watcher) Start() {
	go w.loop()
}

func (w *Watcher) loop() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if !strings.EqualFold(filepath.Ext(ev.Name), ".json") {
				continue
			}
			w.handle(ev)
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	name := filepath.Base(ev.Name)
	switch {
	case ev.Has(fsnotify.Create) || ev.Has(fsnotify.Write):
		if _, err := w.store.LoadFile(ev.Name); err != nil {
			w.log.Warn("reload failed", "file", name, "error", err)
			return
		}
		w.log.Info("document reloaded", "file", name)
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		if w.store.Remove(name) {
			w.log.Info("document removed", "file", name)
		}
	}
}

// Close stops the watcher and waits for the event loop to exit.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
