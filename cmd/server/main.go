package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/examaudit/examdash/internal/api"
	"github.com/examaudit/examdash/internal/config"
	"github.com/examaudit/examdash/internal/store"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize the document registry and preload any documents already
	// sitting in the data directory.
	st := store.New(log)
	if cfg.DataDir != "" {
		loaded, err := st.LoadDir(cfg.DataDir)
		if err != nil {
			log.Error("failed to load data directory", "dir", cfg.DataDir, "error", err)
			os.Exit(1)
		}
		log.Info("data directory loaded", "dir", cfg.DataDir, "documents", loaded)
	}

	var watcher *store.Watcher
	if cfg.WatchData && cfg.DataDir != "" {
		var err error
		watcher, err = store.NewWatcher(st, cfg.DataDir, log)
		if err != nil {
			log.Error("failed to start data watcher", "dir", cfg.DataDir, "error", err)
			os.Exit(1)
		}
		watcher.Start()
	}

	// Initialize HTTP server.
	srv := api.NewServer(st, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		if watcher != nil {
			watcher.Close()
		}

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting examdash", "port", cfg.Port)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
