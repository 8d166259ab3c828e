package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sqliteadapter "github.com/csg33k/employee-roster/internal/adapters/sqlite"
	"github.com/csg33k/employee-roster/internal/config"
	"github.com/csg33k/employee-roster/internal/handlers"
	"github.com/csg33k/employee-roster/internal/roster"
)

func main() {
	cfg := config.MustLoad()
	slog.SetDefault(setupLogger(cfg.Env))

	repo, err := sqliteadapter.New(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer repo.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := roster.Open(ctx, roster.NewSnapshotter(repo, cfg.StorageKey, nil))
	if err != nil {
		log.Fatalf("failed to load roster: %v", err)
	}
	h := handlers.New(store)

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("employee roster running", "addr", "http://"+cfg.HTTPAddr, "db", cfg.DBPath, "employees", store.Len())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "err", err)
	}
}

// setupLogger picks a text handler for local runs and JSON elsewhere.
func setupLogger(env string) *slog.Logger {
	switch env {
	case "local", "dev":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
