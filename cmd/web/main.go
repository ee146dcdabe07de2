package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"storelens/internal/analytics"
	"storelens/internal/config"
	"storelens/internal/history"
	"storelens/internal/infrastructure"
	transporthttp "storelens/internal/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Optional .env overrides, ignored when the file is absent.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := infrastructure.NewLogger(cfg.Logging)

	paths, err := config.NewPaths(cfg.Paths, cfg.History)
	if err != nil {
		return fmt.Errorf("failed to resolve data paths: %w", err)
	}

	storage, cleanup, err := newStorage(cfg.History, paths)
	if err != nil {
		return fmt.Errorf("failed to open history storage: %w", err)
	}
	defer cleanup()

	store := history.NewStore(storage, logger, cfg.History.MaxRecords)
	service := analytics.NewService(paths, logger)

	router := transporthttp.NewRouter(cfg, service, store, logger)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			slog.String("addr", server.Addr),
			slog.String("data_dir", paths.DataDir),
			slog.String("history_backend", cfg.History.Backend))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// newStorage selects the history persistence backend. The returned cleanup
// closes any held resources and is safe to call once.
func newStorage(cfg config.HistoryConfig, paths *config.Paths) (history.Storage, func(), error) {
	switch cfg.Backend {
	case "sqlite":
		storage, err := history.NewSQLiteStorage(paths.SQLiteFile)
		if err != nil {
			return nil, nil, err
		}
		return storage, func() { storage.Close() }, nil
	default:
		return history.NewFileStorage(paths.HistoryFile), func() {}, nil
	}
}
