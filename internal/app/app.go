package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/clipstream/backend/internal/config"
	"github.com/clipstream/backend/internal/handlers"
	"github.com/clipstream/backend/internal/httpserver"
	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/storage"
)

// Run bootstraps the Clipstream backend application.
func Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return errors.New("expected command: serve or reset")
	}

	switch args[0] {
	case "serve":
		return serve(ctx)
	case "reset":
		return reset(ctx)
	default:
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func serve(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{AddSource: true}))
	slog.SetDefault(logger)

	store, err := storage.OpenSqlite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	deps, cleanup := buildDependencies(ctx, store, cfg, logger)

	mux := http.NewServeMux()
	handlers.RegisterRoutes(mux, deps)

	handler := middleware.RequestLogger(logger)(mux)

	srv := httpserver.New(cfg.AppPort, handler)

	logger.Info("starting http server", "port", cfg.AppPort, "database", cfg.DatabasePath)

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-ctx.Done():
		logger.Info("context canceled, shutting down server")
	case sig := <-signalCh:
		logger.Info("received signal, shutting down", "signal", sig.String())
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), httpserver.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	return cleanup(shutdownCtx)
}

// reset removes the persisted session and feed entries so the next serve
// starts from the seed catalog.
func reset(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, err := storage.OpenSqlite(cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, key := range []string{"user", "feed"} {
		if err := store.Delete(ctx, key); err != nil {
			return fmt.Errorf("clear %q: %w", key, err)
		}
	}

	fmt.Printf("cleared persisted state in %s\n", cfg.DatabasePath)
	return nil
}
