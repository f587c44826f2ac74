package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/clipstream/backend/internal/comments"
	"github.com/clipstream/backend/internal/config"
	"github.com/clipstream/backend/internal/discover"
	"github.com/clipstream/backend/internal/feed"
	"github.com/clipstream/backend/internal/handlers"
	"github.com/clipstream/backend/internal/middleware"
	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/session"
	"github.com/clipstream/backend/internal/storage"
	"github.com/clipstream/backend/internal/upload"
)

// buildDependencies wires together concrete implementations used by the HTTP
// handlers and hydrates persisted state. The returned cleanup drains the
// upload worker pool.
func buildDependencies(ctx context.Context, store storage.Store, cfg config.Config, logger *slog.Logger) (handlers.Dependencies, func(context.Context) error) {
	source := mockdata.NewDirectory(cfg.NetworkDelay)

	sessions := session.NewStore(source, store, logger)
	sessions.Hydrate(ctx)

	feedStore := feed.NewStore(source, store, logger)
	feedStore.Hydrate(ctx)

	uploader := upload.NewUploader(feedStore, upload.Config{
		Tick:    cfg.UploadTick,
		Workers: cfg.UploadWorkers,
	}, logger)

	deps := handlers.Dependencies{
		Sessions:    sessions,
		Feed:        feedStore,
		Comments:    comments.NewStore(),
		Uploads:     uploader,
		Discovery:   discover.NewService(feedStore),
		Activity:    source,
		Users:       source,
		AuthLimiter: middleware.NewIPRateLimiter(10, time.Minute, 5, 10*time.Minute),
	}

	cleanup := func(ctx context.Context) error {
		return uploader.Shutdown(ctx)
	}

	return deps, cleanup
}
