package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/clipstream/backend/internal/config"
	"github.com/clipstream/backend/internal/storage"
)

func TestBuildDependencies(t *testing.T) {
	cfg := config.Config{
		NetworkDelay:  time.Millisecond,
		UploadTick:    time.Millisecond,
		UploadWorkers: 1,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps, cleanup := buildDependencies(context.Background(), storage.NewMemoryStore(), cfg, logger)
	if cleanup == nil {
		t.Fatal("expected cleanup function")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = cleanup(ctx)
	}()

	if deps.Sessions == nil {
		t.Fatal("expected session store to be configured")
	}
	if deps.Feed == nil {
		t.Fatal("expected feed store to be configured")
	}
	if deps.Comments == nil {
		t.Fatal("expected comment store to be configured")
	}
	if deps.Uploads == nil {
		t.Fatal("expected uploader to be configured")
	}
	if deps.Discovery == nil {
		t.Fatal("expected discovery service to be configured")
	}
	if deps.Activity == nil {
		t.Fatal("expected activity source to be configured")
	}
	if deps.Users == nil {
		t.Fatal("expected user directory to be configured")
	}
	if deps.AuthLimiter == nil {
		t.Fatal("expected auth rate limiter to be configured")
	}

	videos := deps.Discovery.Trending(10)
	if len(videos) != 0 {
		t.Fatalf("expected empty catalog before the first fetch, got %d videos", len(videos))
	}
}
