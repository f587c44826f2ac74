package upload

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/clipstream/backend/internal/models"
)

type recordingFeed struct {
	mu     sync.Mutex
	videos []models.Video
}

func (f *recordingFeed) AddVideo(_ context.Context, video models.Video) {
	f.mu.Lock()
	f.videos = append(f.videos, video)
	f.mu.Unlock()
}

func (f *recordingFeed) all() []models.Video {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Video, len(f.videos))
	copy(out, f.videos)
	return out
}

func newTestUploader(feed FeedAppender) *Uploader {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewUploader(feed, Config{Tick: time.Millisecond}, logger)
}

func waitForDone(t *testing.T, u *Uploader, id string) Status {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-deadline:
			t.Fatal("upload did not finish in time")
		case <-time.After(2 * time.Millisecond):
		}
		status, ok := u.Status(id)
		if !ok {
			t.Fatalf("job %s unknown", id)
		}
		if status.Done {
			return status
		}
	}
}

func TestUploadRunsToCompletion(t *testing.T) {
	feed := &recordingFeed{}
	uploader := newTestUploader(feed)
	defer shutdown(t, uploader)

	author := models.User{ID: "1", Username: "dancingqueen"}
	id, err := uploader.Enqueue(context.Background(), Request{
		Author:      author,
		VideoURL:    "file:///tmp/clip.mp4",
		Description: "my new clip #test",
		IsPrivate:   true,
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	status := waitForDone(t, uploader, id)
	if status.Progress != 100 {
		t.Fatalf("expected 100%% progress, got %d", status.Progress)
	}
	if status.Status != "Complete!" {
		t.Fatalf("unexpected terminal status %q", status.Status)
	}
	if status.Video == nil {
		t.Fatal("expected terminal video")
	}
	if status.Video.UserID != author.ID || status.Video.User.Username != author.Username {
		t.Fatalf("expected author snapshot, got %+v", status.Video.User)
	}
	if status.Video.Likes != 0 || status.Video.Comments != 0 || status.Video.Shares != 0 {
		t.Fatal("fresh uploads start with zero counters")
	}
	if !status.Video.IsPrivate {
		t.Fatal("privacy flag must carry through")
	}

	videos := feed.all()
	if len(videos) != 1 || videos[0].ID != status.Video.ID {
		t.Fatalf("expected the video in the feed, got %d entries", len(videos))
	}
}

func TestEnqueueValidation(t *testing.T) {
	uploader := newTestUploader(&recordingFeed{})
	defer shutdown(t, uploader)

	author := models.User{ID: "1"}

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{
			name: "no author",
			req:  Request{VideoURL: "file:///clip.mp4", Description: "x"},
			want: ErrNotSignedIn,
		},
		{
			name: "no video",
			req:  Request{Author: author, Description: "x"},
			want: ErrMissingVideo,
		},
		{
			name: "blank description",
			req:  Request{Author: author, VideoURL: "file:///clip.mp4", Description: "   "},
			want: ErrMissingDescription,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uploader.Enqueue(context.Background(), tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestStatusUnknownJob(t *testing.T) {
	uploader := newTestUploader(&recordingFeed{})
	defer shutdown(t, uploader)

	if _, ok := uploader.Status("nope"); ok {
		t.Fatal("unknown job must not be reported")
	}
}

func TestEnqueueAfterShutdownFails(t *testing.T) {
	uploader := newTestUploader(&recordingFeed{})
	shutdown(t, uploader)

	_, err := uploader.Enqueue(context.Background(), Request{
		Author:      models.User{ID: "1"},
		VideoURL:    "file:///clip.mp4",
		Description: "too late",
	})
	if err == nil {
		t.Fatal("expected error after shutdown")
	}
}

func shutdown(t *testing.T, u *Uploader) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := u.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
