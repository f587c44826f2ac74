// Package upload runs the simulated upload pipeline: jobs advance an
// interval-driven progress counter through staged status text and finish by
// prepending the finished video to the feed.
package upload

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/models"
)

var (
	// ErrMissingVideo indicates no media locator was supplied.
	ErrMissingVideo = errors.New("upload: video required")
	// ErrMissingDescription indicates the description was blank.
	ErrMissingDescription = errors.New("upload: description required")
	// ErrNotSignedIn indicates no author was attached to the request.
	ErrNotSignedIn = errors.New("upload: sign in required")

	errUploaderClosed = errors.New("uploader closed")
)

// FeedAppender receives finished videos.
type FeedAppender interface {
	AddVideo(ctx context.Context, video models.Video)
}

// Request describes a pending upload.
type Request struct {
	Author      models.User
	VideoURL    string
	Description string
	IsPrivate   bool
}

// Status is a point-in-time view of a job.
type Status struct {
	Progress int           `json:"progress"`
	Status   string        `json:"status"`
	Done     bool          `json:"done"`
	Video    *models.Video `json:"video,omitempty"`
}

// Config controls the concurrency and pacing of the uploader.
type Config struct {
	QueueSize int
	Workers   int
	// Tick is the interval between progress increments.
	Tick time.Duration
}

// Uploader processes simulated uploads on a background worker pool.
type Uploader struct {
	feed   FeedAppender
	logger *slog.Logger
	tick   time.Duration

	jobs   chan *job
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	once   sync.Once

	mu   sync.RWMutex
	byID map[string]*job
}

type job struct {
	id      string
	request Request

	mu       sync.RWMutex
	progress int
	status   string
	done     bool
	video    *models.Video
}

// NewUploader constructs an uploader feeding finished videos into feed.
func NewUploader(feed FeedAppender, cfg Config, logger *slog.Logger) *Uploader {
	if feed == nil {
		panic("upload: feed appender must not be nil")
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 16
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Tick <= 0 {
		cfg.Tick = 300 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}

	ctx, cancel := context.WithCancel(context.Background())

	u := &Uploader{
		feed:   feed,
		logger: logger,
		tick:   cfg.Tick,
		jobs:   make(chan *job, cfg.QueueSize),
		ctx:    ctx,
		cancel: cancel,
		byID:   make(map[string]*job),
	}

	u.wg.Add(cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		go u.worker()
	}

	return u
}

// Enqueue validates and schedules an upload, returning the job id callers
// poll for progress.
func (u *Uploader) Enqueue(ctx context.Context, req Request) (string, error) {
	if req.Author.ID == "" {
		return "", ErrNotSignedIn
	}
	if strings.TrimSpace(req.VideoURL) == "" {
		return "", ErrMissingVideo
	}
	if strings.TrimSpace(req.Description) == "" {
		return "", ErrMissingDescription
	}

	j := &job{
		id:      uuid.NewString(),
		request: req,
		status:  "Uploading video...",
	}

	u.mu.Lock()
	u.byID[j.id] = j
	u.mu.Unlock()

	select {
	case <-ctx.Done():
		u.forget(j.id)
		return "", ctx.Err()
	case <-u.ctx.Done():
		u.forget(j.id)
		return "", errUploaderClosed
	case u.jobs <- j:
	}

	return j.id, nil
}

// Status reports the current state of a job.
func (u *Uploader) Status(id string) (Status, bool) {
	u.mu.RLock()
	j, ok := u.byID[id]
	u.mu.RUnlock()
	if !ok {
		return Status{}, false
	}

	j.mu.RLock()
	defer j.mu.RUnlock()
	return Status{
		Progress: j.progress,
		Status:   j.status,
		Done:     j.done,
		Video:    j.video,
	}, true
}

// Shutdown stops accepting work and waits for in-flight jobs to settle.
func (u *Uploader) Shutdown(ctx context.Context) error {
	u.once.Do(func() {
		u.cancel()
		close(u.jobs)
	})

	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (u *Uploader) forget(id string) {
	u.mu.Lock()
	delete(u.byID, id)
	u.mu.Unlock()
}

func (u *Uploader) worker() {
	defer u.wg.Done()
	for j := range u.jobs {
		u.process(j)
	}
}

func (u *Uploader) process(j *job) {
	ticker := time.NewTicker(u.tick)
	defer ticker.Stop()

	// 5% per tick with a 95% ceiling until the final write lands.
	for {
		select {
		case <-u.ctx.Done():
			j.mu.Lock()
			j.status = "Upload cancelled"
			j.done = true
			j.mu.Unlock()
			return
		case <-ticker.C:
		}

		j.mu.Lock()
		if j.progress < 95 {
			j.progress += 5
		}
		switch {
		case j.progress < 30:
			j.status = "Uploading video..."
		case j.progress < 60:
			j.status = "Processing..."
		case j.progress < 90:
			j.status = "Almost done..."
		}
		reached := j.progress >= 95
		j.mu.Unlock()

		if reached {
			break
		}
	}

	video := models.Video{
		ID:          uuid.NewString(),
		UserID:      j.request.Author.ID,
		User:        j.request.Author,
		VideoURL:    j.request.VideoURL,
		Description: j.request.Description,
		CreatedAt:   time.Now().UTC(),
		IsPrivate:   j.request.IsPrivate,
	}

	u.feed.AddVideo(u.ctx, video)

	j.mu.Lock()
	j.progress = 100
	j.status = "Complete!"
	j.video = &video
	j.done = true
	j.mu.Unlock()

	u.logger.Info("upload complete", "videoId", video.ID, "userId", video.UserID)
}
