// Package feed owns the ordered video collection, per-video like state, the
// viewer's scroll position and the loading/error flags, persisted to durable
// storage so likes and local uploads survive restarts.
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/models"
	"github.com/clipstream/backend/internal/storage"
)

// storageKey is the durable entry holding the serialized feed state.
const storageKey = "feed"

// persistedState is the durable shape: the video collection plus the liked
// identifier set. Scroll position and transient flags are not persisted.
type persistedState struct {
	Videos        []models.Video `json:"videos"`
	LikedVideoIDs []string       `json:"likedVideoIds"`
}

// Store tracks feed state. Likes keep two deliberately independent pieces of
// state: each video's raw like counter and the session's liked-set. Liking
// twice bumps the counter twice but records membership once.
type Store struct {
	source mockdata.Source
	state  storage.Store
	logger *slog.Logger

	mu           sync.RWMutex
	videos       []models.Video
	likedIDs     []string
	currentIndex int
	loading      bool
	errMsg       string
}

// NewStore constructs a feed store on top of the provided data source and
// durable state store.
func NewStore(source mockdata.Source, state storage.Store, logger *slog.Logger) *Store {
	if source == nil {
		panic("feed: data source must not be nil")
	}
	if state == nil {
		panic("feed: state store must not be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		source: source,
		state:  state,
		logger: logger,
	}
}

// Hydrate restores persisted videos and liked identifiers. Read or decode
// failures are swallowed and leave the store empty.
func (s *Store) Hydrate(ctx context.Context) {
	raw, err := s.state.Get(ctx, storageKey)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.logger.Warn("failed to load persisted feed", "error", err)
		}
		return
	}

	var persisted persistedState
	if err := json.Unmarshal(raw, &persisted); err != nil {
		s.logger.Warn("failed to decode persisted feed", "error", err)
		return
	}

	s.mu.Lock()
	s.videos = persisted.Videos
	s.likedIDs = persisted.LikedVideoIDs
	s.mu.Unlock()
}

// FetchVideos loads the catalog through the data source. When videos are
// already present the fetched result is discarded so locally added uploads
// are never clobbered by the seed catalog.
func (s *Store) FetchVideos(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	catalog, err := s.source.FetchCatalog(ctx)
	if err != nil {
		s.logger.Warn("catalog fetch failed", "error", err)
		s.mu.Lock()
		s.loading = false
		s.errMsg = err.Error()
		s.mu.Unlock()
		return
	}

	s.mu.Lock()
	if len(s.videos) > 0 {
		s.loading = false
		s.mu.Unlock()
		return
	}
	for i := range catalog {
		catalog[i].IsLiked = contains(s.likedIDs, catalog[i].ID)
	}
	s.videos = catalog
	s.loading = false
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// LikeVideo increments the video's like counter, marks it liked and records
// membership in the liked-set exactly once. Unknown ids are a silent no-op.
func (s *Store) LikeVideo(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.videos[idx].Likes++
	s.videos[idx].IsLiked = true
	if !contains(s.likedIDs, id) {
		s.likedIDs = append(s.likedIDs, id)
	}
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// UnlikeVideo decrements the like counter, floored at zero, clears the liked
// flag and removes the id from the liked-set. Unknown ids are a silent no-op.
func (s *Store) UnlikeVideo(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexOfLocked(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	if s.videos[idx].Likes > 0 {
		s.videos[idx].Likes--
	}
	s.videos[idx].IsLiked = false
	s.likedIDs = remove(s.likedIDs, id)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// SetCurrentVideoIndex records the viewer's scroll position. The value is
// not validated against the collection length; that is the caller's job.
func (s *Store) SetCurrentVideoIndex(index int) {
	s.mu.Lock()
	s.currentIndex = index
	s.mu.Unlock()
}

// AddVideo prepends a video so the newest upload is first.
func (s *Store) AddVideo(ctx context.Context, video models.Video) {
	s.mu.Lock()
	s.videos = append([]models.Video{video}, s.videos...)
	snapshot := s.snapshotLocked()
	s.mu.Unlock()

	s.persist(ctx, snapshot)
}

// Videos returns a copy of the current collection.
func (s *Store) Videos() []models.Video {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Video, len(s.videos))
	copy(out, s.videos)
	return out
}

// LikedVideoIDs returns a copy of the liked identifier set.
func (s *Store) LikedVideoIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.likedIDs))
	copy(out, s.likedIDs)
	return out
}

// CurrentVideoIndex returns the viewer's scroll position.
func (s *Store) CurrentVideoIndex() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentIndex
}

// IsLoading reports whether a catalog fetch is in flight.
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err returns the last fetch error message, empty when none.
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) indexOfLocked(id string) int {
	for i := range s.videos {
		if s.videos[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) snapshotLocked() persistedState {
	videos := make([]models.Video, len(s.videos))
	copy(videos, s.videos)
	liked := make([]string, len(s.likedIDs))
	copy(liked, s.likedIDs)
	return persistedState{Videos: videos, LikedVideoIDs: liked}
}

func (s *Store) persist(ctx context.Context, snapshot persistedState) {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Warn("failed to encode feed state", "error", err)
		return
	}
	if err := s.state.Put(ctx, storageKey, raw); err != nil {
		s.logger.Warn("failed to persist feed state", "error", err)
	}
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func remove(ids []string, id string) []string {
	out := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			out = append(out, candidate)
		}
	}
	return out
}
