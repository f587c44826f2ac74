// Package comments keeps per-video comment threads. Threads start from the
// seed catalog and live in memory only; adding a comment does not alter the
// aggregate comment counter carried on the video record.
package comments

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/models"
)

// Store holds comment threads keyed by video id. Comment likes follow the
// same split as video likes: a raw counter per comment plus a session-scoped
// liked-set, toggled rather than accumulated. The liked-set is scoped to the
// thread: seed threads reuse comment ids across videos, so membership is
// keyed by (video, comment), never by comment id alone.
type Store struct {
	now func() time.Time

	mu      sync.RWMutex
	threads map[string][]models.Comment
	liked   []likeKey
}

type likeKey struct {
	videoID   string
	commentID string
}

// NewStore constructs an empty comment store. Threads are initialized from
// the seed catalog on first access.
func NewStore() *Store {
	return &Store{
		now:     func() time.Time { return time.Now().UTC() },
		threads: make(map[string][]models.Comment),
	}
}

// ForVideo returns the thread for the given video, newest additions first.
func (s *Store) ForVideo(videoID string) []models.Comment {
	s.mu.Lock()
	thread := s.threadLocked(videoID)
	out := make([]models.Comment, len(thread))
	copy(out, thread)
	s.mu.Unlock()
	return out
}

// Add prepends a comment by author to the video's thread. Blank text is
// rejected.
func (s *Store) Add(videoID string, author models.User, text string) (models.Comment, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Comment{}, false
	}

	comment := models.Comment{
		ID:        uuid.NewString(),
		UserID:    author.ID,
		User:      author,
		Text:      text,
		CreatedAt: s.now(),
	}

	s.mu.Lock()
	thread := s.threadLocked(videoID)
	s.threads[videoID] = append([]models.Comment{comment}, thread...)
	s.mu.Unlock()

	return comment, true
}

// ToggleLike flips the session's like on a comment: liking increments the
// counter and records membership, unliking decrements (floored at zero) and
// removes it. It reports whether the comment is liked afterwards.
func (s *Store) ToggleLike(videoID, commentID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	thread := s.threadLocked(videoID)
	idx := -1
	for i := range thread {
		if thread[i].ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	key := likeKey{videoID: videoID, commentID: commentID}
	if s.isLikedLocked(key) {
		if thread[idx].Likes > 0 {
			thread[idx].Likes--
		}
		filtered := s.liked[:0]
		for _, k := range s.liked {
			if k != key {
				filtered = append(filtered, k)
			}
		}
		s.liked = filtered
		return false
	}

	thread[idx].Likes++
	s.liked = append(s.liked, key)
	return true
}

// LikedCommentIDs returns the session's liked comment ids within the given
// video's thread.
func (s *Store) LikedCommentIDs(videoID string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []string
	for _, k := range s.liked {
		if k.videoID == videoID {
			out = append(out, k.commentID)
		}
	}
	return out
}

func (s *Store) threadLocked(videoID string) []models.Comment {
	if thread, ok := s.threads[videoID]; ok {
		return thread
	}
	thread := mockdata.Comments()
	s.threads[videoID] = thread
	return thread
}

func (s *Store) isLikedLocked(key likeKey) bool {
	for _, k := range s.liked {
		if k == key {
			return true
		}
	}
	return false
}
