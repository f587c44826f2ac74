package handlers

import (
	"context"

	"github.com/clipstream/backend/internal/discover"
	"github.com/clipstream/backend/internal/models"
	"github.com/clipstream/backend/internal/upload"
)

// SessionStore captures the session operations required by the auth handlers.
type SessionStore interface {
	Login(ctx context.Context, username, password string) bool
	Register(ctx context.Context, username, email, password string) bool
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, update models.UserUpdate)
	CurrentUser() (models.User, bool)
	IsAuthenticated() bool
}

// FeedStore captures the feed state operations exposed over HTTP.
type FeedStore interface {
	FetchVideos(ctx context.Context)
	LikeVideo(ctx context.Context, id string)
	UnlikeVideo(ctx context.Context, id string)
	SetCurrentVideoIndex(index int)
	Videos() []models.Video
	LikedVideoIDs() []string
	CurrentVideoIndex() int
	IsLoading() bool
	Err() string
}

// CommentStore captures per-video comment thread operations.
type CommentStore interface {
	ForVideo(videoID string) []models.Comment
	Add(videoID string, author models.User, text string) (models.Comment, bool)
	ToggleLike(videoID, commentID string) bool
}

// Uploader schedules simulated uploads and reports their progress.
type Uploader interface {
	Enqueue(ctx context.Context, req upload.Request) (string, error)
	Status(id string) (upload.Status, bool)
}

// Discovery answers browse queries over the video collection.
type Discovery interface {
	Search(query string) []models.Video
	Trending(n int) []models.Video
	Creators() []models.User
	Hashtags() []discover.HashtagCount
}
