package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/clipstream/backend/internal/logging"
	"github.com/clipstream/backend/internal/models"
)

// FeedHandler exposes feed state and interactions.
type FeedHandler struct {
	Feed FeedStore
}

// State handles GET /api/v1/feed requests.
func (h FeedHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Feed == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "feed service unavailable"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, h.state())
}

// Refresh handles POST /api/v1/feed/refresh requests. Fetching is a no-op
// when videos are already loaded; the response reflects whatever the store
// holds afterwards.
func (h FeedHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Feed == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "feed service unavailable"})
		return
	}

	spanCtx, span := logging.StartSpan(ctx, "feed.fetch")
	h.Feed.FetchVideos(spanCtx)
	span.End()

	respondJSON(ctx, w, http.StatusOK, h.state())
}

// Position handles POST /api/v1/feed/position requests.
func (h FeedHandler) Position(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Feed == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "feed service unavailable"})
		return
	}

	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid position payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Index < 0 {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "index must not be negative"})
		return
	}

	h.Feed.SetCurrentVideoIndex(req.Index)
	w.WriteHeader(http.StatusNoContent)
}

// Like handles POST /api/v1/videos/like requests. An unknown video id is a
// silent no-op, mirroring the store contract.
func (h FeedHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, func(ctx context.Context, id string) { h.Feed.LikeVideo(ctx, id) })
}

// Unlike handles POST /api/v1/videos/unlike requests.
func (h FeedHandler) Unlike(w http.ResponseWriter, r *http.Request) {
	h.interact(w, r, func(ctx context.Context, id string) { h.Feed.UnlikeVideo(ctx, id) })
}

func (h FeedHandler) interact(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string)) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Feed == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "feed service unavailable"})
		return
	}

	var req videoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid video payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.VideoID == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "videoId is required"})
		return
	}

	op(ctx, req.VideoID)
	w.WriteHeader(http.StatusNoContent)
}

func (h FeedHandler) state() feedStateResponse {
	return feedStateResponse{
		Videos:            h.Feed.Videos(),
		LikedVideoIDs:     h.Feed.LikedVideoIDs(),
		CurrentVideoIndex: h.Feed.CurrentVideoIndex(),
		IsLoading:         h.Feed.IsLoading(),
		Error:             h.Feed.Err(),
	}
}

type positionRequest struct {
	Index int `json:"index"`
}

type videoRequest struct {
	VideoID string `json:"videoId"`
}

type feedStateResponse struct {
	Videos            []models.Video `json:"videos"`
	LikedVideoIDs     []string       `json:"likedVideoIds"`
	CurrentVideoIndex int            `json:"currentVideoIndex"`
	IsLoading         bool           `json:"isLoading"`
	Error             string         `json:"error,omitempty"`
}
