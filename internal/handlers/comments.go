package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/clipstream/backend/internal/format"
	"github.com/clipstream/backend/internal/logging"
	"github.com/clipstream/backend/internal/models"
)

// CommentHandler exposes per-video comment threads.
type CommentHandler struct {
	Comments CommentStore
	Sessions SessionStore
}

// Thread handles GET (list) and POST (add) on /api/v1/videos/comments.
func (h CommentHandler) Thread(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.list(w, r)
	case http.MethodPost:
		h.add(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (h CommentHandler) list(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.Comments == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "comment service unavailable"})
		return
	}

	videoID := r.URL.Query().Get("videoId")
	if videoID == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "videoId is required"})
		return
	}

	thread := h.Comments.ForVideo(videoID)
	entries := make([]commentEntry, 0, len(thread))
	for _, comment := range thread {
		entries = append(entries, commentEntry{
			Comment: comment,
			TimeAgo: format.TimeAgo(comment.CreatedAt),
		})
	}
	respondJSON(ctx, w, http.StatusOK, commentThreadResponse{Comments: entries, Count: len(entries)})
}

func (h CommentHandler) add(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Comments == nil || h.Sessions == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "comment service unavailable"})
		return
	}

	author, ok := h.Sessions.CurrentUser()
	if !ok {
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "sign in to comment"})
		return
	}

	var req addCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid comment payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.VideoID == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "videoId is required"})
		return
	}

	comment, ok := h.Comments.Add(req.VideoID, author, req.Text)
	if !ok {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "comment text is required"})
		return
	}

	respondJSON(ctx, w, http.StatusCreated, comment)
}

// ToggleLike handles POST /api/v1/comments/like requests.
func (h CommentHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Comments == nil || h.Sessions == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "comment service unavailable"})
		return
	}

	if !h.Sessions.IsAuthenticated() {
		respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "sign in to like comments"})
		return
	}

	var req likeCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid comment like payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.VideoID == "" || req.CommentID == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "videoId and commentId are required"})
		return
	}

	liked := h.Comments.ToggleLike(req.VideoID, req.CommentID)
	respondJSON(ctx, w, http.StatusOK, map[string]bool{"liked": liked})
}

type addCommentRequest struct {
	VideoID string `json:"videoId"`
	Text    string `json:"text"`
}

type likeCommentRequest struct {
	VideoID   string `json:"videoId"`
	CommentID string `json:"commentId"`
}

type commentEntry struct {
	models.Comment
	TimeAgo string `json:"timeAgo"`
}

type commentThreadResponse struct {
	Comments []commentEntry `json:"comments"`
	Count    int            `json:"count"`
}
