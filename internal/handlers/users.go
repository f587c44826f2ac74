package handlers

import (
	"net/http"

	"github.com/clipstream/backend/internal/models"
)

// UserHandler exposes per-user profile listings.
type UserHandler struct {
	Feed  FeedStore
	Users UserDirectory
}

// UserDirectory resolves profile owners by id.
type UserDirectory interface {
	UserByID(id string) (models.User, bool)
}

// Videos handles GET /api/v1/users/{id}/videos requests. Private videos never
// appear on a profile listing, matching the feed's private flag.
func (h UserHandler) Videos(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Feed == nil || h.Users == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "profile service unavailable"})
		return
	}

	id := r.PathValue("id")
	if id == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "user id is required"})
		return
	}

	user, ok := h.Users.UserByID(id)
	if !ok {
		respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "user not found"})
		return
	}

	videos := make([]models.Video, 0)
	for _, video := range h.Feed.Videos() {
		if video.UserID == id && !video.IsPrivate {
			videos = append(videos, video)
		}
	}

	respondJSON(ctx, w, http.StatusOK, userVideosResponse{
		User:   user,
		Videos: videos,
		Count:  len(videos),
	})
}

type userVideosResponse struct {
	User   models.User    `json:"user"`
	Videos []models.Video `json:"videos"`
	Count  int            `json:"count"`
}
