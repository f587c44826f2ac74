package handlers

import (
	"net/http"
	"strconv"

	"github.com/clipstream/backend/internal/discover"
	"github.com/clipstream/backend/internal/format"
	"github.com/clipstream/backend/internal/models"
)

// DiscoverHandler exposes the browse surface.
type DiscoverHandler struct {
	Discovery Discovery
}

// Search handles GET /api/v1/discover/search requests.
func (h DiscoverHandler) Search(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Discovery == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "discovery service unavailable"})
		return
	}

	results := h.Discovery.Search(r.URL.Query().Get("q"))
	if results == nil {
		results = []models.Video{}
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"results": results})
}

// Trending handles GET /api/v1/discover/trending requests.
func (h DiscoverHandler) Trending(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Discovery == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "discovery service unavailable"})
		return
	}

	limit := 4
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	videos := h.Discovery.Trending(limit)
	entries := make([]trendingEntry, 0, len(videos))
	for _, video := range videos {
		views := discover.Views(video)
		entries = append(entries, trendingEntry{
			Video:      video,
			Views:      views,
			ViewsLabel: format.Number(views),
		})
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"videos": entries})
}

type trendingEntry struct {
	models.Video
	Views      int    `json:"views"`
	ViewsLabel string `json:"viewsLabel"`
}

// Creators handles GET /api/v1/discover/creators requests.
func (h DiscoverHandler) Creators(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Discovery == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "discovery service unavailable"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"creators": h.Discovery.Creators()})
}

// Hashtags handles GET /api/v1/discover/hashtags requests.
func (h DiscoverHandler) Hashtags(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Discovery == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "discovery service unavailable"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"hashtags": h.Discovery.Hashtags()})
}

// Categories handles GET /api/v1/discover/categories requests.
func (h DiscoverHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	respondJSON(r.Context(), w, http.StatusOK, map[string]any{"categories": discover.Categories})
}
