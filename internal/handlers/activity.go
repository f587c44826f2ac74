package handlers

import (
	"net/http"

	"github.com/clipstream/backend/internal/format"
	"github.com/clipstream/backend/internal/models"
)

// ActivityHandler exposes the notification feed.
type ActivityHandler struct {
	Activities ActivitySource
}

// ActivitySource supplies the current user's notification entries.
type ActivitySource interface {
	Activities() []models.Activity
}

// List handles GET /api/v1/activity requests.
func (h ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Activities == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "activity service unavailable"})
		return
	}

	activities := h.Activities.Activities()
	entries := make([]activityEntry, 0, len(activities))
	for _, activity := range activities {
		entries = append(entries, activityEntry{
			Activity: activity,
			TimeAgo:  format.TimeAgo(activity.CreatedAt),
		})
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"activities": entries})
}

type activityEntry struct {
	models.Activity
	TimeAgo string `json:"timeAgo"`
}
