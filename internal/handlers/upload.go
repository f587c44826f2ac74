package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/clipstream/backend/internal/logging"
	"github.com/clipstream/backend/internal/upload"
)

// UploadHandler schedules simulated uploads and reports their progress.
type UploadHandler struct {
	Uploads  Uploader
	Sessions SessionStore
}

// Create handles POST /api/v1/videos requests.
func (h UploadHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if h.Uploads == nil || h.Sessions == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "upload service unavailable"})
		return
	}

	var req createVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid upload payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	author, _ := h.Sessions.CurrentUser()

	jobID, err := h.Uploads.Enqueue(ctx, upload.Request{
		Author:      author,
		VideoURL:    req.VideoURL,
		Description: req.Description,
		IsPrivate:   req.IsPrivate,
	})
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrNotSignedIn):
			respondJSON(ctx, w, http.StatusUnauthorized, map[string]string{"error": "sign in to upload"})
		case errors.Is(err, upload.ErrMissingVideo):
			respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "please select a video to upload"})
		case errors.Is(err, upload.ErrMissingDescription):
			respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "please add a description for your video"})
		default:
			logger.Error("failed to schedule upload", "error", err)
			respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "failed to schedule upload"})
		}
		return
	}

	respondJSON(ctx, w, http.StatusAccepted, map[string]string{"uploadId": jobID})
}

// Status handles GET /api/v1/uploads/status requests.
func (h UploadHandler) Status(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	ctx := r.Context()

	if h.Uploads == nil {
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{"error": "upload service unavailable"})
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "id is required"})
		return
	}

	status, ok := h.Uploads.Status(id)
	if !ok {
		respondJSON(ctx, w, http.StatusNotFound, map[string]string{"error": "unknown upload"})
		return
	}

	respondJSON(ctx, w, http.StatusOK, status)
}

type createVideoRequest struct {
	VideoURL    string `json:"videoUrl"`
	Description string `json:"description"`
	IsPrivate   bool   `json:"isPrivate"`
}
