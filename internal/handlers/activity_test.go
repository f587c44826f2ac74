package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/models"
)

func TestActivityHandlerList(t *testing.T) {
	handler := ActivityHandler{Activities: mockdata.NewDirectory(0)}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/activity", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Activities []activityEntry `json:"activities"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Activities) != 8 {
		t.Fatalf("expected 8 seed activities, got %d", len(resp.Activities))
	}

	first := resp.Activities[0]
	if first.Type != models.ActivityLike || first.User.Username != "travelguy" {
		t.Fatalf("unexpected first entry %+v", first)
	}
	if first.TimeAgo == "" {
		t.Fatal("expected a relative timestamp on each entry")
	}

	for _, entry := range resp.Activities {
		switch entry.Type {
		case models.ActivityLike, models.ActivityComment, models.ActivityFollow:
		default:
			t.Fatalf("unexpected activity type %q", entry.Type)
		}
		if entry.Type == models.ActivityFollow && entry.VideoThumbnail != "" {
			t.Fatal("follow entries carry no thumbnail")
		}
	}
}

func TestActivityHandlerMethodNotAllowed(t *testing.T) {
	handler := ActivityHandler{Activities: mockdata.NewDirectory(0)}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/activity", nil)
	rec := httptest.NewRecorder()
	handler.List(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
