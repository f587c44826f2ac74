package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipstream/backend/internal/feed"
	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/storage"
)

func newFeedStore() *feed.Store {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return feed.NewStore(mockdata.NewDirectory(0), storage.NewMemoryStore(), logger)
}

func TestFeedHandlerRefreshLoadsCatalog(t *testing.T) {
	handler := FeedHandler{Feed: newFeedStore()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/feed/refresh", nil)
	rec := httptest.NewRecorder()
	handler.Refresh(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp feedStateResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Videos) != 5 {
		t.Fatalf("expected 5 videos, got %d", len(resp.Videos))
	}
	if resp.IsLoading {
		t.Fatal("loading flag must be cleared in the response")
	}
}

func TestFeedHandlerLikeFlow(t *testing.T) {
	store := newFeedStore()
	handler := FeedHandler{Feed: store}

	postJSON(t, handler.Refresh, "/api/v1/feed/refresh", nil)

	rec := postJSON(t, handler.Like, "/api/v1/videos/like", videoRequest{VideoID: "1"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d got %d", http.StatusNoContent, rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
	stateRec := httptest.NewRecorder()
	handler.State(stateRec, req)

	var resp feedStateResponse
	if err := json.NewDecoder(stateRec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.LikedVideoIDs) != 1 || resp.LikedVideoIDs[0] != "1" {
		t.Fatalf("expected liked set [1], got %v", resp.LikedVideoIDs)
	}
	if !resp.Videos[0].IsLiked {
		t.Fatal("expected first video to be marked liked")
	}
}

func TestFeedHandlerLikeValidation(t *testing.T) {
	handler := FeedHandler{Feed: newFeedStore()}

	rec := postJSON(t, handler.Like, "/api/v1/videos/like", videoRequest{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestFeedHandlerPosition(t *testing.T) {
	store := newFeedStore()
	handler := FeedHandler{Feed: store}

	rec := postJSON(t, handler.Position, "/api/v1/feed/position", positionRequest{Index: 3})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d got %d", http.StatusNoContent, rec.Code)
	}
	if store.CurrentVideoIndex() != 3 {
		t.Fatalf("expected index 3, got %d", store.CurrentVideoIndex())
	}

	rec = postJSON(t, handler.Position, "/api/v1/feed/position", positionRequest{Index: -1})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d got %d", http.StatusBadRequest, rec.Code)
	}
}

func TestFeedHandlerStateMethodNotAllowed(t *testing.T) {
	handler := FeedHandler{Feed: newFeedStore()}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/feed", nil)
	rec := httptest.NewRecorder()
	handler.State(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected status %d got %d", http.StatusMethodNotAllowed, rec.Code)
	}
}
