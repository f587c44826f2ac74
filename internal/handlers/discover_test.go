package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipstream/backend/internal/discover"
)

func newDiscovery(t *testing.T) *discover.Service {
	t.Helper()
	store := newFeedStore()
	store.FetchVideos(context.Background())
	return discover.NewService(store)
}

func TestDiscoverHandlerSearch(t *testing.T) {
	handler := DiscoverHandler{Discovery: newDiscovery(t)}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/discover/search?q=%23dance", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Results) != 2 {
		t.Fatalf("expected 2 dance results, got %d", len(resp.Results))
	}
}

func TestDiscoverHandlerSearchEmptyQuery(t *testing.T) {
	handler := DiscoverHandler{Discovery: newDiscovery(t)}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/discover/search", nil)
	rec := httptest.NewRecorder()
	handler.Search(rec, req)

	var resp struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Fatalf("expected an empty result list, got %v", resp.Results)
	}
}

func TestDiscoverHandlerTrending(t *testing.T) {
	handler := DiscoverHandler{Discovery: newDiscovery(t)}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/discover/trending?limit=2", nil)
	rec := httptest.NewRecorder()
	handler.Trending(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp struct {
		Videos []trendingEntry `json:"videos"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Videos) != 2 {
		t.Fatalf("expected 2 trending videos, got %d", len(resp.Videos))
	}
	if resp.Videos[0].ID != "5" {
		t.Fatalf("expected the most viewed video first, got %s", resp.Videos[0].ID)
	}
	if resp.Videos[0].ViewsLabel == "" {
		t.Fatal("expected a formatted views label")
	}
}

func TestDiscoverHandlerCategories(t *testing.T) {
	handler := DiscoverHandler{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/discover/categories", nil)
	rec := httptest.NewRecorder()
	handler.Categories(rec, req)

	var resp struct {
		Categories []string `json:"categories"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Categories) != len(discover.Categories) {
		t.Fatalf("expected %d categories, got %d", len(discover.Categories), len(resp.Categories))
	}
}
