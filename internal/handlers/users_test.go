package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clipstream/backend/internal/mockdata"
	"github.com/clipstream/backend/internal/models"
)

func getUserVideos(t *testing.T, handler UserHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+id+"/videos", nil)
	req.SetPathValue("id", id)
	rec := httptest.NewRecorder()
	handler.Videos(rec, req)
	return rec
}

func TestUserHandlerVideos(t *testing.T) {
	store := newFeedStore()
	store.FetchVideos(context.Background())
	handler := UserHandler{Feed: store, Users: mockdata.NewDirectory(0)}

	rec := getUserVideos(t, handler, "1")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp userVideosResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.Username != "dancingqueen" {
		t.Fatalf("expected the profile owner, got %+v", resp.User)
	}
	if resp.Count != 1 || len(resp.Videos) != 1 || resp.Videos[0].UserID != "1" {
		t.Fatalf("expected only the owner's videos, got %+v", resp.Videos)
	}
}

func TestUserHandlerVideosExcludesPrivate(t *testing.T) {
	store := newFeedStore()
	store.FetchVideos(context.Background())
	store.AddVideo(context.Background(), models.Video{
		ID:        "private-1",
		UserID:    "1",
		VideoURL:  "file:///tmp/private.mp4",
		IsPrivate: true,
	})
	handler := UserHandler{Feed: store, Users: mockdata.NewDirectory(0)}

	rec := getUserVideos(t, handler, "1")

	var resp userVideosResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("private videos must not be listed, got %d videos", resp.Count)
	}
	for _, video := range resp.Videos {
		if video.IsPrivate {
			t.Fatalf("private video %s leaked into the listing", video.ID)
		}
	}
}

func TestUserHandlerVideosUnknownUser(t *testing.T) {
	handler := UserHandler{Feed: newFeedStore(), Users: mockdata.NewDirectory(0)}

	rec := getUserVideos(t, handler, "ghost")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status %d got %d", http.StatusNotFound, rec.Code)
	}
}

func TestUserHandlerVideosIncludesRegisteredUsers(t *testing.T) {
	directory := mockdata.NewDirectory(0)
	user, err := directory.CreateAccount(context.Background(), "newbie", "newbie@example.com", "hash")
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	handler := UserHandler{Feed: newFeedStore(), Users: directory}

	rec := getUserVideos(t, handler, user.ID)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d got %d", http.StatusOK, rec.Code)
	}

	var resp userVideosResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.User.ID != user.ID || resp.Count != 0 {
		t.Fatalf("expected an empty profile for the new account, got %+v", resp)
	}
}
