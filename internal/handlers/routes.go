package handlers

import "net/http"

// RegisterRoutes wires HTTP handlers into the provided ServeMux.
func RegisterRoutes(mux *http.ServeMux, deps Dependencies) {
	health := HealthHandler{}
	auth := AuthHandler{Sessions: deps.Sessions, Limiter: deps.AuthLimiter}
	feed := FeedHandler{Feed: deps.Feed}
	comments := CommentHandler{Comments: deps.Comments, Sessions: deps.Sessions}
	uploads := UploadHandler{Uploads: deps.Uploads, Sessions: deps.Sessions}
	browse := DiscoverHandler{Discovery: deps.Discovery}
	activity := ActivityHandler{Activities: deps.Activity}
	users := UserHandler{Feed: deps.Feed, Users: deps.Users}

	mux.HandleFunc("/healthz", health.Handle)
	mux.HandleFunc("/api/v1/auth/login", auth.Login)
	mux.HandleFunc("/api/v1/auth/register", auth.Register)
	mux.HandleFunc("/api/v1/auth/logout", auth.Logout)
	mux.HandleFunc("/api/v1/auth/me", auth.Me)
	mux.HandleFunc("/api/v1/auth/profile", auth.UpdateProfile)
	mux.HandleFunc("/api/v1/feed", feed.State)
	mux.HandleFunc("/api/v1/feed/refresh", feed.Refresh)
	mux.HandleFunc("/api/v1/feed/position", feed.Position)
	mux.HandleFunc("/api/v1/videos/like", feed.Like)
	mux.HandleFunc("/api/v1/videos/unlike", feed.Unlike)
	mux.HandleFunc("/api/v1/videos", uploads.Create)
	mux.HandleFunc("/api/v1/uploads/status", uploads.Status)
	mux.HandleFunc("/api/v1/videos/comments", comments.Thread)
	mux.HandleFunc("/api/v1/comments/like", comments.ToggleLike)
	mux.HandleFunc("/api/v1/discover/search", browse.Search)
	mux.HandleFunc("/api/v1/discover/trending", browse.Trending)
	mux.HandleFunc("/api/v1/discover/creators", browse.Creators)
	mux.HandleFunc("/api/v1/discover/hashtags", browse.Hashtags)
	mux.HandleFunc("/api/v1/discover/categories", browse.Categories)
	mux.HandleFunc("/api/v1/activity", activity.List)
	mux.HandleFunc("/api/v1/users/{id}/videos", users.Videos)
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Sessions    SessionStore
	Feed        FeedStore
	Comments    CommentStore
	Uploads     Uploader
	Discovery   Discovery
	Activity    ActivitySource
	Users       UserDirectory
	AuthLimiter RateLimiter
}
