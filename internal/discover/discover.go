// Package discover provides the browse surface: search, trending, popular
// creators and hashtag aggregation over the live video collection.
package discover

import (
	"sort"
	"strings"

	"github.com/clipstream/backend/internal/models"
)

// Categories shown on the discovery screen, fixed order.
var Categories = []string{
	"Trending", "Comedy", "Dance", "Food", "Travel", "Sports", "Beauty", "Fashion", "Music", "Pets",
}

// VideoSource supplies the current video collection.
type VideoSource interface {
	Videos() []models.Video
}

// Service answers discovery queries against a video source.
type Service struct {
	source VideoSource
}

// NewService constructs a discovery service over the provided source.
func NewService(source VideoSource) *Service {
	if source == nil {
		panic("discover: video source must not be nil")
	}
	return &Service{source: source}
}

// Search returns videos whose author username or description contains the
// query, case-insensitively. An empty query matches nothing.
func (s *Service) Search(query string) []models.Video {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	var results []models.Video
	for _, video := range s.source.Videos() {
		if strings.Contains(strings.ToLower(video.User.Username), query) ||
			strings.Contains(strings.ToLower(video.Description), query) {
			results = append(results, video)
		}
	}
	return results
}

// Trending returns up to n videos ordered by view count, highest first.
func (s *Service) Trending(n int) []models.Video {
	videos := s.source.Videos()
	sort.SliceStable(videos, func(i, j int) bool {
		return Views(videos[i]) > Views(videos[j])
	})
	if n > 0 && len(videos) > n {
		videos = videos[:n]
	}
	return videos
}

// Creators returns the distinct video authors in collection order.
func (s *Service) Creators() []models.User {
	seen := make(map[string]struct{})
	var creators []models.User
	for _, video := range s.source.Videos() {
		if _, ok := seen[video.User.ID]; ok {
			continue
		}
		seen[video.User.ID] = struct{}{}
		creators = append(creators, video.User)
	}
	return creators
}

// HashtagCount is a hashtag with the number of videos carrying it.
type HashtagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Hashtags aggregates #tokens across all descriptions, most frequent first
// with ties broken alphabetically.
func (s *Service) Hashtags() []HashtagCount {
	counts := make(map[string]int)
	for _, video := range s.source.Videos() {
		for _, tag := range ExtractHashtags(video.Description) {
			counts[tag]++
		}
	}

	out := make([]HashtagCount, 0, len(counts))
	for tag, count := range counts {
		out = append(out, HashtagCount{Tag: tag, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

// Views derives the displayed view count from the raw like counter.
func Views(video models.Video) int {
	return video.Likes * 2
}

// ExtractHashtags returns the lowercase #tokens embedded in a description,
// in order of appearance, without the leading '#'.
func ExtractHashtags(description string) []string {
	var tags []string
	for _, field := range strings.Fields(description) {
		if !strings.HasPrefix(field, "#") {
			continue
		}
		tag := strings.ToLower(strings.TrimLeft(field, "#"))
		tag = strings.TrimFunc(tag, func(r rune) bool {
			return !isTagRune(r)
		})
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func isTagRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
		return true
	}
	return false
}
