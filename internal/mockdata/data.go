package mockdata

import (
	"time"

	"github.com/clipstream/backend/internal/models"
)

// Seed data used before any real backend exists. Callers receive fresh copies
// so in-memory mutation never leaks back into the catalog.

var seedUsers = []models.User{
	{
		ID:        "1",
		Username:  "dancingqueen",
		Avatar:    "https://images.unsplash.com/photo-1494790108377-be9c29b29330",
		Followers: 1200000,
		Following: 125,
		Bio:       "Professional dancer | Content creator | Living my best life ✨",
	},
	{
		ID:        "2",
		Username:  "travelguy",
		Avatar:    "https://images.unsplash.com/photo-1500648767791-00dcc994a43e",
		Followers: 850000,
		Following: 342,
		Bio:       "Exploring the world one video at a time 🌎",
	},
	{
		ID:        "3",
		Username:  "foodielicious",
		Avatar:    "https://images.unsplash.com/photo-1438761681033-6461ffad8d80",
		Followers: 2300000,
		Following: 231,
		Bio:       "Cooking up delicious content | Food enthusiast | Recipe creator 🍕",
	},
	{
		ID:        "4",
		Username:  "fitnessguru",
		Avatar:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d",
		Followers: 1500000,
		Following: 89,
		Bio:       "Fitness coach | Healthy lifestyle | Motivation 💪",
	},
	{
		ID:        "5",
		Username:  "comedyking",
		Avatar:    "https://images.unsplash.com/photo-1506794778202-cad84cf45f1d",
		Followers: 3200000,
		Following: 156,
		Bio:       "Making you laugh since 2018 😂",
	},
}

var seedVideos = []models.Video{
	{
		ID:          "1",
		UserID:      "1",
		User:        seedUsers[0],
		VideoURL:    "https://assets.mixkit.co/videos/preview/mixkit-young-woman-dancing-happily-in-a-field-4702-large.mp4",
		Description: "Dancing in the sunset ✨ #dance #sunset #vibes",
		Likes:       245000,
		Comments:    1200,
		Shares:      18000,
		CreatedAt:   time.Date(2023, time.September, 15, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:          "2",
		UserID:      "2",
		User:        seedUsers[1],
		VideoURL:    "https://assets.mixkit.co/videos/preview/mixkit-aerial-view-of-city-traffic-at-night-11-large.mp4",
		Description: "City lights never get old 🌃 #travel #cityscape #nightlife",
		Likes:       189000,
		Comments:    890,
		Shares:      12000,
		CreatedAt:   time.Date(2023, time.September, 14, 18, 45, 0, 0, time.UTC),
	},
	{
		ID:          "3",
		UserID:      "3",
		User:        seedUsers[2],
		VideoURL:    "https://assets.mixkit.co/videos/preview/mixkit-cooking-with-a-pan-on-a-stove-2753-large.mp4",
		Description: "Easy pasta recipe you NEED to try! 🍝 #food #recipe #cooking",
		Likes:       320000,
		Comments:    2100,
		Shares:      45000,
		CreatedAt:   time.Date(2023, time.September, 13, 12, 15, 0, 0, time.UTC),
	},
	{
		ID:          "4",
		UserID:      "4",
		User:        seedUsers[3],
		VideoURL:    "https://assets.mixkit.co/videos/preview/mixkit-woman-doing-exercises-at-home-4027-large.mp4",
		Description: "5-minute morning workout routine 💪 #fitness #workout #morning",
		Likes:       278000,
		Comments:    1500,
		Shares:      32000,
		CreatedAt:   time.Date(2023, time.September, 12, 8, 20, 0, 0, time.UTC),
	},
	{
		ID:          "5",
		UserID:      "5",
		User:        seedUsers[4],
		VideoURL:    "https://assets.mixkit.co/videos/preview/mixkit-man-dancing-under-changing-lights-32809-large.mp4",
		Description: "When the beat drops 🎵 #funny #dance #comedy",
		Likes:       412000,
		Comments:    3200,
		Shares:      56000,
		CreatedAt:   time.Date(2023, time.September, 11, 20, 10, 0, 0, time.UTC),
	},
}

var seedComments = []models.Comment{
	{
		ID:        "1",
		UserID:    "2",
		User:      seedUsers[1],
		Text:      "This is amazing! Can't stop watching 😍",
		Likes:     1200,
		CreatedAt: time.Date(2023, time.September, 15, 15, 30, 0, 0, time.UTC),
	},
	{
		ID:        "2",
		UserID:    "3",
		User:      seedUsers[2],
		Text:      "You're so talented! Keep it up 👏",
		Likes:     890,
		CreatedAt: time.Date(2023, time.September, 15, 16, 45, 0, 0, time.UTC),
	},
	{
		ID:        "3",
		UserID:    "4",
		User:      seedUsers[3],
		Text:      "This just made my day better ❤️",
		Likes:     750,
		CreatedAt: time.Date(2023, time.September, 15, 17, 20, 0, 0, time.UTC),
	},
	{
		ID:        "4",
		UserID:    "5",
		User:      seedUsers[4],
		Text:      "I need to learn how to do this!",
		Likes:     620,
		CreatedAt: time.Date(2023, time.September, 15, 18, 10, 0, 0, time.UTC),
	},
	{
		ID:        "5",
		UserID:    "1",
		User:      seedUsers[0],
		Text:      "Perfect vibes for the weekend 🔥",
		Likes:     980,
		CreatedAt: time.Date(2023, time.September, 15, 19, 5, 0, 0, time.UTC),
	},
}

var seedActivities = []models.Activity{
	{
		ID:             "1",
		Type:           models.ActivityLike,
		User:           seedUsers[1],
		Content:        "liked your video",
		VideoThumbnail: "https://images.unsplash.com/photo-1611162616475-46b635cb6868",
		CreatedAt:      time.Date(2023, time.September, 15, 20, 30, 0, 0, time.UTC),
	},
	{
		ID:             "2",
		Type:           models.ActivityComment,
		User:           seedUsers[2],
		Content:        "commented: \"This is amazing! 🔥\"",
		VideoThumbnail: "https://images.unsplash.com/photo-1611162616475-46b635cb6868",
		CreatedAt:      time.Date(2023, time.September, 15, 18, 45, 0, 0, time.UTC),
	},
	{
		ID:        "3",
		Type:      models.ActivityFollow,
		User:      seedUsers[3],
		Content:   "started following you",
		CreatedAt: time.Date(2023, time.September, 15, 15, 20, 0, 0, time.UTC),
	},
	{
		ID:        "4",
		Type:      models.ActivityLike,
		User:      seedUsers[4],
		Content:   "liked your comment",
		CreatedAt: time.Date(2023, time.September, 14, 22, 10, 0, 0, time.UTC),
	},
	{
		ID:             "5",
		Type:           models.ActivityComment,
		User:           seedUsers[0],
		Content:        "replied to your comment: \"Thank you!\"",
		VideoThumbnail: "https://images.unsplash.com/photo-1611162616475-46b635cb6868",
		CreatedAt:      time.Date(2023, time.September, 14, 20, 5, 0, 0, time.UTC),
	},
	{
		ID:        "6",
		Type:      models.ActivityFollow,
		User:      seedUsers[1],
		Content:   "started following you",
		CreatedAt: time.Date(2023, time.September, 14, 14, 30, 0, 0, time.UTC),
	},
	{
		ID:             "7",
		Type:           models.ActivityLike,
		User:           seedUsers[2],
		Content:        "liked your video",
		VideoThumbnail: "https://images.unsplash.com/photo-1611162616475-46b635cb6868",
		CreatedAt:      time.Date(2023, time.September, 13, 19, 15, 0, 0, time.UTC),
	},
	{
		ID:             "8",
		Type:           models.ActivityComment,
		User:           seedUsers[3],
		Content:        "commented: \"Can you do a tutorial?\"",
		VideoThumbnail: "https://images.unsplash.com/photo-1611162616475-46b635cb6868",
		CreatedAt:      time.Date(2023, time.September, 13, 16, 40, 0, 0, time.UTC),
	},
}

// Users returns a copy of the seed user directory.
func Users() []models.User {
	out := make([]models.User, len(seedUsers))
	copy(out, seedUsers)
	return out
}

// Videos returns a copy of the seed video catalog, newest first.
func Videos() []models.Video {
	out := make([]models.Video, len(seedVideos))
	copy(out, seedVideos)
	return out
}

// Comments returns a copy of the seed comment thread.
func Comments() []models.Comment {
	out := make([]models.Comment, len(seedComments))
	copy(out, seedComments)
	return out
}

// Activities returns a copy of the seed activity feed, newest first.
func Activities() []models.Activity {
	out := make([]models.Activity, len(seedActivities))
	copy(out, seedActivities)
	return out
}

// UserByID looks up a seed user by id.
func UserByID(id string) (models.User, bool) {
	for _, user := range seedUsers {
		if user.ID == id {
			return user, true
		}
	}
	return models.User{}, false
}
