package models

import "time"

// User represents an account within the Clipstream platform.
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Avatar    string `json:"avatar"`
	Followers int    `json:"followers"`
	Following int    `json:"following"`
	Bio       string `json:"bio,omitempty"`
}

// UserUpdate carries a partial profile edit. Nil fields are left untouched.
type UserUpdate struct {
	Username  *string `json:"username,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
	Followers *int    `json:"followers,omitempty"`
	Following *int    `json:"following,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// Apply merges the set fields of the update into the user.
func (u UserUpdate) Apply(user User) User {
	if u.Username != nil {
		user.Username = *u.Username
	}
	if u.Avatar != nil {
		user.Avatar = *u.Avatar
	}
	if u.Followers != nil {
		user.Followers = *u.Followers
	}
	if u.Following != nil {
		user.Following = *u.Following
	}
	if u.Bio != nil {
		user.Bio = *u.Bio
	}
	return user
}

// Video is a single feed entry. User is a snapshot of the author taken at
// creation time; later profile edits do not propagate into it.
type Video struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	User        User      `json:"user"`
	VideoURL    string    `json:"videoUrl"`
	Description string    `json:"description"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Shares      int       `json:"shares"`
	CreatedAt   time.Time `json:"createdAt"`
	IsLiked     bool      `json:"isLiked,omitempty"`
	IsPrivate   bool      `json:"isPrivate,omitempty"`
}

// Activity kinds shown on the activity feed.
const (
	ActivityLike    = "LIKE"
	ActivityComment = "COMMENT"
	ActivityFollow  = "FOLLOW"
)

// Activity is a notification entry: someone liked, commented, or followed.
// User is the acting user, snapshot rules as elsewhere.
type Activity struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"`
	User           User      `json:"user"`
	Content        string    `json:"content"`
	VideoThumbnail string    `json:"videoThumbnail,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Comment is a reply attached to a video. User is an author snapshot, same
// rules as Video.User.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	User      User      `json:"user"`
	Text      string    `json:"text"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}
