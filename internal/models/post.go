package models

import "time"

// PostMaxLength bounds both post and reply text.
const PostMaxLength = 280

// Moods a post can carry. "none" is the default and means no mood tag.
var ValidMoods = []string{"none", "love", "happy", "sad", "angry", "anxious", "excited"}

// Post is a confession. Posts are immutable once created; they disappear
// only through cascade deletion.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"size:280;not null"`
	Mood      string    `json:"mood" gorm:"size:20;not null;default:'none'"`
	ImageURL  *string   `json:"image_url"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
}

// CreatePostRequest defines the form fields for creating a new post.
type CreatePostRequest struct {
	Text string `json:"text" form:"text" validate:"required,min=1,max=280"`
	Mood string `json:"mood" form:"mood" validate:"omitempty,oneof=none love happy sad angry anxious excited"`
}

// PostView is a post enriched with its author, denormalized counts and the
// viewer's own interaction flags. Every feed-shaped response uses it.
type PostView struct {
	ID             uint             `json:"id"`
	UserID         uint             `json:"user_id"`
	Text           string           `json:"text"`
	Mood           string           `json:"mood"`
	ImageURL       *string          `json:"image_url"`
	CreatedAt      time.Time        `json:"created_at"`
	Username       string           `json:"username"`
	DisplayName    string           `json:"display_name"`
	AvatarURL      *string          `json:"avatar_url"`
	LikeCount      int64            `json:"like_count"`
	ReplyCount     int64            `json:"reply_count"`
	RepostCount    int64            `json:"repost_count"`
	Reactions      map[string]int64 `json:"reactions"`
	UserReactions  []string         `json:"user_reactions"`
	UserLiked      bool             `json:"user_liked"`
	UserReposted   bool             `json:"user_reposted"`
	UserBookmarked bool             `json:"user_bookmarked"`
}
