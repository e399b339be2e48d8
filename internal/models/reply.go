package models

import "time"

// Reply belongs to exactly one post. No edit-in-place.
type Reply struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"not null;index"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	Text      string    `json:"text" gorm:"size:280;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReplyRequest defines the request body for replying to a post.
type CreateReplyRequest struct {
	Text string `json:"text" validate:"required,min=1,max=280"`
}

// ReplyView is a reply joined with its author.
type ReplyView struct {
	ID          uint      `json:"id"`
	PostID      uint      `json:"post_id"`
	UserID      uint      `json:"user_id"`
	Text        string    `json:"text"`
	CreatedAt   time.Time `json:"created_at"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
}
