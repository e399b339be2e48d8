package models

import "time"

// Reaction kinds a user can hold on a post. Kinds toggle independently:
// the same user may hold several different kinds on one post, but only one
// row per (post, user, kind).
var ValidReactions = []string{"love", "haha", "sad", "angry", "fire"}

type Reaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_reaction_post_user_type"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_reaction_post_user_type"`
	Type      string    `json:"type" gorm:"size:20;not null;uniqueIndex:idx_reaction_post_user_type"`
	CreatedAt time.Time `json:"created_at"`
}

// ReactRequest defines the request body for toggling a reaction.
type ReactRequest struct {
	Type string `json:"type" validate:"required,oneof=love haha sad angry fire"`
}
