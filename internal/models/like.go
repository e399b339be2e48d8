package models

import "time"

// Like is a (user, post) relation, at most one row per pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_like_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
