package models

import "time"

// Bookmark is a private (user, post) relation. Bookmarks never notify.
type Bookmark struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index;uniqueIndex:idx_bookmark_user_post"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_bookmark_user_post"`
	CreatedAt time.Time `json:"created_at"`
}
