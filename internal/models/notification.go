package models

import "time"

// Notification kinds, one per fan-out-worthy transition. Bookmarks are
// deliberately absent.
const (
	NotificationLike     = "like"
	NotificationReaction = "reaction"
	NotificationRepost   = "repost"
	NotificationReply    = "reply"
	NotificationFollow   = "follow"
	NotificationMessage  = "message"
)

// Notification records that an actor did something to the recipient's
// content. Rows are created once by fan-out and only ever mutated by the
// recipient-scoped bulk read update. recipient != actor always holds.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index:idx_notif_recipient"`
	Type        string    `json:"type" gorm:"size:20;not null"`
	ActorID     uint      `json:"actor_id" gorm:"not null;index"`
	ReferenceID *uint     `json:"reference_id"`
	IsRead      bool      `json:"is_read" gorm:"not null;default:false;index:idx_notif_recipient"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// NotificationView is a notification joined with its actor.
type NotificationView struct {
	ID               uint      `json:"id"`
	RecipientID      uint      `json:"recipient_id"`
	Type             string    `json:"type"`
	ActorID          uint      `json:"actor_id"`
	ReferenceID      *uint     `json:"reference_id"`
	IsRead           bool      `json:"is_read"`
	CreatedAt        time.Time `json:"created_at"`
	ActorUsername    string    `json:"actor_username"`
	ActorDisplayName string    `json:"actor_display_name"`
	ActorAvatar      *string   `json:"actor_avatar"`
}
