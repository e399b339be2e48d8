package models

import "time"

// MessageMaxLength bounds direct message text.
const MessageMaxLength = 1000

// Message is a directed message. It is never edited or deleted outside the
// account cascade; the read flag flips only when the receiver opens the
// conversation.
type Message struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	SenderID   uint      `json:"sender_id" gorm:"not null;index:idx_message_conv"`
	ReceiverID uint      `json:"receiver_id" gorm:"not null;index:idx_message_conv;index:idx_message_recv"`
	Text       string    `json:"text" gorm:"size:1000;not null"`
	IsRead     bool      `json:"is_read" gorm:"not null;default:false;index:idx_message_recv"`
	CreatedAt  time.Time `json:"created_at"`
}

// SendMessageRequest defines the request body for sending a message.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000"`
}

// MessageView is a message joined with sender info.
type MessageView struct {
	ID                uint      `json:"id"`
	SenderID          uint      `json:"sender_id"`
	ReceiverID        uint      `json:"receiver_id"`
	Text              string    `json:"text"`
	IsRead            bool      `json:"is_read"`
	CreatedAt         time.Time `json:"created_at"`
	SenderUsername    string    `json:"sender_username"`
	SenderDisplayName string    `json:"sender_display_name"`
	SenderAvatar      *string   `json:"sender_avatar"`
}

// ConversationView is one row of the conversation list: the other party,
// the latest message between the two users, and how many of their messages
// the viewer has not read yet.
type ConversationView struct {
	OtherID     uint      `json:"other_id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	AvatarURL   *string   `json:"avatar_url"`
	LastMessage string    `json:"last_message"`
	CreatedAt   time.Time `json:"created_at"`
	UnreadCount int64     `json:"unread_count"`
}
