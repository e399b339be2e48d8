package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// MessageRepository defines the interface for direct messages.
type MessageRepository interface {
	Conversations(userID uint) ([]models.ConversationView, error)
	Thread(userID, otherID uint) ([]models.MessageView, error)
	Send(message *models.Message) error
}

// PostgresMessageRepository implements MessageRepository for PostgreSQL
type PostgresMessageRepository struct {
	db *gorm.DB
}

func NewPostgresMessageRepository(db *gorm.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

// Conversations lists every counterpart the user has exchanged messages
// with, carrying the latest message and the user's unread count, newest
// conversation first.
func (r *PostgresMessageRepository) Conversations(userID uint) ([]models.ConversationView, error) {
	views := []models.ConversationView{}
	err := r.db.Raw(`
SELECT other.id AS other_id, other.username, other.display_name, other.avatar_url,
       m.text AS last_message, m.created_at,
       (SELECT COUNT(*) FROM messages um
        WHERE um.sender_id = other.id AND um.receiver_id = ? AND um.is_read = ?) AS unread_count
FROM messages m
JOIN users other ON other.id = CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
WHERE m.id IN (
    SELECT MAX(m2.id) FROM messages m2
    WHERE m2.sender_id = ? OR m2.receiver_id = ?
    GROUP BY CASE WHEN m2.sender_id = ? THEN m2.receiver_id ELSE m2.sender_id END)
ORDER BY m.created_at DESC, m.id DESC`,
		userID, false, userID, userID, userID, userID).Scan(&views).Error
	return views, err
}

// Thread returns the full exchange between two users oldest first, and
// marks the other party's messages as read: viewing the conversation is
// the only thing that flips the flag.
func (r *PostgresMessageRepository) Thread(userID, otherID uint) ([]models.MessageView, error) {
	err := r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", otherID, userID, false).
		Update("is_read", true).Error
	if err != nil {
		return nil, err
	}

	views := []models.MessageView{}
	err = r.db.Raw(`
SELECT m.id, m.sender_id, m.receiver_id, m.text, m.is_read, m.created_at,
       u.username AS sender_username, u.display_name AS sender_display_name, u.avatar_url AS sender_avatar
FROM messages m
JOIN users u ON u.id = m.sender_id
WHERE (m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)
ORDER BY m.created_at ASC, m.id ASC`,
		userID, otherID, otherID, userID).Scan(&views).Error
	return views, err
}

// Send persists a message. Messaging yourself is rejected before storage.
func (r *PostgresMessageRepository) Send(message *models.Message) error {
	if message.SenderID == message.ReceiverID {
		return ErrSelfAction
	}
	return r.db.Create(message).Error
}
