package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// NotificationRepository is the fan-out sink and the recipient-facing read
// surface for notifications.
type NotificationRepository interface {
	Notify(ntype string, actorID, recipientID uint, referenceID *uint) error
	ForRecipient(recipientID uint, limit int) ([]models.NotificationView, error)
	UnreadCount(recipientID uint) (int64, error)
	MarkAllRead(recipientID uint) error
}

// PostgresNotificationRepository implements NotificationRepository for PostgreSQL
type PostgresNotificationRepository struct {
	db *gorm.DB
}

func NewPostgresNotificationRepository(db *gorm.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

// Notify records one notification for a transition to active. Self-caused
// transitions are silently dropped; toggling off never retracts a
// previously emitted notification.
func (r *PostgresNotificationRepository) Notify(ntype string, actorID, recipientID uint, referenceID *uint) error {
	if actorID == recipientID {
		return nil
	}
	return r.db.Create(&models.Notification{
		RecipientID: recipientID,
		Type:        ntype,
		ActorID:     actorID,
		ReferenceID: referenceID,
	}).Error
}

// ForRecipient lists the newest notifications with actor info joined in.
func (r *PostgresNotificationRepository) ForRecipient(recipientID uint, limit int) ([]models.NotificationView, error) {
	views := []models.NotificationView{}
	err := r.db.Raw(`
SELECT n.id, n.recipient_id, n.type, n.actor_id, n.reference_id, n.is_read, n.created_at,
       u.username AS actor_username, u.display_name AS actor_display_name, u.avatar_url AS actor_avatar
FROM notifications n
JOIN users u ON u.id = n.actor_id
WHERE n.recipient_id = ?
ORDER BY n.created_at DESC, n.id DESC
LIMIT ?`, recipientID, limit).Scan(&views).Error
	return views, err
}

func (r *PostgresNotificationRepository) UnreadCount(recipientID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// MarkAllRead flips every unread row owned by the recipient in one
// statement. Other users' rows are untouched by construction.
func (r *PostgresNotificationRepository) MarkAllRead(recipientID uint) error {
	return r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Update("is_read", true).Error
}
