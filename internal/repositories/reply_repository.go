package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// ReplyRepository defines the interface for reply operations.
type ReplyRepository interface {
	ForPost(postID uint) ([]models.ReplyView, error)
	Create(reply *models.Reply) error
	DeleteOwned(replyID, userID uint) error
}

// PostgresReplyRepository implements ReplyRepository for PostgreSQL
type PostgresReplyRepository struct {
	db *gorm.DB
}

func NewPostgresReplyRepository(db *gorm.DB) *PostgresReplyRepository {
	return &PostgresReplyRepository{db: db}
}

// ForPost lists a post's replies oldest first, authors joined in.
func (r *PostgresReplyRepository) ForPost(postID uint) ([]models.ReplyView, error) {
	views := []models.ReplyView{}
	err := r.db.Raw(`
SELECT rp.id, rp.post_id, rp.user_id, rp.text, rp.created_at,
       u.username, u.display_name, u.avatar_url
FROM replies rp
JOIN users u ON u.id = rp.user_id
WHERE rp.post_id = ?
ORDER BY rp.created_at ASC, rp.id ASC`, postID).Scan(&views).Error
	return views, err
}

func (r *PostgresReplyRepository) Create(reply *models.Reply) error {
	return r.db.Create(reply).Error
}

// DeleteOwned removes a reply only when userID authored it; a miss for any
// reason reports ErrNotFound.
func (r *PostgresReplyRepository) DeleteOwned(replyID, userID uint) error {
	res := r.db.Where("id = ? AND user_id = ?", replyID, userID).Delete(&models.Reply{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
