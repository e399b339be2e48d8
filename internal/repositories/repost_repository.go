package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// RepostRepository defines the interface for repost toggles.
type RepostRepository interface {
	Toggle(userID, postID uint) (active bool, count int64, err error)
	Count(postID uint) (int64, error)
}

// PostgresRepostRepository implements RepostRepository for PostgreSQL
type PostgresRepostRepository struct {
	db *gorm.DB
}

func NewPostgresRepostRepository(db *gorm.DB) *PostgresRepostRepository {
	return &PostgresRepostRepository{db: db}
}

func (r *PostgresRepostRepository) Toggle(userID, postID uint) (bool, int64, error) {
	active, err := toggleRow(r.db,
		&models.Repost{UserID: userID, PostID: postID},
		"user_id = ? AND post_id = ?", userID, postID)
	if err != nil {
		return false, 0, err
	}
	count, err := r.Count(postID)
	return active, count, err
}

func (r *PostgresRepostRepository) Count(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Repost{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
