package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// LikeRepository defines the interface for like toggles.
type LikeRepository interface {
	Toggle(userID, postID uint) (active bool, count int64, err error)
	Count(postID uint) (int64, error)
}

// PostgresLikeRepository implements LikeRepository for PostgreSQL
type PostgresLikeRepository struct {
	db *gorm.DB
}

func NewPostgresLikeRepository(db *gorm.DB) *PostgresLikeRepository {
	return &PostgresLikeRepository{db: db}
}

// Toggle flips the (user, post) like row and recomputes the post's like
// count from the surviving rows. Counting instead of incrementing keeps
// the aggregate drift-free under concurrent toggles.
func (r *PostgresLikeRepository) Toggle(userID, postID uint) (bool, int64, error) {
	active, err := toggleRow(r.db,
		&models.Like{UserID: userID, PostID: postID},
		"user_id = ? AND post_id = ?", userID, postID)
	if err != nil {
		return false, 0, err
	}
	count, err := r.Count(postID)
	return active, count, err
}

func (r *PostgresLikeRepository) Count(postID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
