package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// BookmarkRepository defines the interface for bookmark toggles.
type BookmarkRepository interface {
	Toggle(userID, postID uint) (active bool, err error)
}

// PostgresBookmarkRepository implements BookmarkRepository for PostgreSQL
type PostgresBookmarkRepository struct {
	db *gorm.DB
}

func NewPostgresBookmarkRepository(db *gorm.DB) *PostgresBookmarkRepository {
	return &PostgresBookmarkRepository{db: db}
}

// Toggle flips the (user, post) bookmark row. Bookmarks are private to the
// bookmarking user, so no count is reported and no notification fans out.
func (r *PostgresBookmarkRepository) Toggle(userID, postID uint) (bool, error) {
	return toggleRow(r.db,
		&models.Bookmark{UserID: userID, PostID: postID},
		"user_id = ? AND post_id = ?", userID, postID)
}
