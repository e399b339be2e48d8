package repositories

import (
	"errors"

	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post writes. Reads that need
// viewer context live on FeedRepository.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id uint) (*models.Post, error)
	DeleteCascade(postID, requestorID uint) error
}

// PostgresPostRepository implements PostRepository for PostgreSQL
type PostgresPostRepository struct {
	db *gorm.DB
}

func NewPostgresPostRepository(db *gorm.DB) *PostgresPostRepository {
	return &PostgresPostRepository{db: db}
}

func (r *PostgresPostRepository) Create(post *models.Post) error {
	return r.db.Create(post).Error
}

func (r *PostgresPostRepository) GetByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// DeleteCascade removes a post and every row referencing it in one
// transaction, children first. A requestor who does not own the post gets
// ErrNotFound, the same as for a missing post.
func (r *PostgresPostRepository) DeleteCascade(postID, requestorID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		err := tx.Where("id = ? AND user_id = ?", postID, requestorID).First(&post).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		for _, child := range []interface{}{
			&models.Like{},
			&models.Repost{},
			&models.Reaction{},
			&models.Reply{},
			&models.Bookmark{},
		} {
			if err := tx.Where("post_id = ?", postID).Delete(child).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
}
