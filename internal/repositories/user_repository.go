package repositories

import (
	"errors"

	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data operations, including
// the account-wide cascade delete.
type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByID(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	UpdateUser(user *models.User) error
	SearchUsers(query string, limit int) ([]models.UserCompact, error)
	Profile(username string, viewerID uint) (*models.Profile, error)
	DeleteAccount(userID uint) error
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *PostgresUserRepository) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByUsername resolves a handle case-insensitively.
func (r *PostgresUserRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *PostgresUserRepository) UpdateUser(user *models.User) error {
	return r.db.Save(user).Error
}

// SearchUsers matches a handle substring, case-insensitively.
func (r *PostgresUserRepository) SearchUsers(query string, limit int) ([]models.UserCompact, error) {
	results := []models.UserCompact{}
	err := r.db.Model(&models.User{}).
		Select("id, username, display_name, avatar_url").
		Where("LOWER(username) LIKE LOWER(?)", "%"+query+"%").
		Order("username").
		Limit(limit).
		Scan(&results).Error
	return results, err
}

// Profile builds a user page with counts and the viewer relationship.
func (r *PostgresUserRepository) Profile(username string, viewerID uint) (*models.Profile, error) {
	user, err := r.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserCompact: user.ToCompact(),
		Bio:         user.Bio,
		CreatedAt:   user.CreatedAt,
		IsSelf:      user.ID == viewerID,
	}

	if err := r.db.Model(&models.Post{}).Where("user_id = ?", user.ID).Count(&profile.PostCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("following_id = ?", user.ID).Count(&profile.FollowerCount).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Follow{}).Where("follower_id = ?", user.ID).Count(&profile.FollowingCount).Error; err != nil {
		return nil, err
	}

	var following int64
	err = r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", viewerID, user.ID).
		Count(&following).Error
	if err != nil {
		return nil, err
	}
	profile.IsFollowing = following > 0

	return profile, nil
}

// DeleteAccount removes the user and their full dependency closure in one
// transaction: interaction rows first, then owned content, then the user
// row. A failure anywhere rolls the whole operation back.
func (r *PostgresUserRepository) DeleteAccount(userID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("recipient_id = ? OR actor_id = ?", userID, userID).Delete(&models.Notification{}).Error; err != nil {
			return err
		}
		if err := tx.Where("sender_id = ? OR receiver_id = ?", userID, userID).Delete(&models.Message{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Bookmark{}).Error; err != nil {
			return err
		}
		if err := tx.Where("follower_id = ? OR following_id = ?", userID, userID).Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Reaction{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Repost{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Reply{}).Error; err != nil {
			return err
		}

		// Rows hanging off the user's own posts would be orphaned by the
		// statements above, which only cover rows the user authored.
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			for _, child := range []interface{}{
				&models.Like{},
				&models.Repost{},
				&models.Reaction{},
				&models.Reply{},
				&models.Bookmark{},
			} {
				if err := tx.Where("post_id IN ?", postIDs).Delete(child).Error; err != nil {
					return err
				}
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, userID).Error
	})
}
