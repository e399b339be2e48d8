package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// FollowRepository defines the interface for follow edges.
type FollowRepository interface {
	Toggle(followerID, followingID uint) (active bool, err error)
	IsFollowing(followerID, followingID uint) (bool, error)
	Followers(userID, viewerID uint) ([]models.FollowListEntry, error)
	Following(userID, viewerID uint) ([]models.FollowListEntry, error)
}

// PostgresFollowRepository implements FollowRepository for PostgreSQL
type PostgresFollowRepository struct {
	db *gorm.DB
}

func NewPostgresFollowRepository(db *gorm.DB) *PostgresFollowRepository {
	return &PostgresFollowRepository{db: db}
}

// Toggle flips the (follower, following) edge. Self-follow is rejected
// before the store is touched, regardless of existing state.
func (r *PostgresFollowRepository) Toggle(followerID, followingID uint) (bool, error) {
	if followerID == followingID {
		return false, ErrSelfAction
	}
	return toggleRow(r.db,
		&models.Follow{FollowerID: followerID, FollowingID: followingID},
		"follower_id = ? AND following_id = ?", followerID, followingID)
}

func (r *PostgresFollowRepository) IsFollowing(followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	return count > 0, err
}

// Followers lists the users following userID, each flagged with whether
// the viewer follows them back.
func (r *PostgresFollowRepository) Followers(userID, viewerID uint) ([]models.FollowListEntry, error) {
	return r.followList("f.follower_id", "f.following_id", userID, viewerID)
}

// Following lists the users userID follows, flagged for the viewer.
func (r *PostgresFollowRepository) Following(userID, viewerID uint) ([]models.FollowListEntry, error) {
	return r.followList("f.following_id", "f.follower_id", userID, viewerID)
}

func (r *PostgresFollowRepository) followList(joinCol, whereCol string, userID, viewerID uint) ([]models.FollowListEntry, error) {
	var rows []struct {
		ID          uint
		Username    string
		DisplayName string
		AvatarURL   *string
		YouFollow   bool
	}
	query := `
SELECT u.id, u.username, u.display_name, u.avatar_url,
       CASE WHEN f2.id IS NOT NULL THEN 1 ELSE 0 END AS you_follow
FROM follows f
JOIN users u ON u.id = ` + joinCol + `
LEFT JOIN follows f2 ON f2.follower_id = ? AND f2.following_id = u.id
WHERE ` + whereCol + ` = ?
ORDER BY f.created_at DESC`
	if err := r.db.Raw(query, viewerID, userID).Scan(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]models.FollowListEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.FollowListEntry{
			UserCompact: models.UserCompact{
				ID:          row.ID,
				Username:    row.Username,
				DisplayName: row.DisplayName,
				AvatarURL:   row.AvatarURL,
			},
			YouFollow: row.YouFollow,
		}
	}
	return entries, nil
}
