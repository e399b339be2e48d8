package repositories

import (
	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// ReactionRepository defines the interface for typed reaction toggles.
// Kind is a third dimension of the relation: toggling one kind never
// touches another kind held by the same user on the same post.
type ReactionRepository interface {
	Toggle(userID, postID uint, kind string) (active bool, counts map[string]int64, userKinds []string, err error)
	CountsByType(postID uint) (map[string]int64, error)
	KindsForUser(userID, postID uint) ([]string, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL
type PostgresReactionRepository struct {
	db *gorm.DB
}

func NewPostgresReactionRepository(db *gorm.DB) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db}
}

// Toggle flips the (post, user, kind) row, then reports the post's full
// kind-to-count map and the acting user's active kind set.
func (r *PostgresReactionRepository) Toggle(userID, postID uint, kind string) (bool, map[string]int64, []string, error) {
	active, err := toggleRow(r.db,
		&models.Reaction{PostID: postID, UserID: userID, Type: kind},
		"post_id = ? AND user_id = ? AND type = ?", postID, userID, kind)
	if err != nil {
		return false, nil, nil, err
	}

	counts, err := r.CountsByType(postID)
	if err != nil {
		return false, nil, nil, err
	}
	kinds, err := r.KindsForUser(userID, postID)
	if err != nil {
		return false, nil, nil, err
	}
	return active, counts, kinds, nil
}

func (r *PostgresReactionRepository) CountsByType(postID uint) (map[string]int64, error) {
	var rows []struct {
		Type  string
		Count int64
	}
	err := r.db.Model(&models.Reaction{}).
		Select("type, COUNT(*) AS count").
		Where("post_id = ?", postID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Type] = row.Count
	}
	return counts, nil
}

func (r *PostgresReactionRepository) KindsForUser(userID, postID uint) ([]string, error) {
	kinds := []string{}
	err := r.db.Model(&models.Reaction{}).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Order("type").
		Pluck("type", &kinds).Error
	return kinds, err
}
