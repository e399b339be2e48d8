package repositories

import (
	"time"

	"github.com/devgrain/confide/backend/internal/models"
	"gorm.io/gorm"
)

// FeedScope filters candidate posts before ranking.
type FeedScope string

// FeedSort picks the ranking order.
type FeedSort string

const (
	ScopeAll       FeedScope = "all"
	ScopeFollowing FeedScope = "following"

	SortRecent FeedSort = "recent"
	SortTop    FeedSort = "top"

	// FeedLimit bounds every feed-shaped result set.
	FeedLimit = 100
	// SearchLimit bounds post search results.
	SearchLimit = 50
)

// FeedRepository composes viewer-personalized post listings. Every method
// returns the same PostView shape: post + author + counts + viewer flags +
// reaction maps.
type FeedRepository interface {
	Feed(viewerID uint, scope FeedScope, sort FeedSort, limit int) ([]models.PostView, error)
	GetPost(postID, viewerID uint) (*models.PostView, error)
	PostsByUser(userID, viewerID uint) ([]models.PostView, error)
	Search(q string, viewerID uint) ([]models.PostView, error)
	Bookmarked(viewerID uint) ([]models.PostView, error)
}

// PostgresFeedRepository implements FeedRepository for PostgreSQL
type PostgresFeedRepository struct {
	db *gorm.DB
}

func NewPostgresFeedRepository(db *gorm.DB) *PostgresFeedRepository {
	return &PostgresFeedRepository{db: db}
}

// postRow is the typed scan target for the aggregate query. Field names
// map onto the column aliases below via GORM's naming strategy.
type postRow struct {
	ID             uint
	UserID         uint
	Text           string
	Mood           string
	ImageURL       *string
	CreatedAt      time.Time
	Username       string
	DisplayName    string
	AvatarURL      *string
	LikeCount      int64
	ReplyCount     int64
	RepostCount    int64
	ReactionCount  int64
	UserLiked      bool
	UserReposted   bool
	UserBookmarked bool
}

// postViewSelect aggregates counts via grouped subqueries and resolves the
// viewer's flags via keyed left joins, all in one round trip. The first
// three bind parameters are always the viewer id.
const postViewSelect = `
SELECT p.id, p.user_id, p.text, p.mood, p.image_url, p.created_at,
       u.username, u.display_name, u.avatar_url,
       COALESCE(lc.like_count, 0) AS like_count,
       COALESCE(rep.reply_count, 0) AS reply_count,
       COALESCE(rp.repost_count, 0) AS repost_count,
       COALESCE(rx.reaction_count, 0) AS reaction_count,
       CASE WHEN ul.id IS NOT NULL THEN 1 ELSE 0 END AS user_liked,
       CASE WHEN ur.id IS NOT NULL THEN 1 ELSE 0 END AS user_reposted,
       CASE WHEN ub.id IS NOT NULL THEN 1 ELSE 0 END AS user_bookmarked
FROM posts p
JOIN users u ON u.id = p.user_id
LEFT JOIN (SELECT post_id, COUNT(*) AS like_count FROM likes GROUP BY post_id) lc ON lc.post_id = p.id
LEFT JOIN (SELECT post_id, COUNT(*) AS reply_count FROM replies GROUP BY post_id) rep ON rep.post_id = p.id
LEFT JOIN (SELECT post_id, COUNT(*) AS repost_count FROM reposts GROUP BY post_id) rp ON rp.post_id = p.id
LEFT JOIN (SELECT post_id, COUNT(*) AS reaction_count FROM reactions GROUP BY post_id) rx ON rx.post_id = p.id
LEFT JOIN likes ul ON ul.post_id = p.id AND ul.user_id = ?
LEFT JOIN reposts ur ON ur.post_id = p.id AND ur.user_id = ?
LEFT JOIN bookmarks ub ON ub.post_id = p.id AND ub.user_id = ?`

const (
	orderRecent = `
ORDER BY p.created_at DESC, p.id DESC`
	// Top rank is the sum of like, repost and reaction counts; ties break
	// on creation time so the ordering stays deterministic.
	orderTop = `
ORDER BY (COALESCE(lc.like_count, 0) + COALESCE(rp.repost_count, 0) + COALESCE(rx.reaction_count, 0)) DESC,
         p.created_at DESC, p.id DESC`
)

// Feed returns the ranked feed for the viewer. A following scope with no
// follow edges yields an empty slice, not an error.
func (r *PostgresFeedRepository) Feed(viewerID uint, scope FeedScope, sort FeedSort, limit int) ([]models.PostView, error) {
	if limit <= 0 || limit > FeedLimit {
		limit = FeedLimit
	}

	query := postViewSelect
	args := []interface{}{viewerID, viewerID, viewerID}

	if scope == ScopeFollowing {
		query += `
WHERE p.user_id IN (SELECT following_id FROM follows WHERE follower_id = ?)`
		args = append(args, viewerID)
	}

	if sort == SortTop {
		query += orderTop
	} else {
		query += orderRecent
	}
	query += `
LIMIT ?`
	args = append(args, limit)

	return r.scanViews(query, viewerID, args...)
}

// GetPost is the feed composition specialized to one id.
func (r *PostgresFeedRepository) GetPost(postID, viewerID uint) (*models.PostView, error) {
	views, err := r.scanViews(postViewSelect+`
WHERE p.id = ?`, viewerID, viewerID, viewerID, viewerID, postID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNotFound
	}
	return &views[0], nil
}

// PostsByUser lists one author's posts, newest first.
func (r *PostgresFeedRepository) PostsByUser(userID, viewerID uint) ([]models.PostView, error) {
	return r.scanViews(postViewSelect+`
WHERE p.user_id = ?`+orderRecent, viewerID, viewerID, viewerID, viewerID, userID)
}

// Search matches a substring of the post text, newest first.
func (r *PostgresFeedRepository) Search(q string, viewerID uint) ([]models.PostView, error) {
	if q == "" {
		return []models.PostView{}, nil
	}
	return r.scanViews(postViewSelect+`
WHERE p.text LIKE ?`+orderRecent+`
LIMIT ?`, viewerID, viewerID, viewerID, viewerID, "%"+q+"%", SearchLimit)
}

// Bookmarked lists the viewer's bookmarked posts, newest bookmark first.
func (r *PostgresFeedRepository) Bookmarked(viewerID uint) ([]models.PostView, error) {
	return r.scanViews(postViewSelect+`
WHERE ub.id IS NOT NULL
ORDER BY ub.created_at DESC, ub.id DESC`, viewerID, viewerID, viewerID, viewerID)
}

// scanViews runs the composed query, then batches the reaction aggregation
// over the returned page: one grouped count query and one query for the
// viewer's own kinds.
func (r *PostgresFeedRepository) scanViews(query string, viewerID uint, args ...interface{}) ([]models.PostView, error) {
	var rows []postRow
	if err := r.db.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	views := make([]models.PostView, len(rows))
	ids := make([]uint, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		views[i] = models.PostView{
			ID:             row.ID,
			UserID:         row.UserID,
			Text:           row.Text,
			Mood:           row.Mood,
			ImageURL:       row.ImageURL,
			CreatedAt:      row.CreatedAt,
			Username:       row.Username,
			DisplayName:    row.DisplayName,
			AvatarURL:      row.AvatarURL,
			LikeCount:      row.LikeCount,
			ReplyCount:     row.ReplyCount,
			RepostCount:    row.RepostCount,
			Reactions:      map[string]int64{},
			UserReactions:  []string{},
			UserLiked:      row.UserLiked,
			UserReposted:   row.UserReposted,
			UserBookmarked: row.UserBookmarked,
		}
	}
	if len(ids) == 0 {
		return views, nil
	}

	reactions, userReactions, err := r.reactionsForPosts(ids, viewerID)
	if err != nil {
		return nil, err
	}
	for i := range views {
		if m, ok := reactions[views[i].ID]; ok {
			views[i].Reactions = m
		}
		if kinds, ok := userReactions[views[i].ID]; ok {
			views[i].UserReactions = kinds
		}
	}
	return views, nil
}

func (r *PostgresFeedRepository) reactionsForPosts(ids []uint, viewerID uint) (map[uint]map[string]int64, map[uint][]string, error) {
	var countRows []struct {
		PostID uint
		Type   string
		Count  int64
	}
	err := r.db.Model(&models.Reaction{}).
		Select("post_id, type, COUNT(*) AS count").
		Where("post_id IN ?", ids).
		Group("post_id").Group("type").
		Scan(&countRows).Error
	if err != nil {
		return nil, nil, err
	}

	counts := make(map[uint]map[string]int64)
	for _, row := range countRows {
		if counts[row.PostID] == nil {
			counts[row.PostID] = make(map[string]int64)
		}
		counts[row.PostID][row.Type] = row.Count
	}

	var kindRows []struct {
		PostID uint
		Type   string
	}
	err = r.db.Model(&models.Reaction{}).
		Select("post_id, type").
		Where("user_id = ? AND post_id IN ?", viewerID, ids).
		Order("type").
		Scan(&kindRows).Error
	if err != nil {
		return nil, nil, err
	}

	userKinds := make(map[uint][]string)
	for _, row := range kindRows {
		userKinds[row.PostID] = append(userKinds[row.PostID], row.Type)
	}
	return counts, userKinds, nil
}
