package handlers

import (
	"net/http"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles like toggles.
type LikeHandler struct {
	likeRepository         repositories.LikeRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

func NewLikeHandler(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository, notifRepo repositories.NotificationRepository) *LikeHandler {
	return &LikeHandler{
		likeRepository:         likeRepo,
		postRepository:         postRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterLikeRoutes registers like-related routes.
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:id/like", h.ToggleLike)
}

// ToggleLike flips the caller's like on a post. Repeating the call is a
// valid idempotent toggle, never an error. Only the on-transition fans out
// a notification; unliking leaves the earlier one in place.
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	active, count, err := h.likeRepository.Toggle(userID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle like")
	}

	if active {
		ref := post.ID
		if err := h.notificationRepository.Notify(models.NotificationLike, userID, post.UserID, &ref); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record notification")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"liked": active, "like_count": count})
}
