package handlers

import (
	"net/http"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// RepostHandler handles repost toggles.
type RepostHandler struct {
	repostRepository       repositories.RepostRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

func NewRepostHandler(repostRepo repositories.RepostRepository, postRepo repositories.PostRepository, notifRepo repositories.NotificationRepository) *RepostHandler {
	return &RepostHandler{
		repostRepository:       repostRepo,
		postRepository:         postRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterRepostRoutes registers repost-related routes.
func (h *RepostHandler) RegisterRepostRoutes(g *echo.Group) {
	g.POST("/posts/:id/repost", h.ToggleRepost)
}

// ToggleRepost flips the caller's repost on a post.
func (h *RepostHandler) ToggleRepost(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	post, err := h.postRepository.GetByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	active, count, err := h.repostRepository.Toggle(userID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle repost")
	}

	if active {
		ref := post.ID
		if err := h.notificationRepository.Notify(models.NotificationRepost, userID, post.UserID, &ref); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record notification")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"reposted": active, "repost_count": count})
}
