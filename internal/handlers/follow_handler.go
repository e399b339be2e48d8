package handlers

import (
	"errors"
	"net/http"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FollowHandler handles follow toggles and follower listings.
type FollowHandler struct {
	followRepository       repositories.FollowRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

func NewFollowHandler(followRepo repositories.FollowRepository, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *FollowHandler {
	return &FollowHandler{
		followRepository:       followRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterFollowRoutes registers follow-related routes.
func (h *FollowHandler) RegisterFollowRoutes(g *echo.Group) {
	g.POST("/users/:username/follow", h.ToggleFollow)
	g.GET("/users/:username/followers", h.ListFollowers)
	g.GET("/users/:username/following", h.ListFollowing)
}

// ToggleFollow flips the caller's follow edge onto the named user.
// Self-follow is a 400 regardless of store state.
func (h *FollowHandler) ToggleFollow(c echo.Context) error {
	userID := getUserIDFromContext(c)

	target, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user")
	}

	active, err := h.followRepository.Toggle(userID, target.ID)
	if errors.Is(err, repositories.ErrSelfAction) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot follow yourself")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle follow")
	}

	if active {
		if err := h.notificationRepository.Notify(models.NotificationFollow, userID, target.ID, nil); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record notification")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{"following": active})
}

// ListFollowers lists who follows the named user.
func (h *FollowHandler) ListFollowers(c echo.Context) error {
	return h.listEdges(c, h.followRepository.Followers)
}

// ListFollowing lists who the named user follows.
func (h *FollowHandler) ListFollowing(c echo.Context) error {
	return h.listEdges(c, h.followRepository.Following)
}

func (h *FollowHandler) listEdges(c echo.Context, list func(userID, viewerID uint) ([]models.FollowListEntry, error)) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user")
	}

	entries, err := list(user.ID, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load list")
	}
	return c.JSON(http.StatusOK, entries)
}
