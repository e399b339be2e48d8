package handlers

import (
	"net/http"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReactionHandler handles typed reaction toggles.
type ReactionHandler struct {
	reactionRepository     repositories.ReactionRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

func NewReactionHandler(reactionRepo repositories.ReactionRepository, postRepo repositories.PostRepository, notifRepo repositories.NotificationRepository) *ReactionHandler {
	return &ReactionHandler{
		reactionRepository:     reactionRepo,
		postRepository:         postRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterReactionRoutes registers reaction-related routes.
func (h *ReactionHandler) RegisterReactionRoutes(g *echo.Group) {
	g.POST("/posts/:id/react", h.ToggleReaction)
}

// ToggleReaction flips one reaction kind for the caller. Other kinds the
// caller holds on the same post are untouched. The response carries the
// post's full kind-to-count map plus the caller's active kinds.
func (h *ReactionHandler) ToggleReaction(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.ReactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	active, counts, userKinds, err := h.reactionRepository.Toggle(userID, postID, req.Type)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle reaction")
	}

	if active {
		ref := post.ID
		if err := h.notificationRepository.Notify(models.NotificationReaction, userID, post.UserID, &ref); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record notification")
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"reacted":        active,
		"reactions":      counts,
		"user_reactions": userKinds,
	})
}
