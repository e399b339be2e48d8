package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ReplyHandler handles replies to posts.
type ReplyHandler struct {
	replyRepository        repositories.ReplyRepository
	postRepository         repositories.PostRepository
	notificationRepository repositories.NotificationRepository
}

func NewReplyHandler(replyRepo repositories.ReplyRepository, postRepo repositories.PostRepository, notifRepo repositories.NotificationRepository) *ReplyHandler {
	return &ReplyHandler{
		replyRepository:        replyRepo,
		postRepository:         postRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterReplyRoutes registers reply-related routes.
func (h *ReplyHandler) RegisterReplyRoutes(g *echo.Group) {
	g.GET("/posts/:id/replies", h.ListReplies)
	g.POST("/posts/:id/replies", h.CreateReply)
	g.DELETE("/replies/:id", h.DeleteReply)
}

// ListReplies returns a post's replies oldest first.
func (h *ReplyHandler) ListReplies(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.postRepository.GetByID(postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	views, err := h.replyRepository.ForPost(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load replies")
	}
	return c.JSON(http.StatusOK, views)
}

// CreateReply adds a reply and notifies the post owner.
func (h *ReplyHandler) CreateReply(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req models.CreateReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := c.Validate(&req); err != nil {
		return err
	}

	post, err := h.postRepository.GetByID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	reply := &models.Reply{
		PostID: postID,
		UserID: userID,
		Text:   req.Text,
	}
	if err := h.replyRepository.Create(reply); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create reply")
	}

	ref := post.ID
	if err := h.notificationRepository.Notify(models.NotificationReply, userID, post.UserID, &ref); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record notification")
	}

	return c.JSON(http.StatusCreated, reply)
}

// DeleteReply removes the caller's own reply; anything else is a 404.
func (h *ReplyHandler) DeleteReply(c echo.Context) error {
	replyID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	err = h.replyRepository.DeleteOwned(replyID, getUserIDFromContext(c))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Reply not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete reply")
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}
