package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles direct messages.
type MessageHandler struct {
	messageRepository      repositories.MessageRepository
	userRepository         repositories.UserRepository
	notificationRepository repositories.NotificationRepository
}

func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, notifRepo repositories.NotificationRepository) *MessageHandler {
	return &MessageHandler{
		messageRepository:      messageRepo,
		userRepository:         userRepo,
		notificationRepository: notifRepo,
	}
}

// RegisterMessageRoutes registers message-related routes.
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/messages", h.ListConversations)
	g.GET("/messages/:username", h.GetThread)
	g.POST("/messages/:username", h.SendMessage)
}

// ListConversations returns the caller's conversation overview.
func (h *MessageHandler) ListConversations(c echo.Context) error {
	views, err := h.messageRepository.Conversations(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load conversations")
	}
	return c.JSON(http.StatusOK, views)
}

// GetThread returns the exchange with the named user and marks their
// messages read.
func (h *MessageHandler) GetThread(c echo.Context) error {
	other, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user")
	}

	views, err := h.messageRepository.Thread(getUserIDFromContext(c), other.ID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load thread")
	}
	return c.JSON(http.StatusOK, views)
}

// SendMessage sends a message to the named user and notifies them.
func (h *MessageHandler) SendMessage(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.Text = strings.TrimSpace(req.Text)
	if err := c.Validate(&req); err != nil {
		return err
	}

	receiver, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user")
	}

	message := &models.Message{
		SenderID:   userID,
		ReceiverID: receiver.ID,
		Text:       req.Text,
	}
	err = h.messageRepository.Send(message)
	if errors.Is(err, repositories.ErrSelfAction) {
		return echo.NewHTTPError(http.StatusBadRequest, "Cannot message yourself")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send message")
	}

	ref := message.ID
	if err := h.notificationRepository.Notify(models.NotificationMessage, userID, receiver.ID, &ref); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to record notification")
	}

	return c.JSON(http.StatusCreated, message)
}
