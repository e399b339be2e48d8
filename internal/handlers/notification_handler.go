package handlers

import (
	"net/http"

	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// notificationPageSize bounds the notification listing.
const notificationPageSize = 50

// NotificationHandler handles the recipient-facing notification surface.
type NotificationHandler struct {
	notificationRepository repositories.NotificationRepository
}

func NewNotificationHandler(notifRepo repositories.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{notificationRepository: notifRepo}
}

// RegisterNotificationRoutes registers notification routes.
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.ListNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.POST("/notifications/read", h.MarkAllRead)
}

// ListNotifications returns the caller's newest notifications.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	views, err := h.notificationRepository.ForRecipient(getUserIDFromContext(c), notificationPageSize)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load notifications")
	}
	return c.JSON(http.StatusOK, views)
}

// GetUnreadCount reports how many unread notifications the caller has.
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.notificationRepository.UnreadCount(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to count notifications")
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// MarkAllRead flips every notification the caller owns to read. The scope
// is the authenticated user only; the payload carries nothing.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.notificationRepository.MarkAllRead(getUserIDFromContext(c)); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to mark notifications read")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
