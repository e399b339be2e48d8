package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/devgrain/confide/backend/pkg/images"
	"github.com/devgrain/confide/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const userSearchLimit = 20

// UserHandler handles profiles, profile updates and user search.
type UserHandler struct {
	userRepository repositories.UserRepository
	uploadDir      string
}

func NewUserHandler(userRepo repositories.UserRepository, uploadDir string) *UserHandler {
	return &UserHandler{userRepository: userRepo, uploadDir: uploadDir}
}

// RegisterUserRoutes registers user profile routes.
func (h *UserHandler) RegisterUserRoutes(g *echo.Group) {
	g.GET("/users/search", h.SearchUsers)
	g.PUT("/users/me", h.UpdateProfile)
	g.PUT("/users/me/avatar", h.UpdateAvatar)
	g.GET("/users/:username", h.GetProfile)
}

// GetProfile returns the named user's page with counts and the caller's
// relationship.
func (h *UserHandler) GetProfile(c echo.Context) error {
	profile, err := h.userRepository.Profile(c.Param("username"), getUserIDFromContext(c))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load profile")
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile updates the caller's display name and bio. An empty
// display name falls back to the handle.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.Bio = strings.TrimSpace(req.Bio)
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}

	if req.DisplayName == "" {
		req.DisplayName = user.Username
	}
	user.DisplayName = req.DisplayName
	user.Bio = req.Bio

	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update profile")
	}
	return c.JSON(http.StatusOK, echo.Map{"display_name": user.DisplayName, "bio": user.Bio})
}

// UpdateAvatar stores a new avatar via the image collaborator.
func (h *UserHandler) UpdateAvatar(c echo.Context) error {
	file, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "No image provided")
	}
	if file.Size > images.MaxBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "Image too large")
	}
	if !images.ValidType(file.Header.Get("Content-Type")) {
		return echo.NewHTTPError(http.StatusBadRequest, "Only JPEG, PNG, GIF, WebP images allowed")
	}

	src, err := file.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to read image")
	}
	defer src.Close()

	url, err := images.Process(src, h.uploadDir)
	if err != nil {
		logger.Error("avatar processing failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process image")
	}

	user, err := h.userRepository.GetUserByID(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	user.AvatarURL = &url
	if err := h.userRepository.UpdateUser(user); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update avatar")
	}
	return c.JSON(http.StatusOK, echo.Map{"avatar_url": url})
}

// SearchUsers matches handles by substring.
func (h *UserHandler) SearchUsers(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusOK, []models.UserCompact{})
	}

	users, err := h.userRepository.SearchUsers(q, userSearchLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed")
	}
	return c.JSON(http.StatusOK, users)
}
