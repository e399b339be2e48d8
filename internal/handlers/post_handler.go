package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/devgrain/confide/backend/internal/models"
	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/devgrain/confide/backend/pkg/images"
	"github.com/devgrain/confide/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// PostHandler handles post creation, retrieval, search and deletion.
type PostHandler struct {
	postRepository repositories.PostRepository
	feedRepository repositories.FeedRepository
	userRepository repositories.UserRepository
	uploadDir      string
}

func NewPostHandler(postRepo repositories.PostRepository, feedRepo repositories.FeedRepository, userRepo repositories.UserRepository, uploadDir string) *PostHandler {
	return &PostHandler{
		postRepository: postRepo,
		feedRepository: feedRepo,
		userRepository: userRepo,
		uploadDir:      uploadDir,
	}
}

// RegisterPostRoutes registers post-related routes.
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/search", h.SearchPosts)
	g.GET("/posts/user/:username", h.PostsByUser)
	g.GET("/posts/:id", h.GetPost)
	g.DELETE("/posts/:id", h.DeletePost)
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid id")
	}
	return uint(id), nil
}

// CreatePost accepts a multipart form with text, an optional mood and an
// optional image handed off to the image collaborator.
func (h *PostHandler) CreatePost(c echo.Context) error {
	userID := getUserIDFromContext(c)

	req := models.CreatePostRequest{
		Text: strings.TrimSpace(c.FormValue("text")),
		Mood: c.FormValue("mood"),
	}
	if req.Mood == "" {
		req.Mood = "none"
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var imageURL *string
	if file, err := c.FormFile("image"); err == nil {
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
			logger.Error("image processing failed", zap.Error(err))
			return echo.NewHTTPError(http.StatusInternalServerError, "Failed to process image")
		}
		imageURL = &url
	}

	post := &models.Post{
		UserID:   userID,
		Text:     req.Text,
		Mood:     req.Mood,
		ImageURL: imageURL,
	}
	if err := h.postRepository.Create(post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create post")
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost returns the composed view of one post for the caller.
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	view, err := h.feedRepository.GetPost(postID, getUserIDFromContext(c))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load post")
	}
	return c.JSON(http.StatusOK, view)
}

// DeletePost cascades a post away. Non-owners get the same 404 as for a
// missing post so existence is not leaked.
func (h *PostHandler) DeletePost(c echo.Context) error {
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	err = h.postRepository.DeleteCascade(postID, getUserIDFromContext(c))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete post")
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": true})
}

// SearchPosts matches a substring of post text.
func (h *PostHandler) SearchPosts(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	views, err := h.feedRepository.Search(q, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Search failed")
	}
	return c.JSON(http.StatusOK, views)
}

// PostsByUser lists one user's posts, composed for the caller.
func (h *PostHandler) PostsByUser(c echo.Context) error {
	user, err := h.userRepository.GetUserByUsername(c.Param("username"))
	if errors.Is(err, repositories.ErrNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load user")
	}

	views, err := h.feedRepository.PostsByUser(user.ID, getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load posts")
	}
	return c.JSON(http.StatusOK, views)
}
