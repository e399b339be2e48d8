package handlers

import (
	"net/http"

	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// BookmarkHandler handles bookmark toggles and the bookmark listing.
type BookmarkHandler struct {
	bookmarkRepository repositories.BookmarkRepository
	postRepository     repositories.PostRepository
	feedRepository     repositories.FeedRepository
}

func NewBookmarkHandler(bookmarkRepo repositories.BookmarkRepository, postRepo repositories.PostRepository, feedRepo repositories.FeedRepository) *BookmarkHandler {
	return &BookmarkHandler{
		bookmarkRepository: bookmarkRepo,
		postRepository:     postRepo,
		feedRepository:     feedRepo,
	}
}

// RegisterBookmarkRoutes registers bookmark-related routes.
func (h *BookmarkHandler) RegisterBookmarkRoutes(g *echo.Group) {
	g.POST("/posts/:id/bookmark", h.ToggleBookmark)
	g.GET("/bookmarks", h.ListBookmarks)
}

// ToggleBookmark flips the caller's bookmark. Bookmarks are private, so
// nothing fans out.
func (h *BookmarkHandler) ToggleBookmark(c echo.Context) error {
	userID := getUserIDFromContext(c)
	postID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if _, err := h.postRepository.GetByID(postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	active, err := h.bookmarkRepository.Toggle(userID, postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle bookmark")
	}
	return c.JSON(http.StatusOK, echo.Map{"bookmarked": active})
}

// ListBookmarks returns the caller's bookmarked posts as composed views.
func (h *BookmarkHandler) ListBookmarks(c echo.Context) error {
	views, err := h.feedRepository.Bookmarked(getUserIDFromContext(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load bookmarks")
	}
	return c.JSON(http.StatusOK, views)
}
