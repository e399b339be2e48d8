package handlers

import (
	"net/http"

	"github.com/devgrain/confide/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles the ranked feed listing.
type FeedHandler struct {
	feedRepository repositories.FeedRepository
}

func NewFeedHandler(feedRepo repositories.FeedRepository) *FeedHandler {
	return &FeedHandler{feedRepository: feedRepo}
}

// RegisterFeedRoutes registers feed-related routes.
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/posts", h.GetFeed)
}

// GetFeed returns the composed feed for the caller. Unknown scope or sort
// values fall back to the defaults.
func (h *FeedHandler) GetFeed(c echo.Context) error {
	scope := repositories.FeedScope(c.QueryParam("feed"))
	if scope != repositories.ScopeFollowing {
		scope = repositories.ScopeAll
	}
	sort := repositories.FeedSort(c.QueryParam("sort"))
	if sort != repositories.SortTop {
		sort = repositories.SortRecent
	}

	views, err := h.feedRepository.Feed(getUserIDFromContext(c), scope, sort, repositories.FeedLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to load feed")
	}
	return c.JSON(http.StatusOK, views)
}
