package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
	"gallery/internal/domain/dto"
	"gallery/internal/presentation"
)

type FeedHandler struct {
	feed abstraction.Feed
}

func NewFeedHandler(feed abstraction.Feed) *FeedHandler {
	return &FeedHandler{
		feed: feed,
	}
}

type feedResponse struct {
	Success bool `json:"success"`
	dto.ImagePage
}

// HandleList handles GET /api/images requests. With a page or limit query it
// reads one page; otherwise it returns the whole feed as a single page.
func (h *FeedHandler) HandleList(c echo.Context) error {
	page, hasPage := intQueryParam(c, presentation.PageQuery)
	limit, hasLimit := intQueryParam(c, presentation.LimitQuery)

	if hasPage || hasLimit {
		result, status, err := h.feed.PageImages(c.Request().Context(), page, limit)
		if err != nil {
			return errorJSON(c, status, err)
		}

		return c.JSON(http.StatusOK, feedResponse{Success: true, ImagePage: *result})
	}

	images, status, err := h.feed.ListImages(c.Request().Context())
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, feedResponse{
		Success: true,
		ImagePage: dto.ImagePage{
			Images:     images,
			Page:       1,
			Limit:      len(images),
			Total:      len(images),
			TotalPages: 1,
		},
	})
}

// intQueryParam reports a query parameter only when it parses as an integer.
func intQueryParam(c echo.Context, name string) (int, bool) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, false
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return v, true
}
