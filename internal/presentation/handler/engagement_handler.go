package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
	"gallery/internal/presentation"
)

type EngagementHandler struct {
	engagement abstraction.Engagement
}

func NewEngagementHandler(engagement abstraction.Engagement) *EngagementHandler {
	return &EngagementHandler{
		engagement: engagement,
	}
}

// HandleView handles POST /api/view/album/:id requests.
func (h *EngagementHandler) HandleView(c echo.Context) error {
	views, status, err := h.engagement.ViewAlbum(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "views": views})
}

// HandleLike handles POST /api/like/album/:id requests.
func (h *EngagementHandler) HandleLike(c echo.Context) error {
	likes, status, err := h.engagement.LikeAlbum(c.Request().Context(), c.Param(presentation.IDParam),
		presentation.CallerIdentity(c))
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"success": true, "likes": likes})
}
