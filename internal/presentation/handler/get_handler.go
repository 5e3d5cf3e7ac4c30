package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
	"gallery/internal/presentation"
)

type GetHandler struct {
	getter abstraction.Getter
}

func NewGetHandler(getter abstraction.Getter) *GetHandler {
	return &GetHandler{
		getter: getter,
	}
}

// HandleGet handles GET /api/album/:id requests.
func (h *GetHandler) HandleGet(c echo.Context) error {
	album, status, err := h.getter.GetAlbum(c.Request().Context(), c.Param(presentation.IDParam))
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"album":   album,
	})
}
