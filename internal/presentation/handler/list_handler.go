package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
)

type ListHandler struct {
	lister abstraction.AlbumLister
}

func NewListHandler(lister abstraction.AlbumLister) *ListHandler {
	return &ListHandler{
		lister: lister,
	}
}

// HandleList handles GET /api/albums requests.
func (h *ListHandler) HandleList(c echo.Context) error {
	albums, status, err := h.lister.ListAlbums(c.Request().Context())
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{"albums": albums})
}
