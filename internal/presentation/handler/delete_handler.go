package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
	"gallery/internal/presentation"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{
		deleter: deleter,
	}
}

// HandleDeleteImage handles DELETE /api/image/:imageId requests.
func (h *DeleteHandler) HandleDeleteImage(c echo.Context) error {
	imageID := c.Param(presentation.ImageIDParam)
	if imageID == "" {
		return errorJSON(c, http.StatusBadRequest, errors.New("missing image id"))
	}

	status, err := h.deleter.DeleteImage(c.Request().Context(), imageID)
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// HandleDeleteAlbum handles DELETE /api/album/:id requests.
func (h *DeleteHandler) HandleDeleteAlbum(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		return errorJSON(c, http.StatusBadRequest, errors.New("missing album id"))
	}

	status, err := h.deleter.DeleteAlbum(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
