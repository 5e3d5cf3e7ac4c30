package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
)

type SettingsHandler struct {
	settings abstraction.SettingsManager
}

func NewSettingsHandler(settings abstraction.SettingsManager) *SettingsHandler {
	return &SettingsHandler{
		settings: settings,
	}
}

type settingsUpdate struct {
	SiteName *string `json:"siteName"`
}

// HandleGet handles GET /api/admin/settings requests.
func (h *SettingsHandler) HandleGet(c echo.Context) error {
	settings, status, err := h.settings.Get(c.Request().Context())
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, settings)
}

// HandleUpdate handles PUT /api/admin/settings requests. Fields left out of
// the body keep their value.
func (h *SettingsHandler) HandleUpdate(c echo.Context) error {
	var req settingsUpdate
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, errors.New("invalid settings request"))
	}

	status, err := h.settings.UpdateSiteName(c.Request().Context(), req.SiteName)
	if err != nil {
		return errorJSON(c, status, err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
