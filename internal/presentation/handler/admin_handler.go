package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/application/usecase/abstraction"
	"gallery/pkg/logger"
)

// AdminSession stores the admin flag in the caller's session.
type AdminSession interface {
	IsAdmin(c echo.Context) bool
	Grant(c echo.Context) error
	Revoke(c echo.Context) error
}

type AdminHandler struct {
	authenticator abstraction.Authenticator
	session       AdminSession
}

func NewAdminHandler(authenticator abstraction.Authenticator, session AdminSession) *AdminHandler {
	return &AdminHandler{
		authenticator: authenticator,
		session:       session,
	}
}

type loginRequest struct {
	Pin string `json:"pin"`
}

// HandleLogin handles POST /admin/login. A wrong pin is answered with 200
// and success false.
func (h *AdminHandler) HandleLogin(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, errors.New("invalid login request"))
	}

	ok, status, err := h.authenticator.CheckPin(c.Request().Context(), req.Pin)
	if err != nil {
		return errorJSON(c, status, err)
	}

	if !ok {
		return c.JSON(http.StatusOK, map[string]interface{}{"success": false, "message": "Wrong PIN"})
	}

	if err := h.session.Grant(c); err != nil {
		logger.Error("failed to save admin session", "err", err)

		return errorJSON(c, http.StatusInternalServerError, errors.New("login failed"))
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// HandleCheck handles GET /admin/check and never fails.
func (h *AdminHandler) HandleCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"isAdmin": h.session.IsAdmin(c)})
}

// HandleLogout handles POST /admin/logout.
func (h *AdminHandler) HandleLogout(c echo.Context) error {
	if err := h.session.Revoke(c); err != nil {
		logger.Error("failed to clear admin session", "err", err)

		return errorJSON(c, http.StatusInternalServerError, errors.New("logout failed"))
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
