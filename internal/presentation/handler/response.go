package handler

import (
	"github.com/labstack/echo/v4"

	"gallery/internal/presentation"
)

func errorJSON(c echo.Context, status int, err error) error {
	c.Response().Header().Set(presentation.ReasonTag, err.Error())

	return c.JSON(status, map[string]string{"error": err.Error()})
}
