package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gallery/internal/presentation"
)

// AdminChecker tells whether the caller's session carries the admin flag.
type AdminChecker interface {
	IsAdmin(c echo.Context) bool
}

// RequireAdmin rejects callers without an admin session before the handler
// runs, so nothing is mutated on their behalf.
func RequireAdmin(checker AdminChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if !checker.IsAdmin(ctx) {
				ctx.Response().Header().Set(presentation.ReasonTag, "admin session required")

				return ctx.JSON(http.StatusUnauthorized, map[string]string{"error": "Unauthorized"})
			}

			return next(ctx)
		}
	}
}
