package presentation

import (
	"github.com/labstack/echo/v4"

	"gallery/pkg/utils"
)

// CallerIdentity is the key likes are deduplicated by. Every caller whose
// address cannot be told shares one identity.
func CallerIdentity(c echo.Context) string {
	req := c.Request()

	return utils.CallerIdentity(req.Header.Get(ForwardedFor), req.RemoteAddr)
}
