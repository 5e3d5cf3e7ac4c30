package session

import (
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const adminKey = "isAdmin"

// AdminSession reads and writes the admin flag of the caller's session. It
// needs the echo-contrib session middleware installed on the route.
type AdminSession struct {
	name    string
	options sessions.Options
}

func NewAdminSession(cfg Config) *AdminSession {
	return &AdminSession{
		name:    cfg.Name,
		options: cookieOptions(cfg),
	}
}

func (a *AdminSession) IsAdmin(c echo.Context) bool {
	sess, err := session.Get(a.name, c)
	if err != nil {
		return false
	}

	isAdmin, ok := sess.Values[adminKey].(bool)

	return ok && isAdmin
}

func (a *AdminSession) Grant(c echo.Context) error {
	sess, err := session.Get(a.name, c)
	if err != nil {
		return err
	}

	opts := a.options
	sess.Options = &opts
	sess.Values[adminKey] = true

	return sess.Save(c.Request(), c.Response())
}

func (a *AdminSession) Revoke(c echo.Context) error {
	sess, err := session.Get(a.name, c)
	if err != nil {
		return err
	}

	opts := a.options
	opts.MaxAge = -1
	sess.Options = &opts
	delete(sess.Values, adminKey)

	return sess.Save(c.Request(), c.Response())
}
