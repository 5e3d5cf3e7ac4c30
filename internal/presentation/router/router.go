package router

import (
	"net/http"
	"path/filepath"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"gallery/internal/presentation/handler"
	"gallery/internal/presentation/middleware"
)

// Handlers groups every HTTP handler the router serves.
type Handlers struct {
	Upload     *handler.UploadHandler
	List       *handler.ListHandler
	Get        *handler.GetHandler
	Feed       *handler.FeedHandler
	Engagement *handler.EngagementHandler
	Delete     *handler.DeleteHandler
	Admin      *handler.AdminHandler
	Settings   *handler.SettingsHandler
}

// New builds the echo server. admin guards every destructive route and must
// read sessions from store.
func New(cfg Config, h Handlers, store sessions.Store, admin middleware.AdminChecker) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	allowOrigins := cfg.AllowOrigins
	if len(allowOrigins) == 0 {
		allowOrigins = []string{"*"}
	}

	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPut, http.MethodPost,
			http.MethodDelete, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	if cfg.BodyLimit != "" {
		e.Use(echoMiddleware.BodyLimit(cfg.BodyLimit))
	}
	e.Use(session.Middleware(store))

	requireAdmin := middleware.RequireAdmin(admin)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	api := e.Group("/api")
	api.POST("/upload", h.Upload.Handle)
	api.GET("/albums", h.List.HandleList)
	api.GET("/album/:id", h.Get.HandleGet)
	api.GET("/images", h.Feed.HandleList)
	api.POST("/view/album/:id", h.Engagement.HandleView)
	api.POST("/like/album/:id", h.Engagement.HandleLike)
	api.DELETE("/image/:imageId", h.Delete.HandleDeleteImage, requireAdmin)
	api.DELETE("/album/:id", h.Delete.HandleDeleteAlbum, requireAdmin)
	api.GET("/admin/settings", h.Settings.HandleGet, requireAdmin)
	api.PUT("/admin/settings", h.Settings.HandleUpdate, requireAdmin)

	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", h.Admin.HandleLogin)
	adminGroup.GET("/check", h.Admin.HandleCheck)
	adminGroup.POST("/logout", h.Admin.HandleLogout, requireAdmin)

	// Admin pages live outside the static root so the dashboard is only
	// reachable through its gated route.
	if cfg.AdminDir != "" {
		adminGroup.GET("", func(c echo.Context) error {
			return c.File(filepath.Join(cfg.AdminDir, "login.html"))
		})
		adminGroup.GET("/dashboard", func(c echo.Context) error {
			return c.File(filepath.Join(cfg.AdminDir, "admin.html"))
		}, requireAdmin)
	}

	if cfg.StaticDir != "" {
		e.Static("/", cfg.StaticDir)
	}

	return e
}
