// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"
	"path/filepath"

	"journal/config"
	"journal/internal/delivery/http/middleware"
	"journal/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	EntryHandler   *handler.EntryHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	authHandler    *handler.AuthHandler
	entryHandler   *handler.EntryHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		authHandler:    params.AuthHandler,
		entryHandler:   params.EntryHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public account and session routes
	apiGroup := e.Group("/api")
	{
		apiGroup.GET("/me", r.authHandler.Me)
		apiGroup.POST("/signup", r.authHandler.Signup)
		apiGroup.POST("/login", r.authHandler.Login)
		apiGroup.POST("/logout", r.authHandler.Logout)
	}

	// Entry routes that require a valid session
	entryGroup := apiGroup.Group("/entries")
	entryGroup.Use(r.authMiddleware.Authenticate)
	{
		entryGroup.GET("", r.entryHandler.List)
		entryGroup.POST("", r.entryHandler.Create)
		entryGroup.GET("/:id", r.entryHandler.Get)
		entryGroup.PUT("/:id", r.entryHandler.Update)
		entryGroup.DELETE("/:id", r.entryHandler.Delete)
	}

	r.registerPages(e)
}

// registerPages serves the static HTML frontend when a static directory is
// configured. The API is fully usable without it.
func (r *router) registerPages(e *echo.Echo) {
	staticDir := r.cfg.HTTP.StaticDir
	if staticDir == "" {
		return
	}

	page := func(name string) echo.HandlerFunc {
		path := filepath.Join(staticDir, name)

		return func(c echo.Context) error {
			return c.File(path)
		}
	}

	e.GET("/", page("index.html"))
	e.GET("/signup", page("signup.html"))
	e.GET("/view", page("view.html"))

	// The home page is only meaningful with a session; guests go back to login.
	e.GET("/home", func(c echo.Context) error {
		if r.authMiddleware.CurrentClaims(c) == nil {
			return c.Redirect(http.StatusFound, "/")
		}

		return c.File(filepath.Join(staticDir, "home.html"))
	})

	e.Static("/static", staticDir)
}
