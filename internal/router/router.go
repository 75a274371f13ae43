// Package router initializes the HTTP router (using echo).
//
// It registers the middleware stack in order and maps the API paths
// to their handlers.
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mayett515/masterblog-api/internal/handler"
	"github.com/mayett515/masterblog-api/internal/middleware"
	"github.com/mayett515/masterblog-api/internal/server"
)

// New builds the echo engine with the full middleware stack and all
// routes registered. The returned engine is handed to the http.Server
// owned by *server.Server.
func New(s *server.Server, h *handler.Handlers, mw *middleware.Middlewares) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Every error, wherever it happened, is formatted here.
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	// Order matters: RequestID must precede the context enhancer so
	// the request-scoped logger carries the correlation ID, and the
	// request logger reads that logger from context.
	e.Use(mw.Global.Recover())
	e.Use(middleware.RequestID())
	e.Use(mw.ContextEnhancer.EnhanceContext())
	e.Use(mw.Global.RequestLogger())
	e.Use(mw.Global.Secure())
	e.Use(mw.Global.CORS())

	registerSystemRoutes(e, h)
	registerPostRoutes(e, h)

	return e
}

// registerPostRoutes maps the post API surface.
func registerPostRoutes(e *echo.Echo, h *handler.Handlers) {
	api := e.Group("/api")

	api.GET("/posts", handler.Handle(h.Posts.List, http.StatusOK))
	api.POST("/posts", handler.Handle(h.Posts.Create, http.StatusCreated))
	api.GET("/posts/search", handler.Handle(h.Posts.Search, http.StatusOK))
	api.PUT("/posts/:id", handler.Handle(h.Posts.Update, http.StatusOK))
	api.DELETE("/posts/:id", handler.Handle(h.Posts.Delete, http.StatusOK))
}
