package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mayett515/masterblog-api/internal/middleware"
	"github.com/mayett515/masterblog-api/internal/server"
	"github.com/mayett515/masterblog-api/internal/validation"
)

// Handler is the base handler type holding shared application
// dependencies. Concrete handlers embed it to reach config and the
// root logger via *server.Server.
type Handler struct {
	server *server.Server
}

// NewHandler constructs a base Handler. Returned by value: the struct
// only contains a pointer, so copies are cheap and share the Server.
func NewHandler(s *server.Server) Handler {
	return Handler{server: s}
}

// --- Generic typed handler plumbing -----------------------------------------

// RequestPtr constrains PT to be a pointer to the request struct that
// implements validation.Validatable. echo's binder needs the pointer;
// the constraint lets Handle allocate a fresh request per call instead
// of sharing one instance across requests.
type RequestPtr[Req any] interface {
	*Req
	validation.Validatable
}

// ResponseHandler defines how a successful handler result is written
// to the HTTP response.
type ResponseHandler interface {
	// Handle writes the HTTP response for the given result.
	Handle(c echo.Context, result any) error

	// GetOperation returns an operation name used for structured
	// logging, distinguishing handler types in logs.
	GetOperation() string
}

// JSONResponseHandler writes JSON responses with a fixed status code.
type JSONResponseHandler struct {
	status int
}

func (h JSONResponseHandler) Handle(c echo.Context, result any) error {
	return c.JSON(h.status, result)
}

func (h JSONResponseHandler) GetOperation() string {
	return "handler"
}

// handleRequest is the shared execution pipeline for all endpoints:
//
//   - allocate and bind the request payload
//   - validate it
//   - execute the endpoint function
//   - log validation/handler/total durations
//   - write the response
//
// Errors are returned to echo so the global error handler formats the
// response.
func handleRequest[Req any, PT RequestPtr[Req]](
	c echo.Context,
	endpoint func(c echo.Context, req PT) (any, error),
	responseHandler ResponseHandler,
) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", responseHandler.GetOperation()).
		Str("method", c.Request().Method).
		Str("route", c.Path()).
		Logger()

	logger.Debug().Msg("handling request")

	req := PT(new(Req))

	validationStart := time.Now()
	if err := validation.BindAndValidate(c, req); err != nil {
		logger.Warn().
			Err(err).
			Dur("validation_duration", time.Since(validationStart)).
			Msg("request validation failed")
		return err
	}
	validationDuration := time.Since(validationStart)

	handlerStart := time.Now()
	result, err := endpoint(c, req)
	handlerDuration := time.Since(handlerStart)

	if err != nil {
		logger.Warn().
			Err(err).
			Dur("handler_duration", handlerDuration).
			Dur("total_duration", time.Since(start)).
			Msg("handler execution failed")
		return err
	}

	logger.Debug().
		Dur("validation_duration", validationDuration).
		Dur("handler_duration", handlerDuration).
		Dur("total_duration", time.Since(start)).
		Msg("request completed successfully")

	return responseHandler.Handle(c, result)
}

// Handle wraps a typed endpoint function into an echo.HandlerFunc with
// binding, validation, logging, and JSON response writing.
//
// Usage:
//
//	api.GET("/posts", handler.Handle(h.List, http.StatusOK))
func Handle[Req any, PT RequestPtr[Req], Res any](
	endpoint func(c echo.Context, req PT) (Res, error),
	status int,
) echo.HandlerFunc {
	return func(c echo.Context) error {
		return handleRequest[Req, PT](c, func(c echo.Context, req PT) (any, error) {
			return endpoint(c, req)
		}, JSONResponseHandler{status: status})
	}
}
