package middleware

import (
	"github.com/mayett515/masterblog-api/internal/server"
)

// Middlewares is a lightweight container that groups all middleware
// components used by the HTTP server. Build once during wiring, reuse
// everywhere.
type Middlewares struct {
	// Global holds middleware applied to the whole API: CORS,
	// request logging, recovery, secure headers, and the global
	// error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped
	// logger (request_id, method, path, ip).
	ContextEnhancer *ContextEnhancer
}

// NewMiddlewares constructs all middleware components from the
// application container.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
	}
}
