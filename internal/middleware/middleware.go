// Package middleware wires the HTTP middleware stack.
//
// It provides the global middleware (CORS, request logging, panic
// recovery, secure headers), per-request correlation (request IDs and
// request-scoped loggers), and the global error handler that converts
// every error into the API's JSON error shape.
package middleware
