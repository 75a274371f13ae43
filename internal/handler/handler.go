// Package handler is the HTTP entry point for business logic after
// the router.
//
// It binds and validates requests through the validation package,
// calls the service layer, and writes JSON responses. The generic
// Handle pipeline centralizes binding, validation, timing logs, and
// response writing so endpoint methods stay small.
package handler
