// Package errs defines the error types surfaced to API clients.
//
// Every failed request, whatever layer it failed in, ends up as an
// *HTTPError and is written to the wire as a single-field JSON body:
//
//	{"error": "Post not found"}
//
// The Code and Status fields are kept for logging and status-code
// selection but are never serialized.
package errs

import "strings"

// HTTPError is the error type returned to API clients.
//
// It implements the error interface so handlers and services can
// return it directly; the global error handler picks out Status and
// writes Message as the `error` field of the response body.
type HTTPError struct {
	// Code is a machine-readable error code (e.g. "BAD_REQUEST"),
	// used in structured logs only.
	Code string `json:"-"`

	// Message is the human-readable message sent to the client.
	Message string `json:"error"`

	// Status is the HTTP status code to respond with.
	Status int `json:"-"`
}

// Error satisfies the built-in error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// Is reports whether target is also an *HTTPError. It intentionally
// matches on type, not on Code or Status.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of this HTTPError with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Code:    e.Code,
		Message: message,
		Status:  e.Status,
	}
}

// MakeUpperCaseWithUnderscores converts an HTTP status text into an
// UPPER_CASE_WITH_UNDERSCORES error code, e.g. "Bad Request" ->
// "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
