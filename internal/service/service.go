// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives
// validated data from the handler, performs the operation against the
// post store, and translates store errors into the API error types.
package service
