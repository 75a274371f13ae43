// Package validation contains the logic for validating request data.
//
// Request payload types implement Validatable and enforce their own
// rules, typically through the shared go-playground/validator instance
// exposed by Struct. BindAndValidate glues echo's binder to that
// contract and turns failures into API errors.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"

	"github.com/mayett515/masterblog-api/internal/errs"
)

// Validatable is implemented by request payload types that know how
// to validate themselves.
//
// Typical pattern: a request struct with validator tags plus a
// Validate() method that calls Struct and maps the result onto the
// API's error messages.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance; validator.Validate is
// safe for concurrent use and caches struct metadata.
var validate = validator.New()

// Struct runs the shared validator against v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind populates the payload from path params, query, and body.
//     Malformed JSON and unparseable path params become a 400.
//  2. payload.Validate() applies the endpoint's rules. An *errs.HTTPError
//     is passed through untouched so endpoints control their exact
//     client-facing messages; anything else is wrapped as a 400.
//
// payload must be a pointer so echo's binder can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid request payload")
	}

	if err := payload.Validate(); err != nil {
		var httpErr *errs.HTTPError
		if pkgerrors.As(err, &httpErr) {
			return httpErr
		}
		return errs.NewBadRequestError(err.Error())
	}

	return nil
}
