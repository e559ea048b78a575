// Package validation binds and validates request payloads.
//
// Request types implement Validatable (usually by running
// validator.Struct on themselves); BindAndValidate wires Echo's binder
// to that and converts failures into field-level HTTP errors. When a
// payload fails only on required tags, the client message is exactly
// "Missing required fields".
package validation

import (
	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to
// validate themselves.
type Validatable interface {
	Validate() error
}

// BindAndValidate populates payload from the request (body, path and
// query params) and validates it. Payload must be a pointer so Bind can
// mutate it. Returns a 400 *errs.HTTPError on any failure.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("malformed request payload")
	}

	// Echo's default binder skips query params on mutating methods; the
	// favorite endpoints carry user_id in the query string of POSTs.
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, payload); err != nil {
		return errs.NewBadRequestError("malformed request payload")
	}

	if msg, fieldErrors := validateStruct(payload); fieldErrors != nil {
		return errs.NewBadRequestError(msg, fieldErrors...)
	}

	return nil
}

func validateStruct(v Validatable) (string, []errs.FieldError) {
	if err := v.Validate(); err != nil {
		return extractValidationError(err)
	}
	return "", nil
}
