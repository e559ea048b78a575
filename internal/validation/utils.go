package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/starwars-api/internal/errs"
	"github.com/go-playground/validator/v10"
)

// CustomValidationError represents a validation issue that cannot be
// expressed with validator struct tags.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that
// satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	return "Validation failed"
}

// extractValidationError converts validator errors into a top-level
// message plus per-field errors. A payload that fails exclusively on
// required tags yields the message "Missing required fields".
func extractValidationError(err error) (string, []errs.FieldError) {
	var fieldErrors []errs.FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		customErrors, isCustom := err.(CustomValidationErrors)
		if !isCustom {
			return err.Error(), []errs.FieldError{{Field: "", Error: err.Error()}}
		}
		for _, ce := range customErrors {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: ce.Field,
				Error: ce.Message,
			})
		}
		return "Validation failed", fieldErrors
	}

	onlyRequired := true
	for _, fe := range validationErrors {
		field := strings.ToLower(fe.Field())
		var msg string

		switch fe.Tag() {
		case "required":
			msg = "is required"

		case "min":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must be at least %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must be at least %s", fe.Param())
			}

		case "max":
			if fe.Type().Kind() == reflect.String {
				msg = fmt.Sprintf("must not exceed %s characters", fe.Param())
			} else {
				msg = fmt.Sprintf("must not exceed %s", fe.Param())
			}

		case "email":
			msg = "must be a valid email address"

		case "gt":
			msg = fmt.Sprintf("must be greater than %s", fe.Param())

		default:
			if fe.Param() != "" {
				msg = fmt.Sprintf("%s: %s:%s", field, fe.Tag(), fe.Param())
			} else {
				msg = fmt.Sprintf("%s: %s", field, fe.Tag())
			}
		}

		if fe.Tag() != "required" {
			onlyRequired = false
		}

		fieldErrors = append(fieldErrors, errs.FieldError{
			Field: field,
			Error: msg,
		})
	}

	if onlyRequired && len(fieldErrors) > 0 {
		return "Missing required fields", fieldErrors
	}

	return "Validation failed", fieldErrors
}
