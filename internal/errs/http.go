package errs

import "net/http"

// NewBadRequestError creates a 400 Bad Request HTTPError.
func NewBadRequestError(message string, fields ...FieldError) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusBadRequest)),
		Message: message,
		Fields:  fields,
	}
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusNotFound)),
		Message: message,
	}
}

// NewInternalServerError creates a 500 Internal Server Error HTTPError.
// The message is sent to the client, so callers must pass derived text,
// never raw driver or stack output.
func NewInternalServerError(message string) *HTTPError {
	if message == "" {
		message = http.StatusText(http.StatusInternalServerError)
	}
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    MakeUpperCaseWithUnderscores(http.StatusText(http.StatusInternalServerError)),
		Message: message,
	}
}
