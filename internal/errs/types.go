package errs

import "strings"

// FieldError describes a single invalid request field. Field errors are
// attached to an HTTPError for logging; they are not part of the wire
// shape.
type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// HTTPError is the canonical API error. Only Message is serialized;
// clients always receive {"message": <string>}.
type HTTPError struct {
	Status  int          `json:"-"`
	Code    string       `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"-"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, &HTTPError{}) match any HTTPError regardless
// of status or message.
func (e *HTTPError) Is(target error) bool {
	_, ok := target.(*HTTPError)
	return ok
}

// WithMessage returns a copy of the error with Message replaced.
func (e *HTTPError) WithMessage(message string) *HTTPError {
	return &HTTPError{
		Status:  e.Status,
		Code:    e.Code,
		Message: message,
		Fields:  e.Fields,
	}
}

// MakeUpperCaseWithUnderscores turns an HTTP status text into a stable
// machine code: "Bad Request" -> "BAD_REQUEST".
func MakeUpperCaseWithUnderscores(str string) string {
	return strings.ToUpper(strings.ReplaceAll(str, " ", "_"))
}
