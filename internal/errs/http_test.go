package errs

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name       string
		err        *HTTPError
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{"bad request", NewBadRequestError("nope"), http.StatusBadRequest, "BAD_REQUEST", "nope"},
		{"not found", NewNotFoundError("planet not found"), http.StatusNotFound, "NOT_FOUND", "planet not found"},
		{"internal", NewInternalServerError("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "boom"},
		{"internal default message", NewInternalServerError(""), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Status != tt.wantStatus {
				t.Errorf("Status = %d, want %d", tt.err.Status, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
			if tt.err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", tt.err.Message, tt.wantMsg)
			}
			if tt.err.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", tt.err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestJSONShapeOnlyMessage(t *testing.T) {
	e := NewBadRequestError("Missing required fields", FieldError{Field: "name", Error: "is required"})

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if got, want := string(b), `{"message":"Missing required fields"}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}

func TestIsMatchesAnyHTTPError(t *testing.T) {
	if !errors.Is(NewNotFoundError("x"), &HTTPError{}) {
		t.Error("errors.Is should match any HTTPError")
	}
	if errors.Is(errors.New("x"), &HTTPError{}) {
		t.Error("plain errors must not match HTTPError")
	}
}

func TestWithMessage(t *testing.T) {
	base := NewNotFoundError("resource not found")
	derived := base.WithMessage("favorite not found")

	if derived.Message != "favorite not found" {
		t.Errorf("Message = %q", derived.Message)
	}
	if derived.Status != base.Status || derived.Code != base.Code {
		t.Error("WithMessage must keep status and code")
	}
	if base.Message != "resource not found" {
		t.Error("WithMessage must not mutate the receiver")
	}
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	if got := MakeUpperCaseWithUnderscores("Bad Request"); got != "BAD_REQUEST" {
		t.Errorf("got %q", got)
	}
	if got := MakeUpperCaseWithUnderscores("Internal Server Error"); got != "INTERNAL_SERVER_ERROR" {
		t.Errorf("got %q", got)
	}
}
