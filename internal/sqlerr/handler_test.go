package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/deppfellow/starwars-api/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

func asHTTPError(t *testing.T, err error) *errs.HTTPError {
	t.Helper()
	var httpErr *errs.HTTPError
	if !errors.As(err, &httpErr) {
		t.Fatalf("expected *errs.HTTPError, got %T: %v", err, err)
	}
	return httpErr
}

func TestHandleErrorPassthrough(t *testing.T) {
	original := errs.NewNotFoundError("planet not found")

	if got := HandleError(original); got != error(original) {
		t.Errorf("HTTPError must pass through unchanged, got %v", got)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	for _, err := range []error{pgx.ErrNoRows, sql.ErrNoRows, fmt.Errorf("query: %w", pgx.ErrNoRows)} {
		httpErr := asHTTPError(t, HandleError(err))
		if httpErr.Status != http.StatusNotFound {
			t.Errorf("Status = %d, want 404", httpErr.Status)
		}
		if httpErr.Message != "resource not found" {
			t.Errorf("Message = %q", httpErr.Message)
		}
	}
}

func TestHandleErrorUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23505",
		Severity:       "ERROR",
		Message:        `duplicate key value violates unique constraint "planets_name_key"`,
		TableName:      "planets",
		ConstraintName: "planets_name_key",
	}

	httpErr := asHTTPError(t, HandleError(fmt.Errorf("insert planet: %w", pgErr)))

	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", httpErr.Status)
	}
	if httpErr.Code != "PLANET_ALREADY_EXISTS" {
		t.Errorf("Code = %q", httpErr.Code)
	}
	if httpErr.Message != "a planet with this name already exists" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23503",
		Severity:   "ERROR",
		TableName:  "favorites",
		ColumnName: "planet_id",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", httpErr.Status)
	}
	if httpErr.Code != "FAVORITE_NOT_FOUND" {
		t.Errorf("Code = %q", httpErr.Code)
	}
	if httpErr.Message != "the referenced planet does not exist or is still referenced" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHandleErrorCheckViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           "23514",
		Severity:       "ERROR",
		TableName:      "favorites",
		ConstraintName: "favorites_target_check",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	if httpErr.Code != "FAVORITE_INVALID" {
		t.Errorf("Code = %q", httpErr.Code)
	}
	if httpErr.Message != "one or more values do not meet required conditions" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHandleErrorNeverLeaksDriverText(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:       "23502",
		Severity:   "ERROR",
		Message:    `null value in column "name" violates not-null constraint`,
		TableName:  "planets",
		ColumnName: "name",
	}

	httpErr := asHTTPError(t, HandleError(pgErr))

	if httpErr.Message != "the Name field is required" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestHandleErrorUnknown(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(errors.New("connection reset")))

	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", httpErr.Status)
	}
	if httpErr.Message != "Internal Server Error" {
		t.Errorf("Message = %q", httpErr.Message)
	}
}

func TestErrCode(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23505", Severity: "ERROR"}
	wrapped := fmt.Errorf("insert: %w", ConvertPgError(pgErr))

	if got := ErrCode(wrapped); got != UniqueViolation {
		t.Errorf("ErrCode = %v, want UniqueViolation", got)
	}
	if got := ErrCode(errors.New("plain")); got != Other {
		t.Errorf("ErrCode = %v, want Other", got)
	}
}

func TestGenerateErrorCode(t *testing.T) {
	tests := []struct {
		table string
		code  Code
		want  string
	}{
		{"planets", UniqueViolation, "PLANET_ALREADY_EXISTS"},
		{"people", ForeignKeyViolation, "PEOPLE_NOT_FOUND"},
		{"users", NotNullViolation, "USER_REQUIRED"},
		{"favorites", CheckViolation, "FAVORITE_INVALID"},
		{"", UniqueViolation, "RECORD_ALREADY_EXISTS"},
	}

	for _, tt := range tests {
		if got := generateErrorCode(tt.table, tt.code); got != tt.want {
			t.Errorf("generateErrorCode(%q, %v) = %q, want %q", tt.table, tt.code, got, tt.want)
		}
	}
}

func TestGetEntityName(t *testing.T) {
	tests := []struct {
		table, column, want string
	}{
		{"planets", "", "planet"},
		{"people", "", "person"},
		{"favorites", "planet_id", "planet"},
		{"favorites", "people_id", "people"},
		{"", "", "record"},
	}

	for _, tt := range tests {
		if got := getEntityName(tt.table, tt.column); got != tt.want {
			t.Errorf("getEntityName(%q, %q) = %q, want %q", tt.table, tt.column, got, tt.want)
		}
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	tests := []struct {
		constraint, want string
	}{
		{"planets_name_key", "name"},
		{"users_email_ukey", "email"},
		{"unique_users_email", "email"},
		{"pk_users", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := extractColumnForUniqueViolation(tt.constraint); got != tt.want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", tt.constraint, got, tt.want)
		}
	}
}
