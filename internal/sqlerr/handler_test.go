package sqlerr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/arjya12/Tourism-Agency-Booking-System/internal/errs"

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

func TestHandleErrorUniqueViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23505",
		Message:        "duplicate key value violates unique constraint",
		TableName:      "users",
		ConstraintName: "users_email_key",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "USER_ALREADY_EXISTS" {
		t.Errorf("code = %q, want USER_ALREADY_EXISTS", httpErr.Code)
	}
	if httpErr.Message != "A user with this Email already exists" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorForeignKeyViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:       "ERROR",
		Code:           "23503",
		Message:        "insert or update violates foreign key constraint",
		TableName:      "bookings",
		ConstraintName: "bookings_package_id_fkey",
		ColumnName:     "package_id",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Status != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", httpErr.Status)
	}
	if httpErr.Code != "BOOKING_NOT_FOUND" {
		t.Errorf("code = %q, want BOOKING_NOT_FOUND", httpErr.Code)
	}
	if httpErr.Message != "The referenced Package does not exist" {
		t.Errorf("message = %q", httpErr.Message)
	}
}

func TestHandleErrorNotNullViolation(t *testing.T) {
	err := HandleError(&pgconn.PgError{
		Severity:   "ERROR",
		Code:       "23502",
		TableName:  "users",
		ColumnName: "first_name",
	})

	httpErr := asHTTPError(t, err)
	if httpErr.Message != "The First Name is required" {
		t.Errorf("message = %q", httpErr.Message)
	}
	if len(httpErr.Errors) != 1 || httpErr.Errors[0].Field != "first_name" {
		t.Errorf("field errors = %+v", httpErr.Errors)
	}
}

func TestHandleErrorNoRows(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(pgx.ErrNoRows))
	if httpErr.Status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", httpErr.Status)
	}
}

func TestHandleErrorPassesThroughHTTPError(t *testing.T) {
	original := errs.NewNotFoundError("Booking not found", true, nil)
	if got := HandleError(original); got != original {
		t.Errorf("HTTPError was re-wrapped: %v", got)
	}
}

func TestHandleErrorUnknownIsInternal(t *testing.T) {
	httpErr := asHTTPError(t, HandleError(fmt.Errorf("connection refused")))
	if httpErr.Status != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", httpErr.Status)
	}
}

func TestErrCode(t *testing.T) {
	converted := ConvertPgError(&pgconn.PgError{Code: "23505"})
	if ErrCode(converted) != UniqueViolation {
		t.Error("expected UniqueViolation")
	}
	if ErrCode(errors.New("plain")) != Other {
		t.Error("expected Other for non-sql errors")
	}
}

func TestExtractColumnForUniqueViolation(t *testing.T) {
	cases := map[string]string{
		"users_email_key":    "email",
		"unique_users_email": "email",
		"users_pkey":         "",
		"":                   "",
	}
	for constraint, want := range cases {
		if got := extractColumnForUniqueViolation(constraint); got != want {
			t.Errorf("extractColumnForUniqueViolation(%q) = %q, want %q", constraint, got, want)
		}
	}
}
