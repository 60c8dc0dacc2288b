package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorCode(t *testing.T) {
	err := &Error{Code: ENOTFOUND, Message: "Product not found"}
	if got := ErrorCode(err); got != ENOTFOUND {
		t.Errorf("expected %s, got %s", ENOTFOUND, got)
	}

	wrapped := fmt.Errorf("loading cart: %w", err)
	if got := ErrorCode(wrapped); got != ENOTFOUND {
		t.Errorf("expected code to survive wrapping, got %s", got)
	}

	if got := ErrorCode(errors.New("plain")); got != EINTERNAL {
		t.Errorf("plain errors should map to %s, got %s", EINTERNAL, got)
	}

	if got := ErrorCode(nil); got != "" {
		t.Errorf("nil error should have empty code, got %s", got)
	}
}

func TestErrorMessage(t *testing.T) {
	err := &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
	if got := ErrorMessage(err); got != "Quantity must be greater than 0" {
		t.Errorf("unexpected message: %s", got)
	}

	// Internal details never leak to the user.
	if got := ErrorMessage(errors.New("pg: connection refused")); got == "pg: connection refused" {
		t.Error("raw error message leaked")
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("cart.add", "quantidade", "quantidade must be at least 1")

	if !IsValidationError(err) {
		t.Fatal("expected a validation error")
	}

	fields := GetValidationFields(err)
	if fields["quantidade"] == "" {
		t.Errorf("expected a field message for quantidade, got %v", fields)
	}

	if ErrorCode(err) != EINVALID {
		t.Errorf("validation errors should carry %s, got %s", EINVALID, ErrorCode(err))
	}
}

func TestIsCode(t *testing.T) {
	err := Forbidden("cart.list_all", "admin role required")
	if !IsCode(err, EFORBIDDEN) {
		t.Error("expected IsCode to match EFORBIDDEN")
	}
	if IsCode(err, ENOTFOUND) {
		t.Error("IsCode matched the wrong code")
	}
}
