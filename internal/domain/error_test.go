package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid quantity",
			},
			expected: "invalid quantity",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "checkout.submit",
				Message: "cart is empty",
			},
			expected: "checkout.submit: cart is empty",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "checkout.submit",
				Message: "submission failed",
				Err:     errors.New("processing timed out"),
			},
			expected: "checkout.submit: submission failed: processing timed out",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "submission failed",
				Err:     errors.New("processing timed out"),
			},
			expected: "submission failed: processing timed out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:    EINTERNAL,
		Message: "wrapped",
		Err:     underlying,
	}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", unwrapped, underlying)
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "domain error",
			err:      &Error{Code: EINVALID, Message: "test"},
			expected: EINVALID,
		},
		{
			name:     "wrapped domain error",
			err:      fmt.Errorf("wrapped: %w", ErrProductNotFound),
			expected: ENOTFOUND,
		},
		{
			name:     "non-domain error",
			err:      errors.New("plain error"),
			expected: EINTERNAL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "user-facing error",
			err:      ErrProductNotFound,
			expected: "Product not found",
		},
		{
			name:     "internal error hides details",
			err:      Internal(errors.New("goroutine leak"), "session.gc", "cleanup failed"),
			expected: "An internal error occurred. Please try again later.",
		},
		{
			name:     "non-domain error hides details",
			err:      errors.New("secret detail"),
			expected: "An internal error occurred. Please try again later.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(EINVALID, "catalog.query", "invalid sort key: %s", "cheapest")

	var domainErr *Error
	if !errors.As(err, &domainErr) {
		t.Fatal("Errorf should return *Error")
	}

	if domainErr.Code != EINVALID {
		t.Errorf("Code = %q, want %q", domainErr.Code, EINVALID)
	}

	if domainErr.Op != "catalog.query" {
		t.Errorf("Op = %q, want %q", domainErr.Op, "catalog.query")
	}

	if domainErr.Message != "invalid sort key: cheapest" {
		t.Errorf("Message = %q, want %q", domainErr.Message, "invalid sort key: cheapest")
	}
}

func TestWrapError(t *testing.T) {
	t.Run("wraps non-nil error", func(t *testing.T) {
		underlying := errors.New("clock skew")
		err := WrapError(underlying, EINTERNAL, "checkout.submit", "failed to record order")

		var domainErr *Error
		if !errors.As(err, &domainErr) {
			t.Fatal("WrapError should return *Error")
		}

		if domainErr.Code != EINTERNAL {
			t.Errorf("Code = %q, want %q", domainErr.Code, EINTERNAL)
		}

		if !errors.Is(err, underlying) {
			t.Error("should wrap underlying error")
		}
	})

	t.Run("returns nil for nil error", func(t *testing.T) {
		if err := WrapError(nil, EINTERNAL, "test", "test"); err != nil {
			t.Errorf("WrapError(nil) should return nil, got %v", err)
		}
	})
}

func TestIsCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     string
		expected bool
	}{
		{
			name:     "matching code",
			err:      ErrCategoryNotFound,
			code:     ENOTFOUND,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      &Error{Code: EINVALID, Message: "test"},
			code:     ENOTFOUND,
			expected: false,
		},
		{
			name:     "non-domain error matches EINTERNAL",
			err:      errors.New("test"),
			code:     EINTERNAL,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCode(tt.err, tt.code); got != tt.expected {
				t.Errorf("IsCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single field error", func(t *testing.T) {
		err := NewValidationError("checkout.submit", "phone", "phone is required")

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatal("NewValidationError should return *ValidationError")
		}

		if ve.Op != "checkout.submit" {
			t.Errorf("Op = %q, want %q", ve.Op, "checkout.submit")
		}

		if msg, ok := ve.Fields["phone"]; !ok || msg != "phone is required" {
			t.Errorf("Fields[phone] = %q, want %q", msg, "phone is required")
		}

		expected := "checkout.submit: phone: phone is required"
		if ve.Error() != expected {
			t.Errorf("Error() = %q, want %q", ve.Error(), expected)
		}
	})

	t.Run("multiple field errors", func(t *testing.T) {
		err := NewValidationError("checkout.submit", "city", "city is required")
		err = AddFieldError(err, "region", "unknown region")

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatal("should be ValidationError")
		}

		if len(ve.Fields) != 2 {
			t.Errorf("Fields count = %d, want 2", len(ve.Fields))
		}
	})

	t.Run("add field to nil error", func(t *testing.T) {
		err := AddFieldError(nil, "address", "address is required")

		var ve *ValidationError
		if !errors.As(err, &ve) {
			t.Fatal("AddFieldError(nil) should return *ValidationError")
		}

		if len(ve.Fields) != 1 {
			t.Errorf("Fields count = %d, want 1", len(ve.Fields))
		}
	})
}

func TestIsValidationError(t *testing.T) {
	if !IsValidationError(NewValidationError("test", "field", "error")) {
		t.Error("expected true for ValidationError")
	}
	if IsValidationError(&Error{Code: EINVALID, Message: "test"}) {
		t.Error("expected false for domain Error")
	}
	if IsValidationError(nil) {
		t.Error("expected false for nil")
	}
}

func TestGetValidationFields(t *testing.T) {
	err := NewValidationError("test", "name", "required")
	fields := GetValidationFields(err)
	if fields == nil || fields["name"] != "required" {
		t.Errorf("fields = %v, want map with name=required", fields)
	}

	if GetValidationFields(errors.New("test")) != nil {
		t.Error("expected nil for non-validation error")
	}
}
