package errors

import (
	"errors"
	"strings"
	"testing"
)

// TestNewCLIError creates and validates a CLI error
func TestNewCLIError(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewCLIError(ErrorTypeValidation, "Test error", cause)

	if err == nil {
		t.Fatal("NewCLIError returned nil")
	}
	if err.Type != ErrorTypeValidation {
		t.Errorf("Expected type %s, got %s", ErrorTypeValidation, err.Type)
	}
	if err.Message != "Test error" {
		t.Errorf("Expected message 'Test error', got '%s'", err.Message)
	}
	if err.Cause != cause {
		t.Error("Cause not set correctly")
	}
}

// TestWithSuggestion adds suggestion to error
func TestWithSuggestion(t *testing.T) {
	err := NewCLIError(ErrorTypeValidation, "Test", nil)
	suggestion := "Try something else"

	result := err.WithSuggestion(suggestion)

	if !result.HasSuggestion() {
		t.Error("HasSuggestion returned false")
	}
	if result.Suggestion != suggestion {
		t.Errorf("Expected suggestion '%s', got '%s'", suggestion, result.Suggestion)
	}
}

// TestUnauthenticatedError suggests logging in
func TestUnauthenticatedError(t *testing.T) {
	err := UnauthenticatedError()

	if err.Type != ErrorTypeUnauthenticated {
		t.Errorf("Expected unauthenticated type, got %s", err.Type)
	}
	if !strings.Contains(err.Suggestion, "quill auth login") {
		t.Errorf("Expected login suggestion, got '%s'", err.Suggestion)
	}
}

// TestIsConflictByType matches typed conflict errors
func TestIsConflictByType(t *testing.T) {
	err := ConflictError("duplicate state")
	if !IsConflict(err) {
		t.Error("Typed conflict error not detected")
	}
}

// TestIsConflictByMessage matches duplicate-state rejections by text
func TestIsConflictByMessage(t *testing.T) {
	tests := []struct {
		message  string
		conflict bool
	}{
		{"You have already liked this post.", true},
		{"You are already following this blogger.", true},
		{"Already reblogged", true},
		{"Post not found.", false},
		{"Bad credentials", false},
	}

	for _, tt := range tests {
		err := errors.New(tt.message)
		if IsConflict(err) != tt.conflict {
			t.Errorf("IsConflict(%q): expected %v", tt.message, tt.conflict)
		}
	}
}

// TestIsConflictNil handles nil
func TestIsConflictNil(t *testing.T) {
	if IsConflict(nil) {
		t.Error("IsConflict(nil) should be false")
	}
}

// TestCategorizeError maps raw errors onto the taxonomy
func TestCategorizeError(t *testing.T) {
	tests := []struct {
		message string
		want    ErrorType
	}{
		{"connection refused", ErrorTypeNetwork},
		{"request timeout", ErrorTypeTimeout},
		{"401 unauthorized", ErrorTypeAuth},
		{"403 forbidden", ErrorTypeForbidden},
		{"resource not found", ErrorTypeNotFound},
		{"409 already exists", ErrorTypeConflict},
		{"500 server error", ErrorTypeServer},
		{"something odd", ErrorTypeUnknown},
	}

	for _, tt := range tests {
		result := CategorizeError(errors.New(tt.message))
		if result.Type != tt.want {
			t.Errorf("CategorizeError(%q): expected %s, got %s", tt.message, tt.want, result.Type)
		}
	}
}

// TestCategorizeErrorPassthrough keeps existing CLI errors as-is
func TestCategorizeErrorPassthrough(t *testing.T) {
	original := SessionExpiredError()
	result := CategorizeError(original)

	if result != original {
		t.Error("CLIError should pass through CategorizeError unchanged")
	}
}

// TestFormatError includes type and suggestion
func TestFormatError(t *testing.T) {
	msg := FormatError(UnauthenticatedError())

	if !strings.Contains(msg, "unauthenticated") {
		t.Errorf("Formatted error missing type: %s", msg)
	}
	if !strings.Contains(msg, "Suggestion:") {
		t.Errorf("Formatted error missing suggestion: %s", msg)
	}
}

// TestFormatErrorNil handles nil
func TestFormatErrorNil(t *testing.T) {
	if FormatError(nil) != "" {
		t.Error("FormatError(nil) should be empty")
	}
}

// TestUnwrap exposes the cause for errors.Is/As
func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewCLIError(ErrorTypeServer, "wrapper", cause)

	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the cause through Unwrap")
	}
}
