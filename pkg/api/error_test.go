package api

import (
	"errors"
	"testing"
)

func TestAPIErrorClassification(t *testing.T) {
	tests := []struct {
		status  int
		checker func(error) bool
		name    string
	}{
		{401, IsUnauthorized, "unauthorized"},
		{403, IsForbidden, "forbidden"},
		{404, IsNotFound, "not found"},
		{409, IsConflict, "conflict"},
	}

	for _, tt := range tests {
		err := &APIError{Message: "x", StatusCode: tt.status}
		if !tt.checker(err) {
			t.Errorf("Status %d not classified as %s", tt.status, tt.name)
		}
	}
}

func TestAPIErrorClassificationRejectsOtherErrors(t *testing.T) {
	plain := errors.New("plain error")

	if IsUnauthorized(plain) || IsForbidden(plain) || IsNotFound(plain) || IsConflict(plain) {
		t.Error("Plain errors must not match any status classification")
	}

	wrongStatus := &APIError{Message: "x", StatusCode: 500}
	if IsConflict(wrongStatus) {
		t.Error("500 must not classify as conflict")
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{Message: "Post not found.", StatusCode: 404}
	want := "[404] Post not found."
	if err.Error() != want {
		t.Errorf("Expected %q, got %q", want, err.Error())
	}
}
