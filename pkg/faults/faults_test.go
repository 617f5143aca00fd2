package faults_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/JaimeStill/attest/pkg/faults"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name string
		err  *faults.Error
		want string
		code string
	}{
		{"not found", faults.NotFound("landlord", "ID1"), "landlord not found with identifier: ID1", "NOT_FOUND"},
		{"already exists", faults.AlreadyExists("tenant", "a@b.c"), "tenant with identifier a@b.c already exists", "ALREADY_EXISTS"},
		{"invalid without identifier", faults.InvalidInput("rating", "", "rating_value is required"), "invalid input for rating: rating_value is required", "INVALID_INPUT"},
		{"invalid with identifier", faults.InvalidInput("vehicle", "V1", "year must be at least 1886"), "invalid input for vehicle with identifier V1: year must be at least 1886", "INVALID_INPUT"},
		{"verification failed", faults.VerificationFailed("land document", "deed.pdf", "unreadable"), "verification failed for land document with identifier deed.pdf: unreadable", "VERIFICATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if got := tt.err.Code(); got != tt.code {
				t.Errorf("Code() = %q, want %q", got, tt.code)
			}
		})
	}
}

func TestMapHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", faults.NotFound("land", "S1"), http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("resolve: %w", faults.NotFound("land", "S1")), http.StatusNotFound},
		{"already exists", faults.AlreadyExists("land", "S1"), http.StatusBadRequest},
		{"invalid input", faults.InvalidInput("land", "", "x"), http.StatusBadRequest},
		{"verification failed", faults.VerificationFailed("land document", "", "x"), http.StatusUnprocessableEntity},
		{"outside taxonomy", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := faults.MapHTTPStatus(tt.err); got != tt.want {
				t.Errorf("MapHTTPStatus() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestErrorsIsKind(t *testing.T) {
	err := fmt.Errorf("create: %w", faults.AlreadyExists("landlord", "ID1"))

	if !errors.Is(err, faults.ErrAlreadyExists) {
		t.Error("wrapped error should match its kind")
	}
	if errors.Is(err, faults.ErrNotFound) {
		t.Error("wrapped error should not match another kind")
	}

	var fe *faults.Error
	if !errors.As(err, &fe) || fe.Entity != "landlord" || fe.Identifier != "ID1" {
		t.Errorf("errors.As = %+v", fe)
	}
}
