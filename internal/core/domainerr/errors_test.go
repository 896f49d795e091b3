package domainerr

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew_UnwrapsToKind(t *testing.T) {
	t.Parallel()

	errRate := New(ErrValidation, "exchange: proposed rate exceeds max hourly rate")
	wrapped := fmt.Errorf("submit: %w", errRate)

	if !errors.Is(wrapped, ErrValidation) {
		t.Fatalf("expected wrapped error to be a validation error")
	}
	if !errors.Is(wrapped, errRate) {
		t.Fatalf("expected wrapped error to match its sentinel")
	}
	if errors.Is(wrapped, ErrConflict) {
		t.Fatalf("unexpected conflict classification")
	}
}

func TestTransitionError(t *testing.T) {
	t.Parallel()

	type status string
	err := NewTransitionError[status]("assignment", "completed", "active")

	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	var te *TransitionError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransitionError")
	}
	if te.From != "completed" || te.To != "active" {
		t.Fatalf("unexpected states: %+v", te)
	}
	if got := err.Error(); got != `assignment: invalid transition from "completed" to "active"` {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestAvailabilityError(t *testing.T) {
	t.Parallel()

	var err error = &AvailabilityError{EmployeeID: "emp-1", Kind: ConflictKindShift, ConflictingID: "shift-9"}
	if !errors.Is(err, ErrAvailability) {
		t.Fatalf("expected ErrAvailability")
	}
	if err.Error() != "employee emp-1 has a conflicting shift shift-9" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestIsRejection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"sentinel", New(ErrNotFound, "contract: not found"), true},
		{"wrapped transition", fmt.Errorf("approve: %w", NewTransitionError("timesheet", "draft", "employer_approved")), true},
		{"availability", &AvailabilityError{EmployeeID: "emp-1", Kind: ConflictKindTimeOff}, true},
		{"infrastructure", errors.New("dial tcp: connection refused"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsRejection(tt.err); got != tt.want {
				t.Fatalf("IsRejection(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
