package models

import (
	"errors"
	"fmt"
	"testing"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_MatchSentinelKinds(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"validation", &ValidationError{Field: "age", Reason: "must be a number"}, ErrValidation},
		{"duplicate key", &DuplicateKeyError{Entity: EntityStudent, Key: "S1"}, ErrDuplicateKey},
		{"reference", &ReferenceError{Entity: EntityInstructor, Key: "INS1"}, ErrReference},
		{"not found", &NotFoundError{Entity: EntityStudent, Key: "42"}, ErrNotFound},
		{"duplicate enrollment", &DuplicateEnrollmentError{StudentID: "S1", CourseID: "CS101"}, ErrDuplicateEnrollment},
	}

	sentinels := []error{ErrValidation, ErrDuplicateKey, ErrReference, ErrNotFound, ErrDuplicateEnrollment}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("failed to do thing: %w", tt.err)
			for _, s := range sentinels {
				got := errors.Is(wrapped, s)
				want := s == tt.sentinel
				if got != want {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", wrapped, s, got, want)
				}
			}
		})
	}
}

func TestErrors_As(t *testing.T) {
	err := fmt.Errorf("create course: %w", &ReferenceError{Entity: EntityInstructor, Key: "INS_NOT_EXIST"})

	var refErr *ReferenceError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceError in chain, got %v", err)
	}
	if refErr.Key != "INS_NOT_EXIST" {
		t.Errorf("expected key INS_NOT_EXIST, got %s", refErr.Key)
	}
}

func TestErrors_Messages(t *testing.T) {
	tests := []struct {
		err             error
		expectedMessage string
	}{
		{&ValidationError{Field: "name", Reason: "cannot be empty"}, "invalid name: cannot be empty"},
		{&DuplicateKeyError{Entity: EntityCourse, Key: "CS101"}, `course "CS101" already exists`},
		{&ReferenceError{Entity: EntityStudent, Key: "S9"}, `referenced student "S9" does not exist`},
		{&NotFoundError{Entity: EntityInstructor, Key: "7"}, "instructor 7 not found"},
		{&DuplicateEnrollmentError{StudentID: "S1", CourseID: "CS101"}, `student "S1" is already enrolled in course "CS101"`},
	}

	for _, tt := range tests {
		if tt.err.Error() != tt.expectedMessage {
			t.Errorf("Expected error message %q, got %q", tt.expectedMessage, tt.err.Error())
		}
	}
}

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, "ok"},
		{&ValidationError{Field: "age"}, "validation"},
		{&DuplicateKeyError{}, "duplicate_key"},
		{&ReferenceError{}, "reference"},
		{&NotFoundError{}, "not_found"},
		{&DuplicateEnrollmentError{}, "duplicate_enrollment"},
		{errors.New("disk full"), "error"},
	}

	for _, tt := range tests {
		if got := ErrorKind(tt.err); got != tt.want {
			t.Errorf("ErrorKind(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}

// ============================================================================
// Course Tests
// ============================================================================

func TestCourse_HasInstructor(t *testing.T) {
	empty := ""
	ins := "INS1"

	tests := []struct {
		name string
		ref  *string
		want bool
	}{
		{"nil reference", nil, false},
		{"empty reference", &empty, false},
		{"assigned", &ins, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Course{InstructorID: tt.ref}
			if got := c.HasInstructor(); got != tt.want {
				t.Errorf("HasInstructor() = %v, want %v", got, tt.want)
			}
		})
	}
}
