package models

import (
	"errors"
	"fmt"
)

// Sentinel kinds. Every typed error below matches exactly one of these
// through errors.Is, so callers can branch on the kind without caring
// about the details.
var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrReference           = errors.New("unresolved reference")
	ErrNotFound            = errors.New("not found")
	ErrDuplicateEnrollment = errors.New("duplicate enrollment")
)

// ValidationError reports malformed input for a single field
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// DuplicateKeyError reports an identifier code that is already taken
type DuplicateKeyError struct {
	Entity string
	Key    string
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s %q already exists", e.Entity, e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// ReferenceError reports a reference to an entity that does not exist
type ReferenceError struct {
	Entity string
	Key    string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("referenced %s %q does not exist", e.Entity, e.Key)
}

func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// NotFoundError reports a lookup or update on an unknown entity.
// Key holds either the generated ID or the identifier code.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateEnrollmentError reports a student already enrolled in a course
type DuplicateEnrollmentError struct {
	StudentID string
	CourseID  string
}

func (e *DuplicateEnrollmentError) Error() string {
	return fmt.Sprintf("student %q is already enrolled in course %q", e.StudentID, e.CourseID)
}

func (e *DuplicateEnrollmentError) Is(target error) bool {
	return target == ErrDuplicateEnrollment
}

// ErrorKind returns a short stable name for the kind of err, or "error"
// when err is not one of the typed store errors. Used for metric labels
// and CLI error codes.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrDuplicateKey):
		return "duplicate_key"
	case errors.Is(err, ErrReference):
		return "reference"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrDuplicateEnrollment):
		return "duplicate_enrollment"
	default:
		return "error"
	}
}
