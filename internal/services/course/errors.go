package course

import "github.com/thenoetrevino/roster/internal/models"

// Course-related errors
var (
	// Validation errors
	ErrInvalidCourseID     = &models.ValidationError{Field: "id", Reason: "must be a positive number"}
	ErrNoChanges           = &models.ValidationError{Field: "fields", Reason: "at least one of name or instructor must be given"}
	ErrConflictingUpdate   = &models.ValidationError{Field: "instructor_id", Reason: "cannot both set and clear the instructor"}
	ErrEmptyInstructorCode = &models.ValidationError{Field: "instructor_id", Reason: "cannot be empty"}
)
