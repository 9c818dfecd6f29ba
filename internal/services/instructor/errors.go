package instructor

import "github.com/thenoetrevino/roster/internal/models"

// Instructor-related errors
var (
	// Validation errors
	ErrInvalidInstructorID = &models.ValidationError{Field: "id", Reason: "must be a positive number"}
	ErrNoChanges           = &models.ValidationError{Field: "fields", Reason: "at least one of name, age or email must be given"}
)
