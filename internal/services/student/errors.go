package student

import "github.com/thenoetrevino/roster/internal/models"

// Student-related errors
var (
	// Validation errors
	ErrInvalidStudentID = &models.ValidationError{Field: "id", Reason: "must be a positive number"}
	ErrNoChanges        = &models.ValidationError{Field: "fields", Reason: "at least one of name, age or email must be given"}
)
