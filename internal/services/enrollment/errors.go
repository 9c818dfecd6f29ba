package enrollment

import "github.com/thenoetrevino/roster/internal/models"

// Enrollment-related errors
var (
	// Validation errors
	ErrMissingStudentID = &models.ValidationError{Field: "student_id", Reason: "cannot be empty"}
	ErrMissingCourseID  = &models.ValidationError{Field: "course_id", Reason: "cannot be empty"}
)
