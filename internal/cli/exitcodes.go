package cli

import (
	"errors"

	"github.com/thenoetrevino/roster/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneral indicates a general error occurred.
	// Use for: Database errors, I/O errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitGeneral = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested record was not found.
	// Use for: Unknown student, instructor or course on show, update or roster.
	ExitNotFound = 3

	// ExitDataErr indicates the data set rejected the write.
	// Use for: Duplicate identifier codes, duplicate enrollments and
	// references to students, instructors or courses that do not exist.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty names, out of range or non-numeric ages, malformed
	// identifier codes or email addresses.
	ExitValidation = 5
)

// UsageError marks an error caused by how the command was invoked
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// ExitError is returned by a command whose error has already been shown
// to the user. Code is the process exit code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }
func (e *ExitError) Unwrap() error { return e.Err }

// ExitCodeFor maps an error to a process exit code
func ExitCodeFor(err error) int {
	var exitErr *ExitError
	var usageErr *UsageError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &exitErr):
		return exitErr.Code
	case errors.As(err, &usageErr):
		return ExitUsage
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrDuplicateKey),
		errors.Is(err, models.ErrDuplicateEnrollment),
		errors.Is(err, models.ErrReference):
		return ExitDataErr
	case errors.Is(err, models.ErrValidation):
		return ExitValidation
	default:
		return ExitGeneral
	}
}

// ErrorCode maps an error to the machine-readable code used in JSON output
func ErrorCode(err error) string {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return "USAGE_ERROR"
	}
	switch models.ErrorKind(err) {
	case "validation":
		return "VALIDATION_ERROR"
	case "duplicate_key":
		return "DUPLICATE_KEY"
	case "reference":
		return "REFERENCE_ERROR"
	case "not_found":
		return "NOT_FOUND"
	case "duplicate_enrollment":
		return "DUPLICATE_ENROLLMENT"
	default:
		return "INTERNAL_ERROR"
	}
}

// Suggestion returns a hint for fixing err, or "" when there is none
func Suggestion(err error) string {
	var refErr *models.ReferenceError
	if errors.As(err, &refErr) {
		switch refErr.Entity {
		case models.EntityStudent, models.EntityInstructor, models.EntityCourse:
			return "Create the " + refErr.Entity + " first, or check the code with: roster " + refErr.Entity + " list"
		default:
			return "Check that every code the command refers to exists"
		}
	}
	var usageErr *UsageError
	switch {
	case errors.As(err, &usageErr):
		return "Run the command with --help to see its flags"
	case errors.Is(err, models.ErrNotFound):
		return "List existing records with the list subcommand"
	case errors.Is(err, models.ErrDuplicateKey):
		return "Identifier codes are unique; pick another code or update the existing record"
	default:
		return ""
	}
}
