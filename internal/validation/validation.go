// Package validation holds the field rules shared by the student,
// instructor and course services. Every failure is a *models.ValidationError.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/thenoetrevino/roster/internal/models"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Name checks a display name. The caller stores the trimmed value.
func Name(field, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &models.ValidationError{Field: field, Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(name) > models.MaxNameLength {
		return &models.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("cannot exceed %d characters", models.MaxNameLength),
		}
	}
	return nil
}

// Age checks that age is within the accepted range
func Age(age int) error {
	if age < models.MinAge || age > models.MaxAge {
		return &models.ValidationError{
			Field:  "age",
			Reason: fmt.Sprintf("must be between %d and %d", models.MinAge, models.MaxAge),
		}
	}
	return nil
}

// ParseAge converts user input to an age, rejecting non-numeric values
func ParseAge(raw string) (int, error) {
	age, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, &models.ValidationError{Field: "age", Reason: fmt.Sprintf("%q is not a whole number", raw)}
	}
	if err := Age(age); err != nil {
		return 0, err
	}
	return age, nil
}

// Code checks an identifier code such as a student ID or course ID
func Code(field, code string) error {
	if code == "" {
		return &models.ValidationError{Field: field, Reason: "cannot be empty"}
	}
	if utf8.RuneCountInString(code) > models.MaxCodeLength {
		return &models.ValidationError{
			Field:  field,
			Reason: fmt.Sprintf("cannot exceed %d characters", models.MaxCodeLength),
		}
	}
	if strings.IndexFunc(code, unicode.IsSpace) >= 0 {
		return &models.ValidationError{Field: field, Reason: "cannot contain whitespace"}
	}
	return nil
}

// Email checks an optional email address; empty is accepted
func Email(email string) error {
	if email == "" {
		return nil
	}
	if !emailRegex.MatchString(email) {
		return &models.ValidationError{Field: "email", Reason: fmt.Sprintf("%q is not a valid address", email)}
	}
	return nil
}
