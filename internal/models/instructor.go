package models

import "time"

// Instructor is a member of staff who can be assigned to courses.
// InstructorID is the staff code and is unique among instructors.
type Instructor struct {
	ID           int       `json:"id"`
	InstructorID string    `json:"instructor_id"`
	Name         string    `json:"name"`
	Age          int       `json:"age"`
	Email        string    `json:"email,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetID returns the generated ID, used by quiet CLI output
func (i *Instructor) GetID() int {
	return i.ID
}
