package models

import "time"

// Course is a unit of teaching. InstructorID references Instructor.InstructorID
// and is nil while no instructor is assigned.
type Course struct {
	ID           int       `json:"id"`
	CourseID     string    `json:"course_id"`
	Name         string    `json:"name"`
	InstructorID *string   `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// GetID returns the generated ID, used by quiet CLI output
func (c *Course) GetID() int {
	return c.ID
}

// HasInstructor reports whether an instructor is assigned
func (c *Course) HasInstructor() bool {
	return c.InstructorID != nil && *c.InstructorID != ""
}

// CourseSummary is a course joined with its instructor's name
type CourseSummary struct {
	Course
	InstructorName string `json:"instructor_name,omitempty"`
	EnrolledCount  int    `json:"enrolled_count"`
}
