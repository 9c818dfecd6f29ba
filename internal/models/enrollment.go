package models

import "time"

// Enrollment links a student to a course. The pair (StudentID, CourseID)
// is the key; both are identifier codes, not generated IDs.
type Enrollment struct {
	StudentID  string    `json:"student_id"`
	CourseID   string    `json:"course_id"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// RosterEntry is one student on a course roster
type RosterEntry struct {
	StudentID  string    `json:"student_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	EnrolledAt time.Time `json:"enrolled_at"`
}
