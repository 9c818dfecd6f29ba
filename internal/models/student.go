package models

import "time"

// Student is a person enrolled at the school.
// ID is generated by the database; StudentID is the school-issued code
// (e.g. "S1001") and is unique among students.
type Student struct {
	ID        int       `json:"id"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the generated ID, used by quiet CLI output
func (s *Student) GetID() int {
	return s.ID
}
