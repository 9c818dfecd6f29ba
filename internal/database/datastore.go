package database

import "context"

// DataStore defines the unified interface for all data operations.
// It is composed of the smaller entity interfaces; services depend on the
// narrowest one they need.
type DataStore interface {
	StudentRepository
	InstructorRepository
	CourseRepository
	EnrollmentRepository
	Backup(ctx context.Context, dest string) error
}

var _ DataStore = (*Repository)(nil)
