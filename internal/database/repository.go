package database

import (
	"context"
	"database/sql"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding; method
// names are unique across them so every operation is promoted directly.
type Repository struct {
	*StudentRepo
	*InstructorRepo
	*CourseRepo
	*EnrollmentRepo
	db *sql.DB
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		StudentRepo:    &StudentRepo{db: db},
		InstructorRepo: &InstructorRepo{db: db},
		CourseRepo:     &CourseRepo{db: db},
		EnrollmentRepo: &EnrollmentRepo{db: db},
		db:             db,
	}
}

// Backup writes a consistent copy of the database to dest
func (r *Repository) Backup(ctx context.Context, dest string) error {
	return Backup(ctx, r.db, dest)
}
