package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// Instructor Operations
// ============================================================================

const instructorColumns = `id, instructor_id, name, age, email, created_at`

var instructorList = listQuery{
	base:     `SELECT ` + instructorColumns + ` FROM instructors`,
	idColumn: "id",
	sortable: map[string]string{
		"id":            "id",
		"name":          "name COLLATE NOCASE",
		"age":           "age",
		"instructor_id": "instructor_id",
	},
	search: []string{"name", "instructor_id"},
}

// InstructorRepo handles data access for instructors
type InstructorRepo struct {
	db *sql.DB
}

// CreateInstructor inserts a new instructor. The uniqueness of instructorID is
// checked inside the same transaction as the insert.
func (r *InstructorRepo) CreateInstructor(ctx context.Context, instructorID, name string, age int, email string) (*models.Instructor, error) {
	instructor := &models.Instructor{
		InstructorID: instructorID,
		Name:         name,
		Age:          age,
		Email:        email,
		CreatedAt:    now(),
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		taken, err := rowExists(ctx, tx, `SELECT 1 FROM instructors WHERE instructor_id = ?`, instructorID)
		if err != nil {
			return fmt.Errorf("failed to check instructor %q: %w", instructorID, err)
		}
		if taken {
			return &models.DuplicateKeyError{Entity: models.EntityInstructor, Key: instructorID}
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO instructors (instructor_id, name, age, email, created_at) VALUES (?, ?, ?, ?, ?)`,
			instructorID, name, age, email, formatTime(instructor.CreatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &models.DuplicateKeyError{Entity: models.EntityInstructor, Key: instructorID}
			}
			return fmt.Errorf("failed to insert instructor: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		instructor.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return instructor, nil
}

// GetInstructorByID retrieves an instructor by generated ID
func (r *InstructorRepo) GetInstructorByID(ctx context.Context, id int) (*models.Instructor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+instructorColumns+` FROM instructors WHERE id = ?`, id)
	instructor, err := scanInstructor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: models.EntityInstructor, Key: strconv.Itoa(id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instructor %d: %w", id, err)
	}
	return instructor, nil
}

// GetInstructorByCode retrieves an instructor by staff code
func (r *InstructorRepo) GetInstructorByCode(ctx context.Context, instructorID string) (*models.Instructor, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+instructorColumns+` FROM instructors WHERE instructor_id = ?`, instructorID)
	instructor, err := scanInstructor(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: models.EntityInstructor, Key: strconv.Quote(instructorID)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instructor %q: %w", instructorID, err)
	}
	return instructor, nil
}

// ListInstructors retrieves instructors in insertion order unless opts asks otherwise
func (r *InstructorRepo) ListInstructors(ctx context.Context, opts models.ListOptions) ([]*models.Instructor, error) {
	query, args, err := instructorList.build(opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list instructors: %w", err)
	}
	defer rows.Close()

	instructors := []*models.Instructor{}
	for rows.Next() {
		instructor, err := scanInstructor(rows)
		if err != nil {
			return nil, err
		}
		instructors = append(instructors, instructor)
	}

	return instructors, rows.Err()
}

// UpdateInstructor overwrites the mutable attributes of an instructor
func (r *InstructorRepo) UpdateInstructor(ctx context.Context, id int, name string, age int, email string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE instructors SET name = ?, age = ?, email = ? WHERE id = ?`,
		name, age, email, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update instructor %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: models.EntityInstructor, Key: strconv.Itoa(id)}
	}
	return nil
}

// CountInstructors returns the number of stored instructors
func (r *InstructorRepo) CountInstructors(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM instructors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count instructors: %w", err)
	}
	return count, nil
}

func scanInstructor(row rowScanner) (*models.Instructor, error) {
	instructor := &models.Instructor{}
	var createdAt string
	if err := row.Scan(&instructor.ID, &instructor.InstructorID, &instructor.Name, &instructor.Age, &instructor.Email, &createdAt); err != nil {
		return nil, err
	}
	instructor.CreatedAt = parseTime(createdAt)
	return instructor, nil
}
