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
// Student Operations
// ============================================================================

const studentColumns = `id, student_id, name, age, email, created_at`

var studentList = listQuery{
	base:     `SELECT ` + studentColumns + ` FROM students`,
	idColumn: "id",
	sortable: map[string]string{
		"id":         "id",
		"name":       "name COLLATE NOCASE",
		"age":        "age",
		"student_id": "student_id",
	},
	search: []string{"name", "student_id"},
}

// StudentRepo handles data access for students
type StudentRepo struct {
	db *sql.DB
}

// CreateStudent inserts a new student. The uniqueness of studentID is checked
// inside the same transaction as the insert.
func (r *StudentRepo) CreateStudent(ctx context.Context, studentID, name string, age int, email string) (*models.Student, error) {
	student := &models.Student{
		StudentID: studentID,
		Name:      name,
		Age:       age,
		Email:     email,
		CreatedAt: now(),
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		taken, err := rowExists(ctx, tx, `SELECT 1 FROM students WHERE student_id = ?`, studentID)
		if err != nil {
			return fmt.Errorf("failed to check student %q: %w", studentID, err)
		}
		if taken {
			return &models.DuplicateKeyError{Entity: models.EntityStudent, Key: studentID}
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO students (student_id, name, age, email, created_at) VALUES (?, ?, ?, ?, ?)`,
			studentID, name, age, email, formatTime(student.CreatedAt),
		)
		if err != nil {
			if isUniqueViolation(err) {
				return &models.DuplicateKeyError{Entity: models.EntityStudent, Key: studentID}
			}
			return fmt.Errorf("failed to insert student: %w", err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		student.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentByID retrieves a student by generated ID
func (r *StudentRepo) GetStudentByID(ctx context.Context, id int) (*models.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE id = ?`, id)
	student, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: models.EntityStudent, Key: strconv.Itoa(id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student %d: %w", id, err)
	}
	return student, nil
}

// GetStudentByCode retrieves a student by school-issued student ID
func (r *StudentRepo) GetStudentByCode(ctx context.Context, studentID string) (*models.Student, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+studentColumns+` FROM students WHERE student_id = ?`, studentID)
	student, err := scanStudent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: models.EntityStudent, Key: strconv.Quote(studentID)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get student %q: %w", studentID, err)
	}
	return student, nil
}

// ListStudents retrieves students in insertion order unless opts asks otherwise
func (r *StudentRepo) ListStudents(ctx context.Context, opts models.ListOptions) ([]*models.Student, error) {
	query, args, err := studentList.build(opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	return students, rows.Err()
}

// UpdateStudent overwrites the mutable attributes of a student
func (r *StudentRepo) UpdateStudent(ctx context.Context, id int, name string, age int, email string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE students SET name = ?, age = ?, email = ? WHERE id = ?`,
		name, age, email, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update student %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return &models.NotFoundError{Entity: models.EntityStudent, Key: strconv.Itoa(id)}
	}
	return nil
}

// CountStudents returns the number of stored students
func (r *StudentRepo) CountStudents(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count students: %w", err)
	}
	return count, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStudent(row rowScanner) (*models.Student, error) {
	student := &models.Student{}
	var createdAt string
	if err := row.Scan(&student.ID, &student.StudentID, &student.Name, &student.Age, &student.Email, &createdAt); err != nil {
		return nil, err
	}
	student.CreatedAt = parseTime(createdAt)
	return student, nil
}
