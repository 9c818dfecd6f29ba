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
// Enrollment Operations
// ============================================================================

// EnrollmentRepo handles the many-to-many join between students and courses
type EnrollmentRepo struct {
	db *sql.DB
}

// Enroll links a student to a course. Both codes must resolve and the pair
// must not exist yet; a repeated enrollment is rejected, not ignored.
func (r *EnrollmentRepo) Enroll(ctx context.Context, studentID, courseID string) (*models.Enrollment, error) {
	enrollment := &models.Enrollment{
		StudentID:  studentID,
		CourseID:   courseID,
		EnrolledAt: now(),
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkEnrollmentRefs(ctx, tx, studentID, courseID); err != nil {
			return err
		}

		found, err := rowExists(ctx, tx,
			`SELECT 1 FROM enrollments WHERE student_id = ? AND course_id = ?`,
			studentID, courseID,
		)
		if err != nil {
			return fmt.Errorf("failed to check enrollment: %w", err)
		}
		if found {
			return &models.DuplicateEnrollmentError{StudentID: studentID, CourseID: courseID}
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO enrollments (student_id, course_id, enrolled_at) VALUES (?, ?, ?)`,
			studentID, courseID, formatTime(enrollment.EnrolledAt),
		)
		switch {
		case err == nil:
			return nil
		case isUniqueViolation(err):
			return &models.DuplicateEnrollmentError{StudentID: studentID, CourseID: courseID}
		case isForeignKeyViolation(err):
			if refErr := checkEnrollmentRefs(ctx, tx, studentID, courseID); refErr != nil {
				return refErr
			}
			return fmt.Errorf("failed to insert enrollment: %w", err)
		default:
			return fmt.Errorf("failed to insert enrollment: %w", err)
		}
	})
	if err != nil {
		return nil, err
	}

	return enrollment, nil
}

// checkEnrollmentRefs returns a ReferenceError naming the first of the
// student and the course that does not exist, or nil when both do
func checkEnrollmentRefs(ctx context.Context, tx *sql.Tx, studentID, courseID string) error {
	found, err := rowExists(ctx, tx, `SELECT 1 FROM students WHERE student_id = ?`, studentID)
	if err != nil {
		return fmt.Errorf("failed to check student %q: %w", studentID, err)
	}
	if !found {
		return &models.ReferenceError{Entity: models.EntityStudent, Key: studentID}
	}

	found, err = rowExists(ctx, tx, `SELECT 1 FROM courses WHERE course_id = ?`, courseID)
	if err != nil {
		return fmt.Errorf("failed to check course %q: %w", courseID, err)
	}
	if !found {
		return &models.ReferenceError{Entity: models.EntityCourse, Key: courseID}
	}
	return nil
}

// ListEnrollments retrieves every enrollment in insertion order
func (r *EnrollmentRepo) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT student_id, course_id, enrolled_at FROM enrollments ORDER BY rowid`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}
	defer rows.Close()

	enrollments := []*models.Enrollment{}
	for rows.Next() {
		e := &models.Enrollment{}
		var enrolledAt string
		if err := rows.Scan(&e.StudentID, &e.CourseID, &enrolledAt); err != nil {
			return nil, err
		}
		e.EnrolledAt = parseTime(enrolledAt)
		enrollments = append(enrollments, e)
	}

	return enrollments, rows.Err()
}

// GetCourseRoster retrieves the students enrolled in a course, in enrollment order
func (r *EnrollmentRepo) GetCourseRoster(ctx context.Context, courseID string) ([]*models.RosterEntry, error) {
	if err := r.requireRow(ctx, `SELECT 1 FROM courses WHERE course_id = ?`, courseID, models.EntityCourse); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT s.student_id, s.name, s.email, e.enrolled_at
		FROM enrollments e
		JOIN students s ON s.student_id = e.student_id
		WHERE e.course_id = ?
		ORDER BY e.rowid
	`, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get roster for course %q: %w", courseID, err)
	}
	defer rows.Close()

	roster := []*models.RosterEntry{}
	for rows.Next() {
		entry := &models.RosterEntry{}
		var enrolledAt string
		if err := rows.Scan(&entry.StudentID, &entry.Name, &entry.Email, &enrolledAt); err != nil {
			return nil, err
		}
		entry.EnrolledAt = parseTime(enrolledAt)
		roster = append(roster, entry)
	}

	return roster, rows.Err()
}

// GetCoursesForStudent retrieves the courses a student is enrolled in
func (r *EnrollmentRepo) GetCoursesForStudent(ctx context.Context, studentID string) ([]*models.Course, error) {
	if err := r.requireRow(ctx, `SELECT 1 FROM students WHERE student_id = ?`, studentID, models.EntityStudent); err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.course_id, c.name, c.instructor_id, c.created_at
		FROM enrollments e
		JOIN courses c ON c.course_id = e.course_id
		WHERE e.student_id = ?
		ORDER BY e.rowid
	`, studentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get courses for student %q: %w", studentID, err)
	}
	defer rows.Close()

	courses := []*models.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// CountEnrollments returns the number of stored enrollments
func (r *EnrollmentRepo) CountEnrollments(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM enrollments`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count enrollments: %w", err)
	}
	return count, nil
}

func (r *EnrollmentRepo) requireRow(ctx context.Context, query, key, entity string) error {
	var one int
	err := r.db.QueryRowContext(ctx, query, key).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.NotFoundError{Entity: entity, Key: strconv.Quote(key)}
	}
	if err != nil {
		return fmt.Errorf("failed to look up %s %q: %w", entity, key, err)
	}
	return nil
}
