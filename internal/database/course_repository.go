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
// Course Operations
// ============================================================================

const courseColumns = `id, course_id, name, instructor_id, created_at`

var courseList = listQuery{
	base: `
		SELECT c.id, c.course_id, c.name, c.instructor_id, c.created_at,
			COALESCE(i.name, ''),
			(SELECT COUNT(*) FROM enrollments e WHERE e.course_id = c.course_id)
		FROM courses c
		LEFT JOIN instructors i ON i.instructor_id = c.instructor_id`,
	idColumn: "c.id",
	sortable: map[string]string{
		"id":         "c.id",
		"name":       "c.name COLLATE NOCASE",
		"course_id":  "c.course_id",
		"instructor": "i.name COLLATE NOCASE",
	},
	search: []string{"c.name", "c.course_id"},
}

// CourseRepo handles data access for courses
type CourseRepo struct {
	db *sql.DB
}

// CreateCourse inserts a new course. A non-nil instructorID must name an
// existing instructor; both checks run in the insert's transaction.
func (r *CourseRepo) CreateCourse(ctx context.Context, courseID, name string, instructorID *string) (*models.Course, error) {
	course := &models.Course{
		CourseID:     courseID,
		Name:         name,
		InstructorID: nullStringToPtr(nullableString(instructorID)),
		CreatedAt:    now(),
	}

	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkInstructorRef(ctx, tx, instructorID); err != nil {
			return err
		}

		taken, err := rowExists(ctx, tx, `SELECT 1 FROM courses WHERE course_id = ?`, courseID)
		if err != nil {
			return fmt.Errorf("failed to check course %q: %w", courseID, err)
		}
		if taken {
			return &models.DuplicateKeyError{Entity: models.EntityCourse, Key: courseID}
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO courses (course_id, name, instructor_id, created_at) VALUES (?, ?, ?, ?)`,
			courseID, name, nullableString(instructorID), formatTime(course.CreatedAt),
		)
		if err != nil {
			return mapCourseWriteError(err, courseID, instructorID)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		course.ID = int(id)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourseByID retrieves a course by generated ID
func (r *CourseRepo) GetCourseByID(ctx context.Context, id int) (*models.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE id = ?`, id)
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: models.EntityCourse, Key: strconv.Itoa(id)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course %d: %w", id, err)
	}
	return course, nil
}

// GetCourseByCode retrieves a course by course code
func (r *CourseRepo) GetCourseByCode(ctx context.Context, courseID string) (*models.Course, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+courseColumns+` FROM courses WHERE course_id = ?`, courseID)
	course, err := scanCourse(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Entity: models.EntityCourse, Key: strconv.Quote(courseID)}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get course %q: %w", courseID, err)
	}
	return course, nil
}

// ListCourses retrieves courses with their instructor's name and enrollment count
func (r *CourseRepo) ListCourses(ctx context.Context, opts models.ListOptions) ([]*models.CourseSummary, error) {
	query, args, err := courseList.build(opts)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list courses: %w", err)
	}
	defer rows.Close()

	courses := []*models.CourseSummary{}
	for rows.Next() {
		summary := &models.CourseSummary{}
		var instructorID sql.NullString
		var createdAt string
		if err := rows.Scan(
			&summary.ID, &summary.CourseID, &summary.Name, &instructorID, &createdAt,
			&summary.InstructorName, &summary.EnrolledCount,
		); err != nil {
			return nil, err
		}
		summary.InstructorID = nullStringToPtr(instructorID)
		summary.CreatedAt = parseTime(createdAt)
		courses = append(courses, summary)
	}

	return courses, rows.Err()
}

// UpdateCourse overwrites a course's name and instructor reference.
// A nil instructorID unassigns the instructor.
func (r *CourseRepo) UpdateCourse(ctx context.Context, id int, name string, instructorID *string) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkInstructorRef(ctx, tx, instructorID); err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`UPDATE courses SET name = ?, instructor_id = ? WHERE id = ?`,
			name, nullableString(instructorID), id,
		)
		if err != nil {
			return mapCourseWriteError(err, strconv.Itoa(id), instructorID)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return &models.NotFoundError{Entity: models.EntityCourse, Key: strconv.Itoa(id)}
		}
		return nil
	})
}

// CountCourses returns the number of stored courses
func (r *CourseRepo) CountCourses(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count courses: %w", err)
	}
	return count, nil
}

func checkInstructorRef(ctx context.Context, tx *sql.Tx, instructorID *string) error {
	if instructorID == nil || *instructorID == "" {
		return nil
	}
	found, err := rowExists(ctx, tx, `SELECT 1 FROM instructors WHERE instructor_id = ?`, *instructorID)
	if err != nil {
		return fmt.Errorf("failed to check instructor %q: %w", *instructorID, err)
	}
	if !found {
		return &models.ReferenceError{Entity: models.EntityInstructor, Key: *instructorID}
	}
	return nil
}

// mapCourseWriteError turns constraint failures the explicit checks should
// already have caught into the matching typed errors
func mapCourseWriteError(err error, courseKey string, instructorID *string) error {
	switch {
	case isUniqueViolation(err):
		return &models.DuplicateKeyError{Entity: models.EntityCourse, Key: courseKey}
	case isForeignKeyViolation(err) && instructorID != nil:
		return &models.ReferenceError{Entity: models.EntityInstructor, Key: *instructorID}
	default:
		return fmt.Errorf("failed to write course %s: %w", courseKey, err)
	}
}

func scanCourse(row rowScanner) (*models.Course, error) {
	course := &models.Course{}
	var instructorID sql.NullString
	var createdAt string
	if err := row.Scan(&course.ID, &course.CourseID, &course.Name, &instructorID, &createdAt); err != nil {
		return nil, err
	}
	course.InstructorID = nullStringToPtr(instructorID)
	course.CreatedAt = parseTime(createdAt)
	return course, nil
}
