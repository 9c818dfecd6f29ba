// Package enrollment manages the many-to-many link between students and
// courses. Both sides are addressed by identifier code.
package enrollment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/metrics"
	"github.com/thenoetrevino/roster/internal/models"
	"github.com/thenoetrevino/roster/internal/validation"
)

// Service defines all enrollment-related business operations
type Service interface {
	// Read operations
	ListEnrollments(ctx context.Context) ([]*models.Enrollment, error)
	GetCourseRoster(ctx context.Context, courseID string) ([]*models.RosterEntry, error)
	GetCoursesForStudent(ctx context.Context, studentID string) ([]*models.Course, error)

	// Write operations
	Enroll(ctx context.Context, req EnrollRequest) (*models.Enrollment, error)
}

// EnrollRequest encapsulates data for enrolling a student in a course
type EnrollRequest struct {
	StudentID string
	CourseID  string
}

// service implements Service interface
type service struct {
	repo    database.EnrollmentRepository
	metrics *metrics.Recorder
}

// NewService creates a new enrollment service. recorder may be nil.
func NewService(repo database.EnrollmentRepository, recorder *metrics.Recorder) Service {
	return &service{
		repo:    repo,
		metrics: recorder,
	}
}

// ListEnrollments retrieves every enrollment in insertion order
func (s *service) ListEnrollments(ctx context.Context) ([]*models.Enrollment, error) {
	return s.repo.ListEnrollments(ctx)
}

// GetCourseRoster retrieves the students enrolled in a course
func (s *service) GetCourseRoster(ctx context.Context, courseID string) ([]*models.RosterEntry, error) {
	courseID = strings.TrimSpace(courseID)
	if courseID == "" {
		return nil, ErrMissingCourseID
	}
	return s.repo.GetCourseRoster(ctx, courseID)
}

// GetCoursesForStudent retrieves the courses a student is enrolled in
func (s *service) GetCoursesForStudent(ctx context.Context, studentID string) ([]*models.Course, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, ErrMissingStudentID
	}
	return s.repo.GetCoursesForStudent(ctx, studentID)
}

// Enroll enrolls a student in a course
func (s *service) Enroll(ctx context.Context, req EnrollRequest) (enrollment *models.Enrollment, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityEnrollment, "create", start, err) }()

	req.StudentID = strings.TrimSpace(req.StudentID)
	req.CourseID = strings.TrimSpace(req.CourseID)

	if req.StudentID == "" {
		return nil, ErrMissingStudentID
	}
	if req.CourseID == "" {
		return nil, ErrMissingCourseID
	}
	if err = validation.Code("student_id", req.StudentID); err != nil {
		return nil, err
	}
	if err = validation.Code("course_id", req.CourseID); err != nil {
		return nil, err
	}

	enrollment, err = s.repo.Enroll(ctx, req.StudentID, req.CourseID)
	if err != nil {
		return nil, fmt.Errorf("failed to enroll %s in %s: %w", req.StudentID, req.CourseID, err)
	}

	slog.Debug("student enrolled", "student_id", enrollment.StudentID, "course_id", enrollment.CourseID)
	return enrollment, nil
}
