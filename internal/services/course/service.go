// Package course validates course requests and resolves instructor
// assignment in front of the course repository.
package course

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

// Service defines all course-related business operations
type Service interface {
	// Read operations
	GetCourse(ctx context.Context, id int) (*models.Course, error)
	GetCourseByCode(ctx context.Context, courseID string) (*models.Course, error)
	ListCourses(ctx context.Context, opts models.ListOptions) ([]*models.CourseSummary, error)

	// Write operations
	CreateCourse(ctx context.Context, req CreateCourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, req UpdateCourseRequest) (*models.Course, error)
	AssignInstructor(ctx context.Context, courseID, instructorID string) (*models.Course, error)
}

// CreateCourseRequest encapsulates data for creating a course
type CreateCourseRequest struct {
	CourseID     string
	Name         string
	InstructorID *string // optional; nil or empty leaves the course unassigned
}

// UpdateCourseRequest encapsulates data for updating a course.
// Nil fields keep their stored value; ClearInstructor unassigns.
type UpdateCourseRequest struct {
	ID              int
	Name            *string
	InstructorID    *string
	ClearInstructor bool
}

// service implements Service interface
type service struct {
	repo    database.CourseRepository
	metrics *metrics.Recorder
}

// NewService creates a new course service. recorder may be nil.
func NewService(repo database.CourseRepository, recorder *metrics.Recorder) Service {
	return &service{
		repo:    repo,
		metrics: recorder,
	}
}

// GetCourse retrieves a course by generated ID
func (s *service) GetCourse(ctx context.Context, id int) (*models.Course, error) {
	if id <= 0 {
		return nil, ErrInvalidCourseID
	}
	return s.repo.GetCourseByID(ctx, id)
}

// GetCourseByCode retrieves a course by its course ID
func (s *service) GetCourseByCode(ctx context.Context, courseID string) (*models.Course, error) {
	courseID = strings.TrimSpace(courseID)
	if err := validation.Code("course_id", courseID); err != nil {
		return nil, err
	}
	return s.repo.GetCourseByCode(ctx, courseID)
}

// ListCourses retrieves courses with their instructor name and enrollment count
func (s *service) ListCourses(ctx context.Context, opts models.ListOptions) ([]*models.CourseSummary, error) {
	return s.repo.ListCourses(ctx, opts)
}

// CreateCourse creates a new course with validation
func (s *service) CreateCourse(ctx context.Context, req CreateCourseRequest) (course *models.Course, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityCourse, "create", start, err) }()

	req.CourseID = strings.TrimSpace(req.CourseID)
	req.Name = strings.TrimSpace(req.Name)
	req.InstructorID = normalizeCode(req.InstructorID)

	if err = validation.Name("name", req.Name); err != nil {
		return nil, err
	}
	if err = validation.Code("course_id", req.CourseID); err != nil {
		return nil, err
	}
	if req.InstructorID != nil {
		if err = validation.Code("instructor_id", *req.InstructorID); err != nil {
			return nil, err
		}
	}

	course, err = s.repo.CreateCourse(ctx, req.CourseID, req.Name, req.InstructorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	slog.Debug("course created", "id", course.ID, "course_id", course.CourseID, "assigned", course.HasInstructor())
	return course, nil
}

// UpdateCourse applies a partial update and returns the stored result
func (s *service) UpdateCourse(ctx context.Context, req UpdateCourseRequest) (course *models.Course, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityCourse, "update", start, err) }()

	if req.ID <= 0 {
		return nil, ErrInvalidCourseID
	}
	if req.Name == nil && req.InstructorID == nil && !req.ClearInstructor {
		return nil, ErrNoChanges
	}
	if req.InstructorID != nil && req.ClearInstructor {
		return nil, ErrConflictingUpdate
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err = validation.Name("name", name); err != nil {
			return nil, err
		}
		req.Name = &name
	}
	if req.InstructorID != nil {
		code := strings.TrimSpace(*req.InstructorID)
		if code == "" {
			return nil, ErrEmptyInstructorCode
		}
		if err = validation.Code("instructor_id", code); err != nil {
			return nil, err
		}
		req.InstructorID = &code
	}

	// Get existing course to fill in missing fields
	course, err = s.repo.GetCourseByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		course.Name = *req.Name
	}
	switch {
	case req.ClearInstructor:
		course.InstructorID = nil
	case req.InstructorID != nil:
		course.InstructorID = req.InstructorID
	}

	if err = s.repo.UpdateCourse(ctx, course.ID, course.Name, course.InstructorID); err != nil {
		return nil, fmt.Errorf("failed to update course: %w", err)
	}

	slog.Debug("course updated", "id", course.ID, "course_id", course.CourseID, "assigned", course.HasInstructor())
	return course, nil
}

// AssignInstructor sets the instructor of the course with the given course ID
func (s *service) AssignInstructor(ctx context.Context, courseID, instructorID string) (*models.Course, error) {
	course, err := s.GetCourseByCode(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return s.UpdateCourse(ctx, UpdateCourseRequest{
		ID:           course.ID,
		InstructorID: &instructorID,
	})
}

// normalizeCode trims an optional code and treats blank as absent
func normalizeCode(code *string) *string {
	if code == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*code)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
