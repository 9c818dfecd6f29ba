// Package instructor validates instructor requests in front of the instructor
// repository.
package instructor

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

// Service defines all instructor-related business operations
type Service interface {
	// Read operations
	GetInstructor(ctx context.Context, id int) (*models.Instructor, error)
	GetInstructorByCode(ctx context.Context, instructorID string) (*models.Instructor, error)
	ListInstructors(ctx context.Context, opts models.ListOptions) ([]*models.Instructor, error)

	// Write operations
	CreateInstructor(ctx context.Context, req CreateInstructorRequest) (*models.Instructor, error)
	UpdateInstructor(ctx context.Context, req UpdateInstructorRequest) (*models.Instructor, error)
}

// CreateInstructorRequest encapsulates data for creating an instructor
type CreateInstructorRequest struct {
	InstructorID string
	Name         string
	Age          int
	Email        string // optional
}

// UpdateInstructorRequest encapsulates data for updating an instructor.
// Nil fields keep their stored value.
type UpdateInstructorRequest struct {
	ID    int
	Name  *string
	Age   *int
	Email *string
}

// service implements Service interface
type service struct {
	repo    database.InstructorRepository
	metrics *metrics.Recorder
}

// NewService creates a new instructor service. recorder may be nil.
func NewService(repo database.InstructorRepository, recorder *metrics.Recorder) Service {
	return &service{
		repo:    repo,
		metrics: recorder,
	}
}

// GetInstructor retrieves an instructor by generated ID
func (s *service) GetInstructor(ctx context.Context, id int) (*models.Instructor, error) {
	if id <= 0 {
		return nil, ErrInvalidInstructorID
	}
	return s.repo.GetInstructorByID(ctx, id)
}

// GetInstructorByCode retrieves an instructor by staff-issued instructor ID
func (s *service) GetInstructorByCode(ctx context.Context, instructorID string) (*models.Instructor, error) {
	instructorID = strings.TrimSpace(instructorID)
	if err := validation.Code("instructor_id", instructorID); err != nil {
		return nil, err
	}
	return s.repo.GetInstructorByCode(ctx, instructorID)
}

// ListInstructors retrieves instructors in insertion order unless opts says otherwise
func (s *service) ListInstructors(ctx context.Context, opts models.ListOptions) ([]*models.Instructor, error) {
	return s.repo.ListInstructors(ctx, opts)
}

// CreateInstructor creates a new instructor with validation
func (s *service) CreateInstructor(ctx context.Context, req CreateInstructorRequest) (instructor *models.Instructor, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityInstructor, "create", start, err) }()

	req.InstructorID = strings.TrimSpace(req.InstructorID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err = validateCreateInstructor(req); err != nil {
		return nil, err
	}

	instructor, err = s.repo.CreateInstructor(ctx, req.InstructorID, req.Name, req.Age, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create instructor: %w", err)
	}

	slog.Debug("instructor created", "id", instructor.ID, "instructor_id", instructor.InstructorID)
	return instructor, nil
}

// UpdateInstructor applies a partial update and returns the stored result
func (s *service) UpdateInstructor(ctx context.Context, req UpdateInstructorRequest) (instructor *models.Instructor, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityInstructor, "update", start, err) }()

	if req.ID <= 0 {
		return nil, ErrInvalidInstructorID
	}
	if req.Name == nil && req.Age == nil && req.Email == nil {
		return nil, ErrNoChanges
	}

	// Validate fields if provided
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if err = validation.Name("name", name); err != nil {
			return nil, err
		}
		req.Name = &name
	}
	if req.Age != nil {
		if err = validation.Age(*req.Age); err != nil {
			return nil, err
		}
	}
	if req.Email != nil {
		email := strings.TrimSpace(*req.Email)
		if err = validation.Email(email); err != nil {
			return nil, err
		}
		req.Email = &email
	}

	// Get existing instructor to fill in missing fields
	instructor, err = s.repo.GetInstructorByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		instructor.Name = *req.Name
	}
	if req.Age != nil {
		instructor.Age = *req.Age
	}
	if req.Email != nil {
		instructor.Email = *req.Email
	}

	if err = s.repo.UpdateInstructor(ctx, instructor.ID, instructor.Name, instructor.Age, instructor.Email); err != nil {
		return nil, fmt.Errorf("failed to update instructor: %w", err)
	}

	slog.Debug("instructor updated", "id", instructor.ID, "instructor_id", instructor.InstructorID)
	return instructor, nil
}

// validateCreateInstructor validates a CreateInstructorRequest
func validateCreateInstructor(req CreateInstructorRequest) error {
	if err := validation.Name("name", req.Name); err != nil {
		return err
	}
	if err := validation.Age(req.Age); err != nil {
		return err
	}
	if err := validation.Code("instructor_id", req.InstructorID); err != nil {
		return err
	}
	return validation.Email(req.Email)
}
