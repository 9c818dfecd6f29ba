// Package student validates student requests in front of the student
// repository.
package student

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

// Service defines all student-related business operations
type Service interface {
	// Read operations
	GetStudent(ctx context.Context, id int) (*models.Student, error)
	GetStudentByCode(ctx context.Context, studentID string) (*models.Student, error)
	ListStudents(ctx context.Context, opts models.ListOptions) ([]*models.Student, error)

	// Write operations
	CreateStudent(ctx context.Context, req CreateStudentRequest) (*models.Student, error)
	UpdateStudent(ctx context.Context, req UpdateStudentRequest) (*models.Student, error)
}

// CreateStudentRequest encapsulates data for creating a student
type CreateStudentRequest struct {
	StudentID string
	Name      string
	Age       int
	Email     string // optional
}

// UpdateStudentRequest encapsulates data for updating a student.
// Nil fields keep their stored value.
type UpdateStudentRequest struct {
	ID    int
	Name  *string
	Age   *int
	Email *string
}

// service implements Service interface
type service struct {
	repo    database.StudentRepository
	metrics *metrics.Recorder
}

// NewService creates a new student service. recorder may be nil.
func NewService(repo database.StudentRepository, recorder *metrics.Recorder) Service {
	return &service{
		repo:    repo,
		metrics: recorder,
	}
}

// GetStudent retrieves a student by generated ID
func (s *service) GetStudent(ctx context.Context, id int) (*models.Student, error) {
	if id <= 0 {
		return nil, ErrInvalidStudentID
	}
	return s.repo.GetStudentByID(ctx, id)
}

// GetStudentByCode retrieves a student by school-issued student ID
func (s *service) GetStudentByCode(ctx context.Context, studentID string) (*models.Student, error) {
	studentID = strings.TrimSpace(studentID)
	if err := validation.Code("student_id", studentID); err != nil {
		return nil, err
	}
	return s.repo.GetStudentByCode(ctx, studentID)
}

// ListStudents retrieves students in insertion order unless opts says otherwise
func (s *service) ListStudents(ctx context.Context, opts models.ListOptions) ([]*models.Student, error) {
	return s.repo.ListStudents(ctx, opts)
}

// CreateStudent creates a new student with validation
func (s *service) CreateStudent(ctx context.Context, req CreateStudentRequest) (student *models.Student, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityStudent, "create", start, err) }()

	req.StudentID = strings.TrimSpace(req.StudentID)
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	if err = validateCreateStudent(req); err != nil {
		return nil, err
	}

	student, err = s.repo.CreateStudent(ctx, req.StudentID, req.Name, req.Age, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	slog.Debug("student created", "id", student.ID, "student_id", student.StudentID)
	return student, nil
}

// UpdateStudent applies a partial update and returns the stored result
func (s *service) UpdateStudent(ctx context.Context, req UpdateStudentRequest) (student *models.Student, err error) {
	start := time.Now()
	defer func() { s.metrics.Observe(models.EntityStudent, "update", start, err) }()

	if req.ID <= 0 {
		return nil, ErrInvalidStudentID
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

	// Get existing student to fill in missing fields
	student, err = s.repo.GetStudentByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Age != nil {
		student.Age = *req.Age
	}
	if req.Email != nil {
		student.Email = *req.Email
	}

	if err = s.repo.UpdateStudent(ctx, student.ID, student.Name, student.Age, student.Email); err != nil {
		return nil, fmt.Errorf("failed to update student: %w", err)
	}

	slog.Debug("student updated", "id", student.ID, "student_id", student.StudentID)
	return student, nil
}

// validateCreateStudent validates a CreateStudentRequest
func validateCreateStudent(req CreateStudentRequest) error {
	if err := validation.Name("name", req.Name); err != nil {
		return err
	}
	if err := validation.Age(req.Age); err != nil {
		return err
	}
	if err := validation.Code("student_id", req.StudentID); err != nil {
		return err
	}
	return validation.Email(req.Email)
}
