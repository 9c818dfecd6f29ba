package student

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/thenoetrevino/roster/internal/database"
	"github.com/thenoetrevino/roster/internal/metrics"
	"github.com/thenoetrevino/roster/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// setupTestService creates a service over a fresh in-memory database
func setupTestService(t *testing.T) (Service, *metrics.Recorder) {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	recorder := metrics.New()
	return NewService(database.NewRepository(db), recorder), recorder
}

// createTestStudent creates a student through the service
func createTestStudent(t *testing.T, svc Service, studentID, name string) *models.Student {
	t.Helper()
	s, err := svc.CreateStudent(context.Background(), CreateStudentRequest{
		StudentID: studentID,
		Name:      name,
		Age:       20,
	})
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return s
}

func ptr[T any](v T) *T { return &v }

// ============================================================================
// TEST CASES
// ============================================================================

func TestCreateStudent(t *testing.T) {
	t.Parallel()

	svc, recorder := setupTestService(t)

	req := CreateStudentRequest{
		StudentID: "  S1 ",
		Name:      "  Ada  ",
		Age:       20,
		Email:     "ada@example.com",
	}

	result, err := svc.CreateStudent(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.ID == 0 {
		t.Error("Expected student ID to be set")
	}
	if result.StudentID != "S1" {
		t.Errorf("Expected student_id 'S1', got '%s'", result.StudentID)
	}
	if result.Name != "Ada" {
		t.Errorf("Expected name 'Ada', got '%s'", result.Name)
	}
	if result.Email != "ada@example.com" {
		t.Errorf("Expected email 'ada@example.com', got '%s'", result.Email)
	}

	if got := testutil.ToFloat64(recorder.Count(models.EntityStudent, "create", "ok")); got != 1 {
		t.Errorf("Expected 1 ok create recorded, got %v", got)
	}
}

func TestCreateStudent_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		req   CreateStudentRequest
		field string
	}{
		{"empty name", CreateStudentRequest{StudentID: "S1", Name: "   ", Age: 20}, "name"},
		{"name too long", CreateStudentRequest{StudentID: "S1", Name: strings.Repeat("a", 101), Age: 20}, "name"},
		{"negative age", CreateStudentRequest{StudentID: "S1", Name: "Ada", Age: -1}, "age"},
		{"age too high", CreateStudentRequest{StudentID: "S1", Name: "Ada", Age: 151}, "age"},
		{"empty code", CreateStudentRequest{StudentID: "", Name: "Ada", Age: 20}, "student_id"},
		{"code with space", CreateStudentRequest{StudentID: "S 1", Name: "Ada", Age: 20}, "student_id"},
		{"bad email", CreateStudentRequest{StudentID: "S1", Name: "Ada", Age: 20, Email: "nope"}, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, recorder := setupTestService(t)

			_, err := svc.CreateStudent(context.Background(), tt.req)

			var verr *models.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Expected ValidationError, got %v", err)
			}
			if verr.Field != tt.field {
				t.Errorf("Expected field '%s', got '%s'", tt.field, verr.Field)
			}
			if got := testutil.ToFloat64(recorder.Count(models.EntityStudent, "create", "validation")); got != 1 {
				t.Errorf("Expected 1 validation outcome recorded, got %v", got)
			}
		})
	}
}

func TestCreateStudent_BoundaryAges(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	for i, age := range []int{0, 150} {
		_, err := svc.CreateStudent(context.Background(), CreateStudentRequest{
			StudentID: []string{"S0", "S150"}[i],
			Name:      "Edge",
			Age:       age,
		})
		if err != nil {
			t.Errorf("Expected age %d to be accepted, got %v", age, err)
		}
	}
}

func TestCreateStudent_Duplicate(t *testing.T) {
	t.Parallel()

	svc, recorder := setupTestService(t)
	createTestStudent(t, svc, "S1", "Ada")

	_, err := svc.CreateStudent(context.Background(), CreateStudentRequest{StudentID: "S1", Name: "Bob", Age: 30})
	if !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	list, err := svc.ListStudents(context.Background(), models.ListOptions{})
	if err != nil {
		t.Fatalf("Failed to list students: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Ada" {
		t.Errorf("Expected only the original student, got %+v", list)
	}

	if got := testutil.ToFloat64(recorder.Count(models.EntityStudent, "create", "duplicate_key")); got != 1 {
		t.Errorf("Expected 1 duplicate_key outcome recorded, got %v", got)
	}
}

func TestGetStudent(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	created := createTestStudent(t, svc, "S1", "Ada")

	got, err := svc.GetStudent(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got.StudentID != "S1" {
		t.Errorf("Expected student_id 'S1', got '%s'", got.StudentID)
	}

	byCode, err := svc.GetStudentByCode(context.Background(), " S1 ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if byCode.ID != created.ID {
		t.Errorf("Expected id %d, got %d", created.ID, byCode.ID)
	}
}

func TestGetStudent_InvalidAndMissing(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)

	if _, err := svc.GetStudent(context.Background(), 0); err != ErrInvalidStudentID {
		t.Errorf("Expected ErrInvalidStudentID, got %v", err)
	}
	if _, err := svc.GetStudent(context.Background(), 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := svc.GetStudentByCode(context.Background(), "NOPE"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestListStudents_DefaultOrderAndSearch(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	createTestStudent(t, svc, "S2", "Zed")
	createTestStudent(t, svc, "S1", "Ada")
	createTestStudent(t, svc, "S3", "Adam")

	all, err := svc.ListStudents(context.Background(), models.ListOptions{})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	want := []string{"S2", "S1", "S3"}
	for i, s := range all {
		if s.StudentID != want[i] {
			t.Errorf("Position %d: expected '%s', got '%s'", i, want[i], s.StudentID)
		}
	}

	found, err := svc.ListStudents(context.Background(), models.ListOptions{Search: "ada", SortBy: "name"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(found) != 2 || found[0].Name != "Ada" || found[1].Name != "Adam" {
		t.Errorf("Expected [Ada Adam], got %+v", found)
	}
}

func TestUpdateStudent_Partial(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	created := createTestStudent(t, svc, "S1", "Ada")

	updated, err := svc.UpdateStudent(context.Background(), UpdateStudentRequest{
		ID:  created.ID,
		Age: ptr(21),
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Age != 21 {
		t.Errorf("Expected age 21, got %d", updated.Age)
	}
	if updated.Name != "Ada" {
		t.Errorf("Expected name to stay 'Ada', got '%s'", updated.Name)
	}

	stored, err := svc.GetStudent(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Failed to reload student: %v", err)
	}
	if stored.Age != 21 || stored.Name != "Ada" || stored.StudentID != "S1" {
		t.Errorf("Unexpected stored student %+v", stored)
	}
}

func TestUpdateStudent_Errors(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	created := createTestStudent(t, svc, "S1", "Ada")
	ctx := context.Background()

	if _, err := svc.UpdateStudent(ctx, UpdateStudentRequest{ID: created.ID}); err != ErrNoChanges {
		t.Errorf("Expected ErrNoChanges, got %v", err)
	}
	if _, err := svc.UpdateStudent(ctx, UpdateStudentRequest{ID: 0, Age: ptr(3)}); err != ErrInvalidStudentID {
		t.Errorf("Expected ErrInvalidStudentID, got %v", err)
	}
	if _, err := svc.UpdateStudent(ctx, UpdateStudentRequest{ID: 999, Age: ptr(3)}); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if _, err := svc.UpdateStudent(ctx, UpdateStudentRequest{ID: created.ID, Name: ptr(" ")}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}
	if _, err := svc.UpdateStudent(ctx, UpdateStudentRequest{ID: created.ID, Age: ptr(200)}); !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation, got %v", err)
	}

	stored, err := svc.GetStudent(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to reload student: %v", err)
	}
	if stored.Age != 20 || stored.Name != "Ada" {
		t.Errorf("Expected student unchanged after failed updates, got %+v", stored)
	}
}

func TestUpdateStudent_ClearEmail(t *testing.T) {
	t.Parallel()

	svc, _ := setupTestService(t)
	created, err := svc.CreateStudent(context.Background(), CreateStudentRequest{
		StudentID: "S1", Name: "Ada", Age: 20, Email: "ada@example.com",
	})
	if err != nil {
		t.Fatalf("Failed to create student: %v", err)
	}

	updated, err := svc.UpdateStudent(context.Background(), UpdateStudentRequest{ID: created.ID, Email: ptr("")})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Email != "" {
		t.Errorf("Expected email cleared, got '%s'", updated.Email)
	}
}
