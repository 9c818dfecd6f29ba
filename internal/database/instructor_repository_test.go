package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/roster/internal/models"
)

func TestInstructorCRUD(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	ins, err := repo.CreateInstructor(ctx, "INS1", "Dr. Lee", 45, "lee@example.edu")
	if err != nil {
		t.Fatalf("Failed to create instructor: %v", err)
	}

	byCode, err := repo.GetInstructorByCode(ctx, "INS1")
	if err != nil {
		t.Fatalf("Failed to get instructor: %v", err)
	}
	if byCode.ID != ins.ID || byCode.Name != "Dr. Lee" || byCode.Age != 45 {
		t.Errorf("Unexpected instructor: %+v", byCode)
	}

	if err := repo.UpdateInstructor(ctx, ins.ID, "Dr. Lee", 46, "lee@example.edu"); err != nil {
		t.Fatalf("Failed to update instructor: %v", err)
	}
	byID, err := repo.GetInstructorByID(ctx, ins.ID)
	if err != nil {
		t.Fatalf("Failed to get instructor: %v", err)
	}
	if byID.Age != 46 {
		t.Errorf("Expected age 46, got %d", byID.Age)
	}

	list, err := repo.ListInstructors(ctx, models.ListOptions{})
	if err != nil {
		t.Fatalf("Failed to list instructors: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("Expected 1 instructor, got %d", len(list))
	}
}

func TestCreateInstructor_DuplicateCode(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreateInstructor(t, repo, "INS1", "Dr. Lee")

	_, err := repo.CreateInstructor(ctx, "INS1", "Dr. Other", 50, "")
	if !errors.Is(err, models.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}

	count, _ := repo.CountInstructors(ctx)
	if count != 1 {
		t.Errorf("Expected 1 instructor, got %d", count)
	}
}

func TestInstructorCodesIndependentOfStudents(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreateStudent(t, repo, "X1", "Student X1")

	// Codes are unique within a kind only
	if _, err := repo.CreateInstructor(ctx, "X1", "Instructor X1", 40, ""); err != nil {
		t.Fatalf("Same code in another kind should be allowed: %v", err)
	}
}

func TestUpdateInstructor_UnknownID(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	err := repo.UpdateInstructor(context.Background(), 77, "Nobody", 40, "")
	var nf *models.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Expected NotFoundError, got %v", err)
	}
	if nf.Entity != models.EntityInstructor || nf.Key != "77" {
		t.Errorf("Unexpected not found details: %+v", nf)
	}
}
