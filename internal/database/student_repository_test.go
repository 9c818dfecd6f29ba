package database

import (
	"context"
	"errors"
	"testing"

	"github.com/thenoetrevino/roster/internal/models"
)

func TestCreateStudent(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	student, err := repo.CreateStudent(ctx, "S1001", "Ada Lovelace", 19, "ada@example.com")
	if err != nil {
		t.Fatalf("Failed to create student: %v", err)
	}
	if student.ID == 0 {
		t.Error("Student should have a generated ID")
	}
	if student.CreatedAt.IsZero() {
		t.Error("Student should have a creation time")
	}

	students, err := repo.ListStudents(ctx, models.ListOptions{})
	if err != nil {
		t.Fatalf("Failed to list students: %v", err)
	}
	if len(students) != 1 {
		t.Fatalf("Expected 1 student, got %d", len(students))
	}

	got := students[0]
	if got.ID != student.ID || got.StudentID != "S1001" || got.Name != "Ada Lovelace" || got.Age != 19 || got.Email != "ada@example.com" {
		t.Errorf("Listed student does not match created one: %+v", got)
	}
	if !got.CreatedAt.Equal(student.CreatedAt) {
		t.Errorf("Expected created_at %v, got %v", student.CreatedAt, got.CreatedAt)
	}
}

func TestCreateStudent_DuplicateCode(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreateStudent(t, repo, "S1", "First")

	_, err := repo.CreateStudent(ctx, "S1", "Second", 30, "")
	var dupErr *models.DuplicateKeyError
	if !errors.As(err, &dupErr) {
		t.Fatalf("Expected DuplicateKeyError, got %v", err)
	}
	if dupErr.Entity != models.EntityStudent || dupErr.Key != "S1" {
		t.Errorf("Unexpected duplicate error details: %+v", dupErr)
	}

	count, err := repo.CountStudents(ctx)
	if err != nil {
		t.Fatalf("Failed to count students: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected student count to stay 1, got %d", count)
	}
}

func TestGetStudent(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateStudent(ctx, "S7", "Grace", 22, "")
	if err != nil {
		t.Fatalf("Failed to create student: %v", err)
	}

	byID, err := repo.GetStudentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetStudentByID failed: %v", err)
	}
	if byID.StudentID != "S7" {
		t.Errorf("Expected S7, got %s", byID.StudentID)
	}

	byCode, err := repo.GetStudentByCode(ctx, "S7")
	if err != nil {
		t.Fatalf("GetStudentByCode failed: %v", err)
	}
	if byCode.ID != created.ID {
		t.Errorf("Expected ID %d, got %d", created.ID, byCode.ID)
	}

	if _, err := repo.GetStudentByID(ctx, 999); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown ID, got %v", err)
	}
	if _, err := repo.GetStudentByCode(ctx, "NOPE"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown code, got %v", err)
	}
}

func TestUpdateStudent(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateStudent(ctx, "S1", "Old Name", 18, "")
	if err != nil {
		t.Fatalf("Failed to create student: %v", err)
	}

	if err := repo.UpdateStudent(ctx, created.ID, "New Name", 19, "new@example.com"); err != nil {
		t.Fatalf("Failed to update student: %v", err)
	}

	got, err := repo.GetStudentByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to get student: %v", err)
	}
	if got.Name != "New Name" || got.Age != 19 || got.Email != "new@example.com" {
		t.Errorf("Update not applied: %+v", got)
	}
	if got.StudentID != "S1" {
		t.Errorf("Student code must not change, got %s", got.StudentID)
	}
}

func TestUpdateStudent_UnknownID(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreateStudent(t, repo, "S1", "Only")

	err := repo.UpdateStudent(ctx, 424242, "Ghost", 1, "")
	if !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}

	students, _ := repo.ListStudents(ctx, models.ListOptions{})
	if len(students) != 1 || students[0].Name != "Only" {
		t.Errorf("No record should be altered, got %+v", students)
	}
}

func TestListStudents_InsertionOrder(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	codes := []string{"S3", "S1", "S2"}
	for _, code := range codes {
		mustCreateStudent(t, repo, code, "Student "+code)
	}

	students, err := repo.ListStudents(ctx, models.ListOptions{})
	if err != nil {
		t.Fatalf("Failed to list students: %v", err)
	}
	for i, code := range codes {
		if students[i].StudentID != code {
			t.Errorf("Position %d: expected %s, got %s", i, code, students[i].StudentID)
		}
	}
}

func TestListStudents_SortAndSearch(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	for _, s := range []struct {
		code, name string
		age        int
	}{
		{"S1", "charlie", 30},
		{"S2", "Alice", 20},
		{"S3", "bob", 25},
	} {
		if _, err := repo.CreateStudent(ctx, s.code, s.name, s.age, ""); err != nil {
			t.Fatalf("Failed to create student: %v", err)
		}
	}

	byName, err := repo.ListStudents(ctx, models.ListOptions{SortBy: "name"})
	if err != nil {
		t.Fatalf("Failed to sort by name: %v", err)
	}
	if byName[0].Name != "Alice" || byName[1].Name != "bob" || byName[2].Name != "charlie" {
		t.Errorf("Sort by name should be case-insensitive, got %s, %s, %s", byName[0].Name, byName[1].Name, byName[2].Name)
	}

	byAgeDesc, err := repo.ListStudents(ctx, models.ListOptions{SortBy: "age", Desc: true})
	if err != nil {
		t.Fatalf("Failed to sort by age: %v", err)
	}
	if byAgeDesc[0].Age != 30 || byAgeDesc[2].Age != 20 {
		t.Errorf("Unexpected age order: %d, %d, %d", byAgeDesc[0].Age, byAgeDesc[1].Age, byAgeDesc[2].Age)
	}

	found, err := repo.ListStudents(ctx, models.ListOptions{Search: "LIC"})
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(found) != 1 || found[0].StudentID != "S2" {
		t.Errorf("Expected only Alice, got %+v", found)
	}

	byCode, err := repo.ListStudents(ctx, models.ListOptions{Search: "s3"})
	if err != nil {
		t.Fatalf("Failed to search by code: %v", err)
	}
	if len(byCode) != 1 || byCode[0].Name != "bob" {
		t.Errorf("Expected only bob, got %+v", byCode)
	}

	mustCreateStudent(t, repo, "S4", "Élodie")
	for _, term := range []string{"Élodie", "élodie", "ÉLODIE", "lodie"} {
		found, err := repo.ListStudents(ctx, models.ListOptions{Search: term})
		if err != nil {
			t.Fatalf("Failed to search %q: %v", term, err)
		}
		if len(found) != 1 || found[0].StudentID != "S4" {
			t.Errorf("Search %q should find only Élodie, got %+v", term, found)
		}
	}

	_, err = repo.ListStudents(ctx, models.ListOptions{SortBy: "name; DROP TABLE students"})
	if !errors.Is(err, models.ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown sort key, got %v", err)
	}
}

func TestListStudents_SearchEscapesWildcards(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	mustCreateStudent(t, repo, "S_1", "Under Score")
	mustCreateStudent(t, repo, "SX1", "Other")

	found, err := repo.ListStudents(ctx, models.ListOptions{Search: "s_"})
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(found) != 1 || found[0].StudentID != "S_1" {
		t.Errorf("Underscore must match literally, got %+v", found)
	}
}

func TestListStudents_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	repo := NewRepository(setupTestDB(t))

	students, err := repo.ListStudents(context.Background(), models.ListOptions{})
	if err != nil {
		t.Fatalf("Failed to list students: %v", err)
	}
	if students == nil || len(students) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", students)
	}
}
