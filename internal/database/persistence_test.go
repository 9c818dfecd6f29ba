package database

import (
	"context"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/roster/internal/models"
)

func TestWritesSurviveRestart(t *testing.T) {
	t.Parallel()
	db, dbPath := setupTestDBFile(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mustCreateInstructor(t, repo, "INS1", "Dr. Lee")
	mustCreateStudent(t, repo, "S1", "Ada")
	mustCreateCourse(t, repo, "CS101", "Algorithms", strPtr("INS1"))
	if _, err := repo.Enroll(ctx, "S1", "CS101"); err != nil {
		t.Fatalf("Failed to enroll: %v", err)
	}

	db = closeAndReopenDB(t, db, dbPath)
	repo = NewRepository(db)

	students, err := repo.ListStudents(ctx, models.ListOptions{})
	if err != nil || len(students) != 1 {
		t.Fatalf("Expected 1 student after restart, got %d (err %v)", len(students), err)
	}
	courses, err := repo.ListCourses(ctx, models.ListOptions{})
	if err != nil || len(courses) != 1 || courses[0].InstructorName != "Dr. Lee" {
		t.Fatalf("Expected course with instructor after restart, got %+v (err %v)", courses, err)
	}
	count, _ := repo.CountEnrollments(ctx)
	if count != 1 {
		t.Errorf("Expected 1 enrollment after restart, got %d", count)
	}

	// Constraints still enforced after reopening
	if _, err := repo.CreateStudent(ctx, "S1", "Again", 20, ""); !errors.Is(err, models.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey after restart, got %v", err)
	}
}

func TestBackup(t *testing.T) {
	t.Parallel()
	db, _ := setupTestDBFile(t)
	t.Cleanup(func() { _ = db.Close() })
	repo := NewRepository(db)
	ctx := context.Background()

	mustCreateStudent(t, repo, "S1", "Ada")
	mustCreateCourse(t, repo, "CS101", "Algorithms", nil)

	dest := filepath.Join(t.TempDir(), "backups", "school-backup.db")
	if err := repo.Backup(ctx, dest); err != nil {
		t.Fatalf("Backup failed: %v", err)
	}

	copyDB, err := InitDB(ctx, dest)
	if err != nil {
		t.Fatalf("Failed to open backup: %v", err)
	}
	t.Cleanup(func() { _ = copyDB.Close() })

	copyRepo := NewRepository(copyDB)
	students, _ := copyRepo.ListStudents(ctx, models.ListOptions{})
	courses, _ := copyRepo.ListCourses(ctx, models.ListOptions{})
	if len(students) != 1 || len(courses) != 1 {
		t.Errorf("Backup should contain 1 student and 1 course, got %d and %d", len(students), len(courses))
	}

	if err := repo.Backup(ctx, dest); !errors.Is(err, fs.ErrExist) {
		t.Errorf("Expected fs.ErrExist when destination exists, got %v", err)
	}
}
