// Package testutil holds database and output helpers shared by tests
package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"io"
	"os"
	"testing"
	"time"

	"github.com/thenoetrevino/roster/internal/database"
)

// CaptureOutput captures stdout during function execution
func CaptureOutput(t *testing.T, fn func()) string {
	t.Helper()

	// Save original stdout
	oldStdout := os.Stdout

	// Create pipe to capture output
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Failed to create pipe: %v", err)
	}

	// Replace stdout with pipe writer
	os.Stdout = w

	// Channel to collect output
	outC := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		outC <- buf.String()
	}()

	// Execute function
	fn()

	// Close writer and restore stdout
	_ = w.Close()
	os.Stdout = oldStdout

	// Get captured output
	return <-outC
}

// SetupTestDB creates an in-memory database with full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.InitDB(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	return db
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

// CreateTestStudent inserts a student directly and returns its generated ID
func CreateTestStudent(t *testing.T, db *sql.DB, studentID, name string, age int) int {
	t.Helper()
	return insert(t, db,
		`INSERT INTO students (student_id, name, age, email, created_at) VALUES (?, ?, ?, '', ?)`,
		studentID, name, age, now())
}

// CreateTestInstructor inserts an instructor directly and returns its generated ID
func CreateTestInstructor(t *testing.T, db *sql.DB, instructorID, name string, age int) int {
	t.Helper()
	return insert(t, db,
		`INSERT INTO instructors (instructor_id, name, age, email, created_at) VALUES (?, ?, ?, '', ?)`,
		instructorID, name, age, now())
}

// CreateTestCourse inserts a course directly and returns its generated ID.
// An empty instructorID leaves the course unassigned.
func CreateTestCourse(t *testing.T, db *sql.DB, courseID, name, instructorID string) int {
	t.Helper()
	var instructor any
	if instructorID != "" {
		instructor = instructorID
	}
	return insert(t, db,
		`INSERT INTO courses (course_id, name, instructor_id, created_at) VALUES (?, ?, ?, ?)`,
		courseID, name, instructor, now())
}

// CreateTestEnrollment enrolls a student in a course directly
func CreateTestEnrollment(t *testing.T, db *sql.DB, studentID, courseID string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO enrollments (student_id, course_id, enrolled_at) VALUES (?, ?, ?)`,
		studentID, courseID, now())
	if err != nil {
		t.Fatalf("Failed to create test enrollment: %v", err)
	}
}

func insert(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	result, err := db.ExecContext(context.Background(), query, args...)
	if err != nil {
		t.Fatalf("Failed to insert test row: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get inserted ID: %v", err)
	}
	return int(id)
}
