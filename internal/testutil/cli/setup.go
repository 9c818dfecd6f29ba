package cli

import (
	"database/sql"
	"testing"

	"github.com/thenoetrevino/roster/internal/app"
	"github.com/thenoetrevino/roster/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the DB and App instance.
// The database is closed when the test ends.
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	appInstance := app.New(db)
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return db, appInstance
}

// CreateTestStudent wraps testutil.CreateTestStudent for CLI tests
func CreateTestStudent(t *testing.T, db *sql.DB, studentID, name string, age int) int {
	t.Helper()
	return testutil.CreateTestStudent(t, db, studentID, name, age)
}

// CreateTestInstructor wraps testutil.CreateTestInstructor for CLI tests
func CreateTestInstructor(t *testing.T, db *sql.DB, instructorID, name string, age int) int {
	t.Helper()
	return testutil.CreateTestInstructor(t, db, instructorID, name, age)
}

// CreateTestCourse wraps testutil.CreateTestCourse for CLI tests
func CreateTestCourse(t *testing.T, db *sql.DB, courseID, name, instructorID string) int {
	t.Helper()
	return testutil.CreateTestCourse(t, db, courseID, name, instructorID)
}

// CreateTestEnrollment wraps testutil.CreateTestEnrollment for CLI tests
func CreateTestEnrollment(t *testing.T, db *sql.DB, studentID, courseID string) {
	t.Helper()
	testutil.CreateTestEnrollment(t, db, studentID, courseID)
}
