package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied on every start. Every statement is idempotent; there is
// no version table.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		student_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		age INTEGER NOT NULL CHECK (age >= 0),
		email TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS instructors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		instructor_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		age INTEGER NOT NULL CHECK (age >= 0),
		email TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		course_id TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		instructor_id TEXT,
		created_at TEXT NOT NULL,
		FOREIGN KEY (instructor_id) REFERENCES instructors(instructor_id)
	)`,
	`CREATE TABLE IF NOT EXISTS enrollments (
		student_id TEXT NOT NULL,
		course_id TEXT NOT NULL,
		enrolled_at TEXT NOT NULL,
		PRIMARY KEY (student_id, course_id),
		FOREIGN KEY (student_id) REFERENCES students(student_id),
		FOREIGN KEY (course_id) REFERENCES courses(course_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_courses_instructor ON courses(instructor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_enrollments_course ON enrollments(course_id)`,
}

// Migrate creates the database schema if it does not exist yet
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}
	return nil
}
