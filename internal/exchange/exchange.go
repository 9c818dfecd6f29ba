// Package exchange moves the whole data set in and out of the store as a
// JSON snapshot or an xlsx workbook. Imports go through the services, so
// every row is validated and checked exactly like an interactive add.
package exchange

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thenoetrevino/roster/internal/models"
	courseservice "github.com/thenoetrevino/roster/internal/services/course"
	enrollmentservice "github.com/thenoetrevino/roster/internal/services/enrollment"
	instructorservice "github.com/thenoetrevino/roster/internal/services/instructor"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// Supported formats
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
)

// SnapshotVersion is the JSON snapshot format written by ExportJSON
const SnapshotVersion = 1

// Section names, used in import reports and as xlsx sheet names
const (
	SectionStudents    = "Students"
	SectionInstructors = "Instructors"
	SectionCourses     = "Courses"
	SectionEnrollments = "Enrollments"
)

// Services are the operations an Exchanger reads from and writes through
type Services struct {
	Students    studentservice.Service
	Instructors instructorservice.Service
	Courses     courseservice.Service
	Enrollments enrollmentservice.Service
}

// Exchanger exports and imports the data set
type Exchanger struct {
	svc Services
}

// New creates an Exchanger over svc
func New(svc Services) *Exchanger {
	return &Exchanger{svc: svc}
}

// Snapshot is the full data set at one point in time
type Snapshot struct {
	Version     int                  `json:"version"`
	ExportedAt  time.Time            `json:"exported_at"`
	Students    []*models.Student    `json:"students"`
	Instructors []*models.Instructor `json:"instructors"`
	Courses     []*models.Course     `json:"courses"`
	Enrollments []*models.Enrollment `json:"enrollments"`
}

// RowError is one import row that was skipped
type RowError struct {
	Section string `json:"section"`
	Row     int    `json:"row"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e RowError) Error() string {
	return fmt.Sprintf("%s row %d: %s", e.Section, e.Row, e.Message)
}

func (e RowError) Unwrap() error {
	return e.Err
}

// ImportReport counts what an import created and lists what it skipped
type ImportReport struct {
	Students    int        `json:"students"`
	Instructors int        `json:"instructors"`
	Courses     int        `json:"courses"`
	Enrollments int        `json:"enrollments"`
	Skipped     []RowError `json:"skipped"`
}

// Created returns the number of records created
func (r *ImportReport) Created() int {
	return r.Students + r.Instructors + r.Courses + r.Enrollments
}

func (r *ImportReport) skip(section string, row int, err error) {
	slog.Warn("import row skipped", "section", section, "row", row, "error", err)
	r.Skipped = append(r.Skipped, RowError{
		Section: section,
		Row:     row,
		Kind:    models.ErrorKind(err),
		Message: err.Error(),
		Err:     err,
	})
}

// Snapshot reads the whole data set in insertion order
func (e *Exchanger) Snapshot(ctx context.Context) (*Snapshot, error) {
	students, err := e.svc.Students.ListStudents(ctx, models.ListOptions{})
	if err != nil {
		return nil, err
	}
	instructors, err := e.svc.Instructors.ListInstructors(ctx, models.ListOptions{})
	if err != nil {
		return nil, err
	}
	summaries, err := e.svc.Courses.ListCourses(ctx, models.ListOptions{})
	if err != nil {
		return nil, err
	}
	enrollments, err := e.svc.Enrollments.ListEnrollments(ctx)
	if err != nil {
		return nil, err
	}

	courses := make([]*models.Course, 0, len(summaries))
	for _, s := range summaries {
		course := s.Course
		courses = append(courses, &course)
	}

	return &Snapshot{
		Version:     SnapshotVersion,
		ExportedAt:  time.Now().UTC(),
		Students:    students,
		Instructors: instructors,
		Courses:     courses,
		Enrollments: enrollments,
	}, nil
}

// ============================================================================
// Import
// ============================================================================

// numbered pairs a parsed request with the row it came from
type numbered[T any] struct {
	row int
	req T
}

// batch is an import parsed from either format, in dependency order
type batch struct {
	instructors []numbered[instructorservice.CreateInstructorRequest]
	students    []numbered[studentservice.CreateStudentRequest]
	courses     []numbered[courseservice.CreateCourseRequest]
	enrollments []numbered[enrollmentservice.EnrollRequest]
}

// apply creates every row of b. Instructors go first so courses can
// reference them, and enrollments go last. A failing row is recorded and
// skipped; only a cancelled context stops the import.
func (e *Exchanger) apply(ctx context.Context, b *batch, report *ImportReport) error {
	err := applyRows(ctx, report, SectionInstructors, b.instructors, &report.Instructors,
		func(ctx context.Context, req instructorservice.CreateInstructorRequest) error {
			_, err := e.svc.Instructors.CreateInstructor(ctx, req)
			return err
		})
	if err != nil {
		return err
	}

	err = applyRows(ctx, report, SectionStudents, b.students, &report.Students,
		func(ctx context.Context, req studentservice.CreateStudentRequest) error {
			_, err := e.svc.Students.CreateStudent(ctx, req)
			return err
		})
	if err != nil {
		return err
	}

	err = applyRows(ctx, report, SectionCourses, b.courses, &report.Courses,
		func(ctx context.Context, req courseservice.CreateCourseRequest) error {
			_, err := e.svc.Courses.CreateCourse(ctx, req)
			return err
		})
	if err != nil {
		return err
	}

	err = applyRows(ctx, report, SectionEnrollments, b.enrollments, &report.Enrollments,
		func(ctx context.Context, req enrollmentservice.EnrollRequest) error {
			_, err := e.svc.Enrollments.Enroll(ctx, req)
			return err
		})
	if err != nil {
		return err
	}

	slog.Info("import finished", "created", report.Created(), "skipped", len(report.Skipped))
	return nil
}

func applyRows[T any](ctx context.Context, report *ImportReport, section string, rows []numbered[T], created *int, create func(context.Context, T) error) error {
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := create(ctx, r.req); err != nil {
			report.skip(section, r.row, err)
			continue
		}
		*created++
	}
	return nil
}

// FormatFromPath guesses the exchange format from a file extension
func FormatFromPath(path string) (string, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xlsx"):
		return FormatXLSX, nil
	case strings.HasSuffix(lower, ".json"):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("cannot tell format of %q; use --format %s or %s", path, FormatXLSX, FormatJSON)
	}
}
