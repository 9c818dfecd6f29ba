package exchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	courseservice "github.com/thenoetrevino/roster/internal/services/course"
	enrollmentservice "github.com/thenoetrevino/roster/internal/services/enrollment"
	instructorservice "github.com/thenoetrevino/roster/internal/services/instructor"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// ExportJSON writes a Snapshot of the store to w as indented JSON
func (e *Exchanger) ExportJSON(ctx context.Context, w io.Writer) error {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return nil
}

// ImportJSON reads a Snapshot from r and creates its records. Generated IDs
// and timestamps in the snapshot are ignored; rows are numbered by their
// position within each section, starting at 1.
func (e *Exchanger) ImportJSON(ctx context.Context, r io.Reader) (*ImportReport, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version > SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d is newer than supported version %d", snap.Version, SnapshotVersion)
	}

	b := &batch{}
	for i, s := range snap.Instructors {
		if s == nil {
			continue
		}
		b.instructors = append(b.instructors, numbered[instructorservice.CreateInstructorRequest]{
			row: i + 1,
			req: instructorservice.CreateInstructorRequest{
				InstructorID: s.InstructorID,
				Name:         s.Name,
				Age:          s.Age,
				Email:        s.Email,
			},
		})
	}
	for i, s := range snap.Students {
		if s == nil {
			continue
		}
		b.students = append(b.students, numbered[studentservice.CreateStudentRequest]{
			row: i + 1,
			req: studentservice.CreateStudentRequest{
				StudentID: s.StudentID,
				Name:      s.Name,
				Age:       s.Age,
				Email:     s.Email,
			},
		})
	}
	for i, c := range snap.Courses {
		if c == nil {
			continue
		}
		b.courses = append(b.courses, numbered[courseservice.CreateCourseRequest]{
			row: i + 1,
			req: courseservice.CreateCourseRequest{
				CourseID:     c.CourseID,
				Name:         c.Name,
				InstructorID: c.InstructorID,
			},
		})
	}
	for i, en := range snap.Enrollments {
		if en == nil {
			continue
		}
		b.enrollments = append(b.enrollments, numbered[enrollmentservice.EnrollRequest]{
			row: i + 1,
			req: enrollmentservice.EnrollRequest{StudentID: en.StudentID, CourseID: en.CourseID},
		})
	}

	report := &ImportReport{}
	if err := e.apply(ctx, b, report); err != nil {
		return report, err
	}
	return report, nil
}
