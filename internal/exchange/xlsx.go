package exchange

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	courseservice "github.com/thenoetrevino/roster/internal/services/course"
	enrollmentservice "github.com/thenoetrevino/roster/internal/services/enrollment"
	instructorservice "github.com/thenoetrevino/roster/internal/services/instructor"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
	"github.com/thenoetrevino/roster/internal/validation"
)

// Header rows written on export. Import skips the first row of every sheet
// and reads columns by position.
var (
	studentHeader    = []any{"Student ID", "Name", "Age", "Email"}
	instructorHeader = []any{"Instructor ID", "Name", "Age", "Email"}
	courseHeader     = []any{"Course ID", "Name", "Instructor ID"}
	enrollmentHeader = []any{"Student ID", "Course ID", "Enrolled At"}
)

// ExportXLSX writes the store to w as a workbook with one sheet per section
func (e *Exchanger) ExportXLSX(ctx context.Context, w io.Writer) error {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	// The new workbook's default sheet becomes the first section
	if err := f.SetSheetName("Sheet1", SectionStudents); err != nil {
		return fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{SectionInstructors, SectionCourses, SectionEnrollments} {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}

	students := make([][]any, 0, len(snap.Students))
	for _, s := range snap.Students {
		students = append(students, []any{s.StudentID, s.Name, s.Age, s.Email})
	}
	instructors := make([][]any, 0, len(snap.Instructors))
	for _, s := range snap.Instructors {
		instructors = append(instructors, []any{s.InstructorID, s.Name, s.Age, s.Email})
	}
	courses := make([][]any, 0, len(snap.Courses))
	for _, c := range snap.Courses {
		instructor := ""
		if c.HasInstructor() {
			instructor = *c.InstructorID
		}
		courses = append(courses, []any{c.CourseID, c.Name, instructor})
	}
	enrollments := make([][]any, 0, len(snap.Enrollments))
	for _, en := range snap.Enrollments {
		enrollments = append(enrollments, []any{en.StudentID, en.CourseID, en.EnrolledAt.UTC().Format(time.RFC3339)})
	}

	sheets := []struct {
		name   string
		header []any
		rows   [][]any
	}{
		{SectionStudents, studentHeader, students},
		{SectionInstructors, instructorHeader, instructors},
		{SectionCourses, courseHeader, courses},
		{SectionEnrollments, enrollmentHeader, enrollments},
	}
	for _, sheet := range sheets {
		if err := writeSheet(f, sheet.name, sheet.header, sheet.rows, headerStyle); err != nil {
			return err
		}
	}

	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, header []any, rows [][]any, headerStyle int) error {
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", sheet, err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return fmt.Errorf("failed to style %s header: %w", sheet, err)
	}

	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, axis, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+2, err)
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	return f.SetColWidth(sheet, "A", lastCol, 20)
}

// ImportXLSX reads a workbook in the ExportXLSX layout from r and creates
// its records. Sheets are matched by name, ignoring case, and a missing
// sheet is treated as empty. Row numbers in the report are spreadsheet rows.
func (e *Exchanger) ImportXLSX(ctx context.Context, r io.Reader) (*ImportReport, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close workbook", "error", err)
		}
	}()

	sheets := map[string]string{}
	for _, name := range f.GetSheetList() {
		sheets[strings.ToLower(name)] = name
	}
	rowsOf := func(section string) ([][]string, error) {
		name, ok := sheets[strings.ToLower(section)]
		if !ok {
			return nil, nil
		}
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to get rows from sheet %s: %w", name, err)
		}
		return rows, nil
	}

	report := &ImportReport{}
	b := &batch{}

	rows, err := rowsOf(SectionInstructors)
	if err != nil {
		return nil, err
	}
	eachDataRow(rows, func(row int, cells []string) {
		age, err := validation.ParseAge(cell(cells, 2))
		if err != nil {
			report.skip(SectionInstructors, row, err)
			return
		}
		b.instructors = append(b.instructors, numbered[instructorservice.CreateInstructorRequest]{
			row: row,
			req: instructorservice.CreateInstructorRequest{
				InstructorID: cell(cells, 0),
				Name:         cell(cells, 1),
				Age:          age,
				Email:        cell(cells, 3),
			},
		})
	})

	if rows, err = rowsOf(SectionStudents); err != nil {
		return nil, err
	}
	eachDataRow(rows, func(row int, cells []string) {
		age, err := validation.ParseAge(cell(cells, 2))
		if err != nil {
			report.skip(SectionStudents, row, err)
			return
		}
		b.students = append(b.students, numbered[studentservice.CreateStudentRequest]{
			row: row,
			req: studentservice.CreateStudentRequest{
				StudentID: cell(cells, 0),
				Name:      cell(cells, 1),
				Age:       age,
				Email:     cell(cells, 3),
			},
		})
	})

	if rows, err = rowsOf(SectionCourses); err != nil {
		return nil, err
	}
	eachDataRow(rows, func(row int, cells []string) {
		var instructorID *string
		if code := cell(cells, 2); code != "" {
			instructorID = &code
		}
		b.courses = append(b.courses, numbered[courseservice.CreateCourseRequest]{
			row: row,
			req: courseservice.CreateCourseRequest{
				CourseID:     cell(cells, 0),
				Name:         cell(cells, 1),
				InstructorID: instructorID,
			},
		})
	})

	if rows, err = rowsOf(SectionEnrollments); err != nil {
		return nil, err
	}
	eachDataRow(rows, func(row int, cells []string) {
		b.enrollments = append(b.enrollments, numbered[enrollmentservice.EnrollRequest]{
			row: row,
			req: enrollmentservice.EnrollRequest{StudentID: cell(cells, 0), CourseID: cell(cells, 1)},
		})
	})

	if err := e.apply(ctx, b, report); err != nil {
		return report, err
	}
	return report, nil
}

// eachDataRow calls fn for every non-blank row after the header with its
// 1-based spreadsheet row number
func eachDataRow(rows [][]string, fn func(row int, cells []string)) {
	for i, cells := range rows {
		if i == 0 || blank(cells) {
			continue
		}
		fn(i+1, cells)
	}
}

func cell(cells []string, i int) string {
	if i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
