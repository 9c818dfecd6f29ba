// Package enrollment holds all cli commands related to enrollments
//
// e.g., roster enrollment ...
package enrollment

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// EnrollmentCmd returns the enrollment parent command
func EnrollmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "enrollment",
		Aliases: []string{"enroll"},
		Short:   "Enroll students in courses",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// enrollmentResult is the enrollment created by add
type enrollmentResult struct {
	*models.Enrollment
}

// RenderHuman implements cli.HumanRenderer
func (r *enrollmentResult) RenderHuman() string {
	return fmt.Sprintf("✓ Student %s enrolled in %s", r.StudentID, r.CourseID)
}

// QuietLines implements cli.QuietLister
func (r *enrollmentResult) QuietLines() []string {
	return []string{r.StudentID + " " + r.CourseID}
}

// enrollmentList is every enrollment in the store
type enrollmentList []*models.Enrollment

// QuietLines implements cli.QuietLister
func (l enrollmentList) QuietLines() []string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.StudentID + " " + e.CourseID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (l enrollmentList) RenderHuman() string {
	if len(l) == 0 {
		return styles.Empty("No enrollments found")
	}
	rows := make([][]string, len(l))
	for i, e := range l {
		rows[i] = []string{e.StudentID, e.CourseID, cli.FormatTime(e.EnrolledAt)}
	}
	return styles.Table([]string{"STUDENT ID", "COURSE ID", "ENROLLED AT"}, rows)
}

// rosterList is the students enrolled in one course
type rosterList []*models.RosterEntry

// QuietLines implements cli.QuietLister
func (l rosterList) QuietLines() []string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = e.StudentID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (l rosterList) RenderHuman() string {
	if len(l) == 0 {
		return styles.Empty("No students enrolled")
	}
	rows := make([][]string, len(l))
	for i, e := range l {
		rows[i] = []string{e.StudentID, e.Name, e.Email, cli.FormatTime(e.EnrolledAt)}
	}
	return styles.Table([]string{"STUDENT ID", "NAME", "EMAIL", "ENROLLED AT"}, rows)
}

// studentCourses is the courses one student is enrolled in
type studentCourses []*models.Course

// QuietLines implements cli.QuietLister
func (l studentCourses) QuietLines() []string {
	lines := make([]string, len(l))
	for i, c := range l {
		lines[i] = c.CourseID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (l studentCourses) RenderHuman() string {
	if len(l) == 0 {
		return styles.Empty("Not enrolled in any course")
	}
	rows := make([][]string, len(l))
	for i, c := range l {
		instructor := "-"
		if c.HasInstructor() {
			instructor = *c.InstructorID
		}
		rows[i] = []string{c.CourseID, c.Name, instructor}
	}
	return styles.Table([]string{"COURSE ID", "NAME", "INSTRUCTOR"}, rows)
}
