// Package course holds all cli commands related to courses
//
// e.g., roster course ...
package course

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// CourseCmd returns the course parent command
func CourseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses and instructor assignment",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(AssignCmd())

	return cmd
}

// courseResult is a single course as returned by add, update and assign
type courseResult struct {
	*models.Course
	action string
}

// RenderHuman implements cli.HumanRenderer
func (r *courseResult) RenderHuman() string {
	msg := fmt.Sprintf("✓ Course %s %s (ID: %d)", r.CourseID, r.action, r.ID)
	if r.HasInstructor() {
		msg += "\n  Instructor: " + *r.InstructorID
	}
	return msg
}

// courseList is the result of course list
type courseList []*models.CourseSummary

// QuietLines implements cli.QuietLister
func (l courseList) QuietLines() []string {
	lines := make([]string, len(l))
	for i, c := range l {
		lines[i] = c.CourseID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (l courseList) RenderHuman() string {
	if len(l) == 0 {
		return styles.Empty("No courses found")
	}
	rows := make([][]string, len(l))
	for i, c := range l {
		rows[i] = []string{c.CourseID, c.Name, instructorLabel(c), strconv.Itoa(c.EnrolledCount)}
	}
	return styles.Table([]string{"COURSE ID", "NAME", "INSTRUCTOR", "ENROLLED"}, rows)
}

func instructorLabel(c *models.CourseSummary) string {
	if !c.HasInstructor() {
		return "-"
	}
	if c.InstructorName == "" {
		return *c.InstructorID
	}
	return c.InstructorName + " (" + *c.InstructorID + ")"
}
