// Package student holds all cli commands related to students
//
// e.g., roster student ...
package student

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// StudentCmd returns the student parent command
func StudentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())

	return cmd
}

// studentResult is a single student as returned by add and update
type studentResult struct {
	*models.Student
	action string
}

// RenderHuman implements cli.HumanRenderer
func (r *studentResult) RenderHuman() string {
	return fmt.Sprintf("✓ Student %s %s (ID: %d)", r.StudentID, r.action, r.ID)
}

// studentList is the result of student list
type studentList []*models.Student

// QuietLines implements cli.QuietLister
func (l studentList) QuietLines() []string {
	lines := make([]string, len(l))
	for i, s := range l {
		lines[i] = s.StudentID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (l studentList) RenderHuman() string {
	if len(l) == 0 {
		return styles.Empty("No students found")
	}
	rows := make([][]string, len(l))
	for i, s := range l {
		rows[i] = []string{s.StudentID, s.Name, strconv.Itoa(s.Age), s.Email}
	}
	return styles.Table([]string{"STUDENT ID", "NAME", "AGE", "EMAIL"}, rows)
}
