// Package instructor holds all cli commands related to instructors
//
// e.g., roster instructor ...
package instructor

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// InstructorCmd returns the instructor parent command
func InstructorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instructor",
		Short: "Manage instructors",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(UpdateCmd())

	return cmd
}

// instructorResult is a single instructor as returned by add and update
type instructorResult struct {
	*models.Instructor
	action string
}

// RenderHuman implements cli.HumanRenderer
func (r *instructorResult) RenderHuman() string {
	return fmt.Sprintf("✓ Instructor %s %s (ID: %d)", r.InstructorID, r.action, r.ID)
}

// instructorList is the result of instructor list
type instructorList []*models.Instructor

// QuietLines implements cli.QuietLister
func (l instructorList) QuietLines() []string {
	lines := make([]string, len(l))
	for i, s := range l {
		lines[i] = s.InstructorID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (l instructorList) RenderHuman() string {
	if len(l) == 0 {
		return styles.Empty("No instructors found")
	}
	rows := make([][]string, len(l))
	for i, s := range l {
		rows[i] = []string{s.InstructorID, s.Name, strconv.Itoa(s.Age), s.Email}
	}
	return styles.Table([]string{"INSTRUCTOR ID", "NAME", "AGE", "EMAIL"}, rows)
}
