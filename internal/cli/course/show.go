package course

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// ShowCmd returns the course show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <course-id>",
		Short: "Show a course with its instructor and roster",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(&showHandler{}),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// showResult is a course with its instructor and enrolled students
type showResult struct {
	*models.Course
	Instructor *models.Instructor    `json:"instructor,omitempty"`
	Roster     []*models.RosterEntry `json:"roster"`
}

// QuietLines implements cli.QuietLister, printing the roster's student IDs
func (r *showResult) QuietLines() []string {
	lines := make([]string, len(r.Roster))
	for i, e := range r.Roster {
		lines[i] = e.StudentID
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (r *showResult) RenderHuman() string {
	instructor := ""
	if r.Instructor != nil {
		instructor = r.Instructor.Name + " (" + r.Instructor.InstructorID + ")"
	}

	roster := make([]string, len(r.Roster))
	for i, e := range r.Roster {
		roster[i] = e.StudentID + "  " + e.Name
	}

	return styles.RenderCard(r.Name,
		styles.Field("Course ID", r.CourseID),
		styles.Field("Instructor", instructor),
		styles.Field("Added", cli.FormatTime(r.CreatedAt)),
		styles.Section("Roster", "No students enrolled", roster...),
	)
}

// showHandler implements handler.Handler for showing a course
type showHandler struct{}

// Execute implements the Handler interface
func (h *showHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	course, err := cliInstance.App.CourseService.GetCourseByCode(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	result := &showResult{Course: course}
	if course.HasInstructor() {
		result.Instructor, err = cliInstance.App.InstructorService.GetInstructorByCode(ctx, *course.InstructorID)
		if err != nil {
			return nil, err
		}
	}

	result.Roster, err = cliInstance.App.EnrollmentService.GetCourseRoster(ctx, course.CourseID)
	if err != nil {
		return nil, err
	}

	return result, nil
}
