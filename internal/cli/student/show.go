package student

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/models"
)

// ShowCmd returns the student show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <student-id>",
		Short: "Show a student and their courses",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(&showHandler{}),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// showResult is a student with the courses they are enrolled in
type showResult struct {
	*models.Student
	Courses []*models.Course `json:"courses"`
}

// RenderHuman implements cli.HumanRenderer
func (r *showResult) RenderHuman() string {
	courses := make([]string, len(r.Courses))
	for i, c := range r.Courses {
		courses[i] = c.CourseID + "  " + c.Name
	}

	return styles.RenderCard(r.Name,
		styles.Field("Student ID", r.StudentID),
		styles.Field("Age", strconv.Itoa(r.Age)),
		styles.Field("Email", r.Email),
		styles.Field("Added", cli.FormatTime(r.CreatedAt)),
		styles.Section("Courses", "Not enrolled in any course", courses...),
	)
}

// showHandler implements handler.Handler for showing a student
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

	student, err := cliInstance.App.StudentService.GetStudentByCode(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	courses, err := cliInstance.App.EnrollmentService.GetCoursesForStudent(ctx, student.StudentID)
	if err != nil {
		return nil, err
	}

	return &showResult{Student: student, Courses: courses}, nil
}
