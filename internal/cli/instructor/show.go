package instructor

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

// ShowCmd returns the instructor show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <instructor-id>",
		Short: "Show an instructor and the courses they teach",
		Args:  cobra.ExactArgs(1),
		RunE:  handler.SimpleCommand(&showHandler{}),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// showResult is an instructor with the courses assigned to them
type showResult struct {
	*models.Instructor
	Courses []*models.CourseSummary `json:"courses"`
}

// RenderHuman implements cli.HumanRenderer
func (r *showResult) RenderHuman() string {
	courses := make([]string, len(r.Courses))
	for i, c := range r.Courses {
		courses[i] = c.CourseID + "  " + c.Name + "  (" + strconv.Itoa(c.EnrolledCount) + " enrolled)"
	}

	return styles.RenderCard(r.Name,
		styles.Field("Instructor ID", r.InstructorID),
		styles.Field("Age", strconv.Itoa(r.Age)),
		styles.Field("Email", r.Email),
		styles.Field("Added", cli.FormatTime(r.CreatedAt)),
		styles.Section("Teaching", "No courses assigned", courses...),
	)
}

// showHandler implements handler.Handler for showing an instructor
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

	instructor, err := cliInstance.App.InstructorService.GetInstructorByCode(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	all, err := cliInstance.App.CourseService.ListCourses(ctx, models.ListOptions{})
	if err != nil {
		return nil, err
	}
	courses := make([]*models.CourseSummary, 0)
	for _, c := range all {
		if c.HasInstructor() && *c.InstructorID == instructor.InstructorID {
			courses = append(courses, c)
		}
	}

	return &showResult{Instructor: instructor, Courses: courses}, nil
}
