package course

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	courseservice "github.com/thenoetrevino/roster/internal/services/course"
)

// AddCmd returns the course add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new course",
		Long: `Add a course, optionally taught by an existing instructor.

Examples:
  # Unassigned course
  roster course add --course-id=CS101 --name="Compilers"

  # With an instructor
  roster course add --course-id=CS101 --name="Compilers" --instructor=I1001

  # Quiet mode for bash capture
  ID=$(roster course add --course-id=CS101 --name="Compilers" --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	// Required flags
	cmd.Flags().String("course-id", "", "Course ID code, e.g. CS101 (required)")
	cmd.Flags().String("name", "", "Course name (required)")
	for _, name := range []string{"course-id", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	// Optional flags
	cmd.Flags().String("instructor", "", "Instructor ID of the teacher")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for adding a course
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	instructor, err := args.Parser().ParseStringChanged("instructor")
	if err != nil {
		return nil, err
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	course, err := cliInstance.App.CourseService.CreateCourse(ctx, courseservice.CreateCourseRequest{
		CourseID:     args.GetString("course-id", ""),
		Name:         args.GetString("name", ""),
		InstructorID: instructor,
	})
	if err != nil {
		return nil, err
	}

	return &courseResult{Course: course, action: "added"}, nil
}
