package course

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	courseservice "github.com/thenoetrevino/roster/internal/services/course"
)

// UpdateCmd returns the course update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <course-id>",
		Short: "Rename a course or change its instructor",
		Long: `Update the given fields of a course. Fields that are not passed keep
their current value. The course ID itself cannot be changed.

Examples:
  roster course update CS101 --name="Compiler Construction"
  roster course update CS101 --instructor=I1002
  roster course update CS101 --clear-instructor
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(&updateHandler{}),
	}

	cmd.Flags().String("name", "", "New course name")
	cmd.Flags().String("instructor", "", "Instructor ID of the new teacher")
	cmd.Flags().Bool("clear-instructor", false, "Leave the course without an instructor")
	cmd.MarkFlagsMutuallyExclusive("instructor", "clear-instructor")

	cli.AddOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for updating a course
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()

	name, err := parser.ParseStringChanged("name")
	if err != nil {
		return nil, err
	}
	instructor, err := parser.ParseStringChanged("instructor")
	if err != nil {
		return nil, err
	}
	clearInstructor, err := parser.ParseBool("clear-instructor")
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

	current, err := cliInstance.App.CourseService.GetCourseByCode(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	course, err := cliInstance.App.CourseService.UpdateCourse(ctx, courseservice.UpdateCourseRequest{
		ID:              current.ID,
		Name:            name,
		InstructorID:    instructor,
		ClearInstructor: clearInstructor,
	})
	if err != nil {
		return nil, err
	}

	return &courseResult{Course: course, action: "updated"}, nil
}
