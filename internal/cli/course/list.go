package course

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ListCmd returns the course list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses with their instructor and enrollment count",
		Long: `List courses in the order they were added, or sorted by a column.

Examples:
  roster course list
  roster course list --sort=instructor
  roster course list --search=cs --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cli.AddListFlags(cmd, "id", "name", "course_id", "instructor")
	cli.AddOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing courses
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	opts, err := args.Parser().ParseListOptions()
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

	courses, err := cliInstance.App.CourseService.ListCourses(ctx, opts)
	if err != nil {
		return nil, err
	}
	return courseList(courses), nil
}
