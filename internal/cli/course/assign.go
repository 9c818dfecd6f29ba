package course

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// AssignCmd returns the course assign subcommand
func AssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <course-id> <instructor-id>",
		Short: "Assign an instructor to a course",
		Long: `Assign an existing instructor to a course, replacing any current one.

Examples:
  roster course assign CS101 I1001
`,
		Args: cobra.ExactArgs(2),
		RunE: handler.SimpleCommand(handler.HandlerFunc(assign)),
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// assign sets the instructor named by the second argument on the course
// named by the first
func assign(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	course, err := cliInstance.App.CourseService.AssignInstructor(ctx, args.Arg(0), args.Arg(1))
	if err != nil {
		return nil, err
	}

	return &courseResult{Course: course, action: "assigned"}, nil
}
