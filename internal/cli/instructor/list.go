package instructor

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ListCmd returns the instructor list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List instructors",
		Long: `List instructors in the order they were added, or sorted by a column.

Examples:
  roster instructor list
  roster instructor list --sort=name
  roster instructor list --search=ada --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cli.AddListFlags(cmd, "id", "name", "age", "instructor_id")
	cli.AddOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing instructors
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

	instructors, err := cliInstance.App.InstructorService.ListInstructors(ctx, opts)
	if err != nil {
		return nil, err
	}
	return instructorList(instructors), nil
}
