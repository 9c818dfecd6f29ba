package instructor

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	instructorservice "github.com/thenoetrevino/roster/internal/services/instructor"
)

// AddCmd returns the instructor add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new instructor",
		Long: `Add an instructor with a staff-issued instructor ID.

Examples:
  # Add an instructor (human-readable output)
  roster instructor add --instructor-id=I1001 --name="Grace Hopper" --age=45

  # With an email, JSON output for scripts
  roster instructor add --instructor-id=I1001 --name="Grace Hopper" --age=45 \
    --email=grace@example.com --json

  # Quiet mode for bash capture
  ID=$(roster instructor add --instructor-id=I1001 --name="Grace" --age=45 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	// Required flags
	cmd.Flags().String("instructor-id", "", "Instructor ID code, e.g. I1001 (required)")
	cmd.Flags().String("name", "", "Full name (required)")
	cmd.Flags().String("age", "", "Age in years, 0 to 150 (required)")
	for _, name := range []string{"instructor-id", "name", "age"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	// Optional flags
	cmd.Flags().String("email", "", "Email address")

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for adding an instructor
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()

	age, err := parser.ParseAge("age")
	if err != nil {
		return nil, err
	}
	email, err := parser.ParseStringOptional("email")
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

	instructor, err := cliInstance.App.InstructorService.CreateInstructor(ctx, instructorservice.CreateInstructorRequest{
		InstructorID: args.GetString("instructor-id", ""),
		Name:      args.GetString("name", ""),
		Age:       age,
		Email:     email,
	})
	if err != nil {
		return nil, err
	}

	return &instructorResult{Instructor: instructor, action: "added"}, nil
}
