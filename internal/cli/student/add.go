package student

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// AddCmd returns the student add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new student",
		Long: `Add a student with a school-issued student ID.

Examples:
  # Add a student (human-readable output)
  roster student add --student-id=S1001 --name="Ada Lovelace" --age=20

  # With an email, JSON output for scripts
  roster student add --student-id=S1001 --name="Ada Lovelace" --age=20 \
    --email=ada@example.com --json

  # Quiet mode for bash capture
  ID=$(roster student add --student-id=S1001 --name="Ada" --age=20 --quiet)
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	// Required flags
	cmd.Flags().String("student-id", "", "Student ID code, e.g. S1001 (required)")
	cmd.Flags().String("name", "", "Full name (required)")
	cmd.Flags().String("age", "", "Age in years, 0 to 150 (required)")
	for _, name := range []string{"student-id", "name", "age"} {
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

// addHandler implements handler.Handler for adding a student
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

	student, err := cliInstance.App.StudentService.CreateStudent(ctx, studentservice.CreateStudentRequest{
		StudentID: args.GetString("student-id", ""),
		Name:      args.GetString("name", ""),
		Age:       age,
		Email:     email,
	})
	if err != nil {
		return nil, err
	}

	return &studentResult{Student: student, action: "added"}, nil
}
