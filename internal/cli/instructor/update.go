package instructor

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	instructorservice "github.com/thenoetrevino/roster/internal/services/instructor"
)

// UpdateCmd returns the instructor update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <instructor-id>",
		Short: "Update an instructor's name, age or email",
		Long: `Update the given fields of an instructor. Fields that are not passed keep
their current value. The instructor ID itself cannot be changed.

Examples:
  roster instructor update I1001 --age=46
  roster instructor update I1001 --name="Grace Murray" --email=grace@example.com

  # Clear the email
  roster instructor update I1001 --email=""
`,
		Args: cobra.ExactArgs(1),
		RunE: handler.SimpleCommand(&updateHandler{}),
	}

	cmd.Flags().String("name", "", "New name")
	cmd.Flags().String("age", "", "New age")
	cmd.Flags().String("email", "", "New email; empty clears it")

	cli.AddOutputFlags(cmd)

	return cmd
}

// updateHandler implements handler.Handler for updating an instructor
type updateHandler struct{}

// Execute implements the Handler interface
func (h *updateHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	parser := args.Parser()

	name, err := parser.ParseStringChanged("name")
	if err != nil {
		return nil, err
	}
	age, err := parser.ParseAgeChanged("age")
	if err != nil {
		return nil, err
	}
	email, err := parser.ParseStringChanged("email")
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

	current, err := cliInstance.App.InstructorService.GetInstructorByCode(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	instructor, err := cliInstance.App.InstructorService.UpdateInstructor(ctx, instructorservice.UpdateInstructorRequest{
		ID:    current.ID,
		Name:  name,
		Age:   age,
		Email: email,
	})
	if err != nil {
		return nil, err
	}

	return &instructorResult{Instructor: instructor, action: "updated"}, nil
}
