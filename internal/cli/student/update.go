package student

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	studentservice "github.com/thenoetrevino/roster/internal/services/student"
)

// UpdateCmd returns the student update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <student-id>",
		Short: "Update a student's name, age or email",
		Long: `Update the given fields of a student. Fields that are not passed keep
their current value. The student ID itself cannot be changed.

Examples:
  roster student update S1001 --age=21
  roster student update S1001 --name="Ada King" --email=ada@example.com

  # Clear the email
  roster student update S1001 --email=""
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

// updateHandler implements handler.Handler for updating a student
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

	current, err := cliInstance.App.StudentService.GetStudentByCode(ctx, args.Arg(0))
	if err != nil {
		return nil, err
	}

	student, err := cliInstance.App.StudentService.UpdateStudent(ctx, studentservice.UpdateStudentRequest{
		ID:    current.ID,
		Name:  name,
		Age:   age,
		Email: email,
	})
	if err != nil {
		return nil, err
	}

	return &studentResult{Student: student, action: "updated"}, nil
}
