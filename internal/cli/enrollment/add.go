package enrollment

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	enrollmentservice "github.com/thenoetrevino/roster/internal/services/enrollment"
)

// AddCmd returns the enrollment add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Enroll a student in a course",
		Long: `Enroll an existing student in an existing course. A student can be
enrolled in a given course only once.

Examples:
  roster enrollment add --student=S1001 --course=CS101
  roster enrollment add --student=S1001 --course=CS101 --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	// Required flags
	cmd.Flags().String("student", "", "Student ID (required)")
	cmd.Flags().String("course", "", "Course ID (required)")
	for _, name := range []string{"student", "course"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			slog.Error("failed to mark flag as required", "flag", name, "error", err)
		}
	}

	// Agent-friendly flags
	cli.AddOutputFlags(cmd)

	return cmd
}

// addHandler implements handler.Handler for enrolling a student
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	studentID, err := args.MustGetString("student")
	if err != nil {
		return nil, err
	}
	courseID, err := args.MustGetString("course")
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

	enrollment, err := cliInstance.App.EnrollmentService.Enroll(ctx, enrollmentservice.EnrollRequest{
		StudentID: studentID,
		CourseID:  courseID,
	})
	if err != nil {
		return nil, err
	}

	return &enrollmentResult{Enrollment: enrollment}, nil
}
