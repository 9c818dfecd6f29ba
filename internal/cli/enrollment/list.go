package enrollment

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// ListCmd returns the enrollment list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List enrollments, a course roster, or a student's courses",
		Long: `Without filters, list every enrollment in the order it was made.

Examples:
  # Everything
  roster enrollment list

  # Roster of one course
  roster enrollment list --course=CS101

  # Courses of one student
  roster enrollment list --student=S1001 --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&listHandler{}),
	}

	cmd.Flags().String("course", "", "Show the roster of this course")
	cmd.Flags().String("student", "", "Show the courses of this student")
	cmd.MarkFlagsMutuallyExclusive("course", "student")

	cli.AddOutputFlags(cmd)

	return cmd
}

// listHandler implements handler.Handler for listing enrollments
type listHandler struct{}

// Execute implements the Handler interface
func (h *listHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	svc := cliInstance.App.EnrollmentService
	switch {
	case args.Changed("course"):
		roster, err := svc.GetCourseRoster(ctx, args.GetString("course", ""))
		if err != nil {
			return nil, err
		}
		return rosterList(roster), nil

	case args.Changed("student"):
		courses, err := svc.GetCoursesForStudent(ctx, args.GetString("student", ""))
		if err != nil {
			return nil, err
		}
		return studentCourses(courses), nil

	default:
		enrollments, err := svc.ListEnrollments(ctx)
		if err != nil {
			return nil, err
		}
		return enrollmentList(enrollments), nil
	}
}
