package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/exchange"
)

// ImportCmd returns the import command
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import records from an xlsx workbook or a JSON snapshot",
		Long: `Import records written by roster export, or a workbook laid out the
same way. Every row is validated like an add; rows that fail are skipped
and listed in the report while the rest are kept.

Examples:
  roster import --in=school.xlsx
  roster import --in=school.json --json
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&importHandler{}),
	}

	cmd.Flags().String("in", "", "File to read (required)")
	if err := cmd.MarkFlagRequired("in"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "in", "error", err)
	}
	cmd.Flags().String("format", "", "xlsx or json (default: from the file extension)")

	cli.AddOutputFlags(cmd)

	return cmd
}

// importResult wraps the import report for output
type importResult struct {
	*exchange.ImportReport
	Created int `json:"created"`
}

// QuietLines implements cli.QuietLister, one line per skipped row
func (r *importResult) QuietLines() []string {
	lines := make([]string, len(r.Skipped))
	for i, s := range r.Skipped {
		lines[i] = s.Error()
	}
	return lines
}

// RenderHuman implements cli.HumanRenderer
func (r *importResult) RenderHuman() string {
	var b strings.Builder
	fmt.Fprintf(&b, "✓ Imported %d records: %d students, %d instructors, %d courses, %d enrollments",
		r.Created, r.Students, r.Instructors, r.Courses, r.Enrollments)

	if len(r.Skipped) > 0 {
		skipped := make([]string, len(r.Skipped))
		for i, s := range r.Skipped {
			skipped[i] = s.Error()
		}
		b.WriteString("\n")
		b.WriteString(styles.WarningStyle.Render(fmt.Sprintf("%d rows skipped", len(r.Skipped))))
		b.WriteString("\n")
		b.WriteString(styles.Section("Skipped", "", skipped...))
	}
	return b.String()
}

// importHandler implements handler.Handler for import
type importHandler struct{}

// Execute implements the Handler interface
func (h *importHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	path, err := args.Parser().ParseString("in")
	if err != nil {
		return nil, err
	}
	format, err := resolveFormat(args.GetString("format", ""), path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("failed to close import file", "path", path, "error", err)
		}
	}()

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("failed to close CLI", "error", err)
		}
	}()

	ex := cliInstance.App.Exchange()
	var report *exchange.ImportReport
	switch format {
	case exchange.FormatXLSX:
		report, err = ex.ImportXLSX(ctx, f)
	default:
		report, err = ex.ImportJSON(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	return &importResult{ImportReport: report, Created: report.Created()}, nil
}
