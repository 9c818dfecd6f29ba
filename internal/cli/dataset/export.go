package dataset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
	"github.com/thenoetrevino/roster/internal/exchange"
)

// ExportCmd returns the export command
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every record to an xlsx workbook or a JSON snapshot",
		Long: `Export students, instructors, courses and enrollments to one file.
The format follows the file extension unless --format is given.

Examples:
  roster export --out=school.xlsx
  roster export --out=school.json
  roster export --out=backup.dat --format=json --force
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&exportHandler{}),
	}

	cmd.Flags().String("out", "", "File to write (required)")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "out", "error", err)
	}
	cmd.Flags().String("format", "", "xlsx or json (default: from the file extension)")
	cmd.Flags().Bool("force", false, "Overwrite an existing file")

	cli.AddOutputFlags(cmd)

	return cmd
}

// exportHandler implements handler.Handler for export
type exportHandler struct{}

// Execute implements the Handler interface
func (h *exportHandler) Execute(ctx context.Context, args *handler.Arguments) (result any, err error) {
	path, err := args.Parser().ParseString("out")
	if err != nil {
		return nil, err
	}
	format, err := resolveFormat(args.GetString("format", ""), path)
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

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if args.GetBool("force") {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return nil, &cli.UsageError{Err: fmt.Errorf("%s already exists; pass --force to overwrite it", path)}
		}
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, closeErr)
		}
		// Partial exports are removed
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	ex := cliInstance.App.Exchange()
	switch format {
	case exchange.FormatXLSX:
		err = ex.ExportXLSX(ctx, f)
	default:
		err = ex.ExportJSON(ctx, f)
	}
	if err != nil {
		return nil, err
	}

	counts, err := countAll(ctx, cliInstance.App.Repo())
	if err != nil {
		return nil, err
	}
	slog.Info("data set exported", "path", path, "format", format)

	return &fileResult{Path: path, Format: format, Counts: counts, action: "Exported to"}, nil
}
