package dataset

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/handler"
)

// BackupCmd returns the backup command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Write a consistent copy of the database to a new file",
		Long: `Write a consistent copy of the database to a new file. The copy is a
regular roster database and can be opened with --db. An existing file is
never overwritten.

Examples:
  roster backup --out=school-2024-09-01.db
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(&backupHandler{}),
	}

	cmd.Flags().String("out", "", "File to write (required)")
	if err := cmd.MarkFlagRequired("out"); err != nil {
		slog.Error("failed to mark flag as required", "flag", "out", "error", err)
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

// backupHandler implements handler.Handler for backup
type backupHandler struct{}

// Execute implements the Handler interface
func (h *backupHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	path, err := args.Parser().ParseString("out")
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

	if err := cliInstance.App.Backup(ctx, path); err != nil {
		return nil, err
	}

	counts, err := countAll(ctx, cliInstance.App.Repo())
	if err != nil {
		return nil, err
	}

	return &fileResult{Path: path, Format: "sqlite", Counts: counts, action: "Backed up to"}, nil
}
