// Package cmd assembles the roster command tree
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/roster/internal/cli"
	"github.com/thenoetrevino/roster/internal/cli/course"
	"github.com/thenoetrevino/roster/internal/cli/dataset"
	"github.com/thenoetrevino/roster/internal/cli/enrollment"
	"github.com/thenoetrevino/roster/internal/cli/guide"
	"github.com/thenoetrevino/roster/internal/cli/instructor"
	"github.com/thenoetrevino/roster/internal/cli/student"
	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/logging"
)

// NewRootCmd builds the roster command with every subcommand attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "roster",
		Short: "Roster - school records from the terminal",
		Long: `Roster keeps students, instructors, courses and enrollments in a
single SQLite file. Run 'roster guide' for a walkthrough.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().String("db", "", "Database file (overrides config and $"+config.EnvDatabase+")")
	rootCmd.PersistentFlags().String("config", "", "Config file (default: $XDG_CONFIG_HOME/roster/config.yaml)")
	rootCmd.PersistentFlags().String("metrics-file", "", "Write Prometheus metrics to this file on exit")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	rootCmd.AddCommand(student.StudentCmd())
	rootCmd.AddCommand(instructor.InstructorCmd())
	rootCmd.AddCommand(course.CourseCmd())
	rootCmd.AddCommand(enrollment.EnrollmentCmd())
	rootCmd.AddCommand(dataset.ExportCmd())
	rootCmd.AddCommand(dataset.ImportCmd())
	rootCmd.AddCommand(dataset.BackupCmd())
	rootCmd.AddCommand(guide.GuideCmd())

	return rootCmd
}

// setup resolves the configuration, starts logging and applies the theme
// before any subcommand runs
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return startupError(err)
	}

	if err := logging.Init(cfg.Logging); err != nil {
		return startupError(fmt.Errorf("failed to initialize logging: %w", err))
	}
	styles.Init(cfg.ColorScheme)

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	return nil
}

// startupError prints err and returns it as an already reported failure
func startupError(err error) error {
	fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
	return &cli.ExitError{Code: cli.ExitGeneral, Err: err}
}

// loadConfig reads the config file and applies flag overrides on top
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	var cfg *config.Config
	var err error
	if path, _ := flags.GetString("config"); path != "" {
		cfg, err = config.LoadFrom(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if flags.Changed("db") {
		cfg.Database.Path, _ = flags.GetString("db")
	}
	if flags.Changed("metrics-file") {
		cfg.Metrics.Textfile, _ = flags.GetString("metrics-file")
	}
	return cfg, nil
}

// Run executes the command tree with args. Errors raised by cobra itself,
// such as unknown commands or a wrong argument count, are usage errors.
func Run(ctx context.Context, args []string) error {
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	var exitErr *cli.ExitError
	var usageErr *cli.UsageError
	if err != nil && !errors.As(err, &exitErr) && !errors.As(err, &usageErr) {
		err = &cli.UsageError{Err: err}
	}
	return err
}

// Execute runs roster with the process arguments. An interrupt cancels the
// context, which stops a running import between rows.
func Execute() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return Run(ctx, os.Args[1:])
}
