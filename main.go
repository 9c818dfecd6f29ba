package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/roster/cmd"
	"github.com/thenoetrevino/roster/internal/cli"
)

func main() {
	err := cmd.Execute()

	// Command errors are already shown through the output formatter
	var exitErr *cli.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintln(os.Stderr, "Run 'roster --help' for usage.")
		}
	}

	os.Exit(cli.ExitCodeFor(err))
}
