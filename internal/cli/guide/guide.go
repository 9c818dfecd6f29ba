// Package guide prints the roster user guide
package guide

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideContent string

// wordWrap is the column the rendered guide wraps at
const wordWrap = 80

// GuideCmd returns the guide command
func GuideCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guide",
		Short: "Show the roster user guide",
		Long: `Show a short guide to roster's records, commands, exit codes and
configuration. Use --raw for the markdown source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetBool("raw")
			if raw {
				_, err := fmt.Fprint(cmd.OutOrStdout(), guideContent)
				return err
			}

			rendered, err := Render(wordWrap)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().Bool("raw", false, "Print the guide as markdown")

	return cmd
}

// Render returns the guide rendered for the terminal
func Render(width int) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(guideContent)
	if err != nil {
		return "", fmt.Errorf("failed to render guide: %w", err)
	}
	return out, nil
}
