package cli

import (
	"time"

	"github.com/spf13/cobra"
)

// AddOutputFlags registers the agent-friendly --json and --quiet flags
func AddOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}

// AddListFlags registers the --sort, --desc and --search flags used by
// list commands. sortKeys are shown in the help text.
func AddListFlags(cmd *cobra.Command, sortKeys ...string) {
	help := "Sort by column"
	if len(sortKeys) > 0 {
		help += " ("
		for i, k := range sortKeys {
			if i > 0 {
				help += ", "
			}
			help += k
		}
		help += ")"
	}
	cmd.Flags().String("sort", "", help)
	cmd.Flags().Bool("desc", false, "Reverse the sort order")
	cmd.Flags().String("search", "", "Case-insensitive match on name or code")
}

// FormatTime renders a timestamp for human-readable output
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02 15:04")
}
