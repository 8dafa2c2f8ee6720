package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for consolefmt
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consolefmt",
		Short: "Styled console output with self-healing format strings",
		Long: `consolefmt builds console format strings from text segments and CSS
style descriptors, reconciles mismatched lists instead of failing, and prints
the result to the terminal with the styles translated to ANSI colors.

Lines can also be appended to a log file and recorded in a SQLite history.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	addGlobalFlags(cmd)

	cmd.AddCommand(NewRenderCommand())
	cmd.AddCommand(NewBadgeCommand())
	cmd.AddCommand(NewPresetsCommand())
	cmd.AddCommand(NewMarkdownCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
