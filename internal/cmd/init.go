package cmd

import (
	"fmt"
	"os"

	"github.com/harrison/consolefmt/internal/config"
	"github.com/spf13/cobra"
)

// NewInitCommand creates the 'consolefmt init' command
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write the default configuration to $CONSOLEFMT_HOME/config.yaml
(or the path given with --config) so it can be edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString(flagConfig)
			if path == "" {
				var err error
				path, err = config.ConfigPath()
				if err != nil {
					return fmt.Errorf("failed to locate config: %w", err)
				}
			}

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			}

			if err := config.DefaultConfig().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}
