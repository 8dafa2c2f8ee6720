package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/harrison/consolefmt/internal/config"
	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/history"
	"github.com/spf13/cobra"
)

// NewHistoryCommand creates the 'consolefmt history' command
func NewHistoryCommand() *cobra.Command {
	var (
		limit    int
		minLevel string
		raw      bool
		clearAll bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show lines recorded in the history database",
		Long: `Show the most recent lines recorded with --history (or history_db in the
config file), newest first.

Without either setting the default database $CONSOLEFMT_HOME/history.db is read.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			output := cmd.OutOrStdout()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			dbPath := cfg.HistoryDB
			if dbPath == "" {
				dbPath, err = config.HistoryPath()
				if err != nil {
					return fmt.Errorf("failed to get history database path: %w", err)
				}
			}

			if _, err := os.Stat(dbPath); os.IsNotExist(err) {
				fmt.Fprintf(output, "No history recorded yet.\n")
				fmt.Fprintf(output, "Database path: %s\n", dbPath)
				return nil
			}

			level, err := console.ParseLevel(minLevel)
			if err != nil {
				return err
			}

			store, err := history.NewStore(dbPath)
			if err != nil {
				return fmt.Errorf("open history store: %w", err)
			}
			defer store.Close()

			ctx := context.Background()
			if clearAll {
				n, err := store.Clear(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(output, "Deleted %d entries.\n", n)
				return nil
			}

			entries, err := store.List(ctx, history.Query{Limit: limit, MinLevel: level})
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(output, "No history recorded yet.")
				return nil
			}

			for _, e := range entries {
				text := e.Text
				if raw {
					text = fmt.Sprintf("%q %s", e.Format, strings.Join(quoteAll(e.Args), " "))
				}
				fmt.Fprintf(output, "%s [%s] %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"), e.Level, text)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of entries (0 for all)")
	cmd.Flags().StringVar(&minLevel, "min-level", "debug", "Only show entries at or above this channel")
	cmd.Flags().BoolVar(&raw, "raw", false, "Show the recorded format string and arguments")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Delete all recorded entries")

	return cmd
}

func quoteAll(args []string) []string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = fmt.Sprintf("%q", a)
	}
	return out
}
