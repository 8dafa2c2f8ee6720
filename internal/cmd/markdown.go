package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/markup"
	"github.com/spf13/cobra"
)

// NewMarkdownCommand creates the 'consolefmt markdown' command
func NewMarkdownCommand() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "markdown [text...]",
		Short: "Print inline Markdown with console styles",
		Long: `Markdown converts **strong**, *emphasis*, ` + "`code`" + `, [links](url) and
~~strikethrough~~ into styled segments and prints them.

With no arguments (or "-"), each non-empty line of standard input is printed
as its own console line. Styles come from the "markdown" section of the
config file.`,
		Example: `  consolefmt markdown "**done** in ` + "`2.3s`" + `"
  git log --oneline | consolefmt markdown`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := console.ParseLevel(channel)
			if err != nil {
				return err
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			parser := markup.NewParser(s.cfg.Markdown)
			emit := func(line string) {
				segments, styles := parser.Parse(line)
				if len(segments) == 0 {
					return
				}
				s.console.Print(level, segments, styles)
			}

			if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
				emit(strings.Join(args, " "))
				return nil
			}
			return eachLine(cmd.InOrStdin(), emit)
		},
	}

	cmd.Flags().StringVarP(&channel, "channel", "c", "log", "Channel: debug, log, info, warn, error")

	return cmd
}

// eachLine calls fn for every non-blank line of r.
func eachLine(r io.Reader, fn func(string)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fn(line)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}
