package cmd

import (
	"fmt"
	"strings"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/format"
	"github.com/harrison/consolefmt/internal/preset"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
)

// NewPresetsCommand creates the 'consolefmt presets' command
func NewPresetsCommand() *cobra.Command {
	var showCSS bool

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List badge presets",
		Long: `List every badge preset, rendered as a sample badge.

Contextual presets are marked with the channel they print on. Presets added
in the config file are listed alongside the built-in ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			presets := s.console.Presets()
			names := presets.Names()
			width := 0
			for _, name := range names {
				width = max(width, runewidth.StringWidth(name))
			}

			for _, name := range names {
				// align the notes column; padding the name would widen the badge
				note := strings.Repeat(" ", width-runewidth.StringWidth(name))
				if preset.IsContextual(name) {
					note += fmt.Sprintf(" (%s)", strings.ToLower(console.BadgeLevel(name).String()))
				}
				if showCSS {
					css, _ := presets.Style(name)
					note += " " + css
				}
				s.console.Log([]string{format.Escape(name), format.Escape(note)}, []string{presets.BadgeStyle(name), ""})
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showCSS, "css", false, "Show each preset's CSS")

	return cmd
}
