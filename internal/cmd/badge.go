package cmd

import (
	"strings"

	"github.com/harrison/consolefmt/internal/display"
	"github.com/harrison/consolefmt/internal/preset"
	"github.com/spf13/cobra"
)

type badgeOptions struct {
	preset string
	style  string
	fg     string
	bg     string
	css    string
}

// NewBadgeCommand creates the 'consolefmt badge' command
func NewBadgeCommand() *cobra.Command {
	opts := &badgeOptions{}

	cmd := &cobra.Command{
		Use:   "badge <label> [message...]",
		Short: "Print a styled badge followed by a message",
		Long: `Badge prints a short label styled as a pill, followed by an unstyled message.

Contextual presets route to a matching channel: error, blame and alert print
on the error channel, warn and userError on the warning channel, info on the
info channel and debug on the debug channel. Everything else prints on log.

Use --fg/--bg for a one-off color pair, or --style for raw CSS.`,
		Example: `  consolefmt badge BUILD "passed in 3s" --preset success
  consolefmt badge DEPLOY "rolling out" --fg white --bg purple --css "font-style: italic"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBadge(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.preset, "preset", "p", "", "Preset name (see 'consolefmt presets')")
	cmd.Flags().StringVar(&opts.style, "style", "", "Raw CSS for the badge")
	cmd.Flags().StringVar(&opts.fg, "fg", "", "Text color for a quick custom badge")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "Background color for a quick custom badge")
	cmd.Flags().StringVar(&opts.css, "css", "", "Extra CSS for a quick custom badge")

	return cmd
}

func runBadge(cmd *cobra.Command, args []string, opts *badgeOptions) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	label := args[0]
	message := strings.Join(args[1:], " ")

	switch {
	case opts.style != "":
		s.console.BadgeCustom(label, message, opts.style)
	case opts.fg != "" || opts.bg != "":
		s.console.BadgeCustomQuick(label, message, opts.fg, opts.bg, opts.css)
	case opts.preset == "":
		s.console.Badge(label, message, "")
	default:
		presets := s.console.Presets()
		if !presets.Has(opts.preset) {
			warning := display.UnknownPreset(opts.preset, preset.Default, presets.Suggest(opts.preset, 3))
			warning.Display(cmd.ErrOrStderr(), s.terminal.ColorEnabled())
			s.console.Badge(label, message, preset.Default)
			return nil
		}
		s.console.BadgeAs(opts.preset, label, message)
	}
	return nil
}
