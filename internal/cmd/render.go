package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/format"
	"github.com/harrison/consolefmt/internal/logger"
	"github.com/spf13/cobra"
)

// renderOptions holds the flags of the render command.
type renderOptions struct {
	styles     []string
	separator  string
	terminator string
	preText    string
	postText   string
	subst      bool
	channel    string
	args       bool
}

// NewRenderCommand creates the 'consolefmt render' command
func NewRenderCommand() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render <segment>...",
		Short: "Print segments with one style descriptor each",
		Long: `Render builds a console format string with a %c marker before every
segment and prints it with the given style descriptors.

Segment and style counts do not have to match: the shorter list is padded
and a warning explains the adjustment. With --subst, descriptors may also
fill %s, %d, %i, %f, %o and %O flags written inside the segments.`,
		Example: `  consolefmt render "OK" " all checks passed" -s "color: lime; font-weight: bold" -s ""
  consolefmt render --subst "Value: %d" -s "color: red" -s 10
  consolefmt render --args "a" "b" -s "color: red"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.styles, "style", "s", nil, "Style descriptor for the next segment (repeatable)")
	cmd.Flags().StringVar(&opts.separator, "sep", "", "Text written between segments (default from config)")
	cmd.Flags().StringVar(&opts.terminator, "end", "", "Text written after the last segment (default from config)")
	cmd.Flags().StringVar(&opts.preText, "pre", "", "Unstyled text written before the first marker")
	cmd.Flags().StringVar(&opts.postText, "post", "", "Unstyled text passed after the descriptors")
	cmd.Flags().BoolVar(&opts.subst, "subst", false, "Reconcile substitution flags inside segments with descriptors")
	cmd.Flags().StringVarP(&opts.channel, "channel", "c", "log", "Channel: debug, log, info, warn, error")
	cmd.Flags().BoolVar(&opts.args, "args", false, "Print the sink calls as JSON instead of rendering them")

	return cmd
}

func runRender(cmd *cobra.Command, segments []string, opts *renderOptions) error {
	level, err := console.ParseLevel(opts.channel)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	fopts := s.formatOptions()
	if cmd.Flags().Changed("sep") {
		fopts = append(fopts, format.WithSeparator(opts.separator))
	}
	if cmd.Flags().Changed("end") {
		fopts = append(fopts, format.WithTerminator(opts.terminator))
	}
	fopts = append(fopts, format.WithPreText(opts.preText), format.WithPostText(opts.postText))
	if opts.subst {
		fopts = append(fopts, format.WithSubstitutions())
	}

	if opts.args {
		return printArgs(cmd, s, level, segments, opts.styles, fopts)
	}

	s.console.Print(level, segments, opts.styles, fopts...)
	return nil
}

// printArgs records the calls in memory and prints them as JSON.
func printArgs(cmd *cobra.Command, s *session, level console.Level, segments, styles []string, fopts []format.Option) error {
	mem := logger.NewMemorySink()
	c := console.New(mem, console.WithPresets(s.console.Presets()))
	c.Print(level, segments, styles, fopts...)

	type call struct {
		Channel string `json:"channel"`
		Format  string `json:"format"`
		Args    []any  `json:"args"`
	}
	entries := mem.Entries()
	calls := make([]call, len(entries))
	for i, e := range entries {
		args := e.Args
		if args == nil {
			args = []any{}
		}
		calls[i] = call{Channel: strings.ToLower(e.Level.String()), Format: e.Format, Args: args}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(calls); err != nil {
		return fmt.Errorf("encode calls: %w", err)
	}
	return nil
}
