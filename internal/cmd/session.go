package cmd

import (
	"fmt"
	"io"

	"github.com/harrison/consolefmt/internal/config"
	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/format"
	"github.com/harrison/consolefmt/internal/history"
	"github.com/harrison/consolefmt/internal/logger"
	"github.com/spf13/cobra"
)

// Global flag names shared by every subcommand.
const (
	flagConfig     = "config"
	flagLevel      = "level"
	flagColor      = "color"
	flagTimestamps = "timestamps"
	flagShowLevel  = "show-level"
	flagLogFile    = "log-file"
	flagHistory    = "history"
)

// defaultLogFile selects config.LogPath for --log-file or log_file.
const defaultLogFile = "default"

func addGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "Path to config file (default: $CONSOLEFMT_HOME/config.yaml)")
	flags.String(flagLevel, "", "Minimum channel printed: debug, log, info, warn, error")
	flags.String(flagColor, "", "Color output: auto, always, never")
	flags.Bool(flagTimestamps, false, "Prefix lines with [HH:MM:SS]")
	flags.Bool(flagShowLevel, false, "Prefix lines with the channel name")
	flags.String(flagLogFile, "", "Also append lines to this file (no value: $CONSOLEFMT_HOME/logs/console.log)")
	flags.Lookup(flagLogFile).NoOptDefVal = defaultLogFile
	flags.String(flagHistory, "", "Also record lines in this SQLite database")
}

// loadConfig reads the config file and applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	flags := cmd.Flags()

	path, _ := flags.GetString(flagConfig)
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to locate config: %w", err)
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	cfg.MergeWithFlags(config.Flags{
		LogLevel:   changedString(cmd, flagLevel),
		Color:      changedString(cmd, flagColor),
		Timestamps: changedBool(cmd, flagTimestamps),
		ShowLevel:  changedBool(cmd, flagShowLevel),
		LogFile:    changedString(cmd, flagLogFile),
		HistoryDB:  changedString(cmd, flagHistory),
	})

	if cfg.LogFile == defaultLogFile {
		if cfg.LogFile, err = config.LogPath(); err != nil {
			return nil, fmt.Errorf("failed to locate log file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// session is the sink stack and console for one command invocation.
type session struct {
	cfg      *config.Config
	console  *console.Console
	terminal *logger.ConsoleLogger
	file     *logger.FileLogger
	store    *history.Store
	errOut   io.Writer
}

// newSession wires the terminal sink plus the optional file and history sinks.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	s := &session{cfg: cfg, errOut: cmd.ErrOrStderr()}
	s.terminal = logger.NewConsoleLoggerWithConfig(logger.ConsoleConfig{
		Writer:     cmd.OutOrStdout(),
		ErrWriter:  cmd.ErrOrStderr(),
		Level:      cfg.LogLevel,
		Color:      cfg.Color,
		Timestamps: cfg.Timestamps,
		ShowLevel:  cfg.ShowLevel,
	})
	sinks := []console.Sink{s.terminal}

	if cfg.LogFile != "" {
		s.file, err = logger.NewFileLogger(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		s.file.OnError(s.reportError)
		sinks = append(sinks, s.file)
	}

	if cfg.HistoryDB != "" {
		s.store, err = history.NewStore(cfg.HistoryDB)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("open history store: %w", err)
		}
		sinks = append(sinks, history.NewSink(s.store, s.reportError))
	}

	s.console = console.New(logger.NewMulti(sinks...), console.WithPresets(cfg.PresetTable()))
	return s, nil
}

// formatOptions returns the configured separator and terminator.
func (s *session) formatOptions() []format.Option {
	return []format.Option{
		format.WithSeparator(s.cfg.Separator),
		format.WithTerminator(s.cfg.Terminator),
	}
}

func (s *session) reportError(err error) {
	fmt.Fprintf(s.errOut, "Error: %v\n", err)
}

// Close releases the log file and history database.
func (s *session) Close() error {
	var firstErr error
	if s.file != nil {
		if err := s.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close history store: %w", err)
		}
	}
	return firstErr
}
