package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/consolefmt/internal/console"
	"github.com/harrison/consolefmt/internal/filelock"
	"github.com/harrison/consolefmt/internal/markup"
	"github.com/harrison/consolefmt/internal/preset"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up inside the home directory.
const FileName = "config.yaml"

// Config represents consolefmt configuration options
type Config struct {
	// LogLevel is the minimum channel printed (debug, log, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// Color is auto, always or never
	Color string `yaml:"color"`

	// Timestamps prefixes terminal lines with [HH:MM:SS]
	Timestamps bool `yaml:"timestamps"`

	// ShowLevel prefixes terminal lines with the channel name
	ShowLevel bool `yaml:"show_level"`

	// Separator is written between segments
	Separator string `yaml:"separator"`

	// Terminator is written after the last segment
	Terminator string `yaml:"terminator"`

	// BadgeSuffix is appended to every badge preset style
	BadgeSuffix string `yaml:"badge_suffix"`

	// Presets adds or replaces badge presets by name
	Presets map[string]string `yaml:"presets"`

	// Markdown overrides the styles used by the markdown command
	Markdown markup.Theme `yaml:"markdown"`

	// LogFile, when set, also appends every line to this file
	LogFile string `yaml:"log_file"`

	// HistoryDB, when set, records every line in this SQLite database
	HistoryDB string `yaml:"history_db"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "debug",
		Color:       "auto",
		BadgeSuffix: preset.BadgeSuffix,
		Presets:     map[string]string{},
		Markdown:    markup.DefaultTheme(),
	}
}

// LoadConfig loads configuration from path.
// A missing file yields the defaults; a malformed one is an error.
// Keys present in the file override the defaults, including empty strings.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Presets == nil {
		cfg.Presets = map[string]string{}
	}
	cfg.Markdown = cfg.Markdown.Merge(markup.DefaultTheme())

	return cfg, nil
}

// LoadConfigFromDir loads configuration from .consolefmt/config.yaml in dir.
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, HomeDirName, FileName))
}

// Save writes cfg to path as YAML, atomically and under the file's lock.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := filelock.LockAndWrite(path, data); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Flags holds command-line overrides. Nil fields leave the config untouched.
type Flags struct {
	LogLevel   *string
	Color      *string
	Timestamps *bool
	ShowLevel  *bool
	LogFile    *string
	HistoryDB  *string
}

// MergeWithFlags merges CLI flags into the configuration.
// Non-nil flag values take precedence over the config file.
func (c *Config) MergeWithFlags(f Flags) {
	if f.LogLevel != nil {
		c.LogLevel = *f.LogLevel
	}
	if f.Color != nil {
		c.Color = *f.Color
	}
	if f.Timestamps != nil {
		c.Timestamps = *f.Timestamps
	}
	if f.ShowLevel != nil {
		c.ShowLevel = *f.ShowLevel
	}
	if f.LogFile != nil {
		c.LogFile = *f.LogFile
	}
	if f.HistoryDB != nil {
		c.HistoryDB = *f.HistoryDB
	}
}

// Validate validates the configuration values
func (c *Config) Validate() error {
	if _, err := console.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, log, info, warn, error", c.LogLevel)
	}

	switch strings.ToLower(c.Color) {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("invalid color %q, must be one of: auto, always, never", c.Color)
	}

	for name := range c.Presets {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("presets cannot contain an empty name")
		}
	}

	return nil
}

// PresetTable returns the built-in presets with the configured overrides applied.
func (c *Config) PresetTable() *preset.Presets {
	return preset.New(preset.Table(c.Presets), c.BadgeSuffix)
}
