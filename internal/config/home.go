package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeDirName is the per-project directory holding config and state.
const HomeDirName = ".consolefmt"

// HomeEnv overrides the home directory.
const HomeEnv = "CONSOLEFMT_HOME"

// Home returns the consolefmt home directory.
// Priority order:
//  1. CONSOLEFMT_HOME environment variable (if set)
//  2. .consolefmt in the current working directory
//
// The directory is not created; writers create what they need.
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return filepath.Join(cwd, HomeDirName), nil
}

// ConfigPath returns $CONSOLEFMT_HOME/config.yaml
func ConfigPath() (string, error) {
	return inHome(FileName)
}

// HistoryPath returns the default history database path
func HistoryPath() (string, error) {
	return inHome("history.db")
}

// LogPath returns the default log file path
func LogPath() (string, error) {
	return inHome(filepath.Join("logs", "console.log"))
}

func inHome(name string) (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, name), nil
}
