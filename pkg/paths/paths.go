// Package paths provides centralized path handling for dotup.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dotup-sh/dotup/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for dotup
	EnvConfigDir = "DOTUP_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for dotup
	EnvStateDir = "DOTUP_STATE_DIR"
)

// Default directories and files
const (
	// AppDirName is the directory name for dotup-specific files
	AppDirName = "dotup"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "dotup.toml"

	// BackupsDir is the subdirectory for config backups
	BackupsDir = "backups"

	// LogFileName is the name of the log file
	LogFileName = "dotup.log"
)

// ConfigDir returns the directory holding the user configuration file.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFilePath returns the full path of the user configuration file.
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for dotup state (backups, logs).
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return dir
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// BackupDir returns the default directory for config file backups.
func BackupDir() string {
	return filepath.Join(StateDir(), BackupsDir)
}

// LogFilePath returns the full path of the log file.
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// GetHomeDirectory returns the user's home directory.
// It first tries os.UserHomeDir(), then falls back to the HOME environment
// variable. If both fail, it returns an error rather than using dangerous
// defaults.
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err == nil && homeDir != "" {
		return homeDir, nil
	}

	homeDir = os.Getenv("HOME")
	if homeDir != "" {
		return homeDir, nil
	}

	return "", errors.New(errors.ErrFileAccess,
		"unable to determine home directory: neither os.UserHomeDir() nor HOME environment variable are available")
}

// ExpandHome expands a leading ~ to the user's home directory.
// Paths without a ~ prefix are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path == "~" {
		return GetHomeDirectory()
	}
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := GetHomeDirectory()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
