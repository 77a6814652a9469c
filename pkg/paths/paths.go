package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/dotrs/dotrs/pkg/errors"
)

// Environment variable names
const (
	// EnvConfigFile points at an explicit configuration file
	EnvConfigFile = "DOTRS_CONFIG"

	// EnvStateHome is the XDG state directory variable
	EnvStateHome = "XDG_STATE_HOME"

	// EnvConfigHome is the XDG config directory variable
	EnvConfigHome = "XDG_CONFIG_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Fixed names inside the stage and cache directories. These are part of the
// on-disk contract and are not user-configurable.
const (
	// AppName is the directory name used below XDG roots
	AppName = "dotrs"

	// GitDirName is the version control metadata directory
	GitDirName = ".git"

	// GitIgnoreFile is the version control ignore file, never applied
	GitIgnoreFile = ".gitignore"

	// ProfilesDirName holds the profile documents inside the stage
	ProfilesDirName = ".dotrs-profiles"

	// IgnoreFileName is the dotrs-specific ignore file
	IgnoreFileName = ".dotrsignore"

	// AppliedProfileFile records the last applied profile inside the cache dir
	AppliedProfileFile = ".dotrs-applied-profile"

	// LedgerFile records the files written by the last apply inside the cache dir
	LedgerFile = "tracked_files"

	// LogFileName is the name of the log file
	LogFileName = "dotrs.log"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"
)

// defaults relative to the user's home directory
var (
	defaultStageDir = filepath.Join(".local", AppName, "stage")
	defaultCacheDir = filepath.Join(".local", AppName, "cache")
)

// HomeDir returns the current user's home directory
func HomeDir() (string, error) {
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return home, nil
	}
	if xdg.Home != "" {
		return xdg.Home, nil
	}
	return "", errors.New(errors.ErrConfigLoad, "failed getting home directory")
}

// DefaultStageDir returns ~/.local/dotrs/stage
func DefaultStageDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultStageDir), nil
}

// DefaultCacheDir returns ~/.local/dotrs/cache
func DefaultCacheDir() (string, error) {
	home, err := HomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, defaultCacheDir), nil
}

// StateDir returns the dotrs state directory. XDG_STATE_HOME is read at call
// time so tests can redirect it.
func StateDir() string {
	if stateHome := os.Getenv(EnvStateHome); stateHome != "" {
		return filepath.Join(stateHome, AppName)
	}
	return filepath.Join(xdg.StateHome, AppName)
}

// LogFilePath returns the path of the dotrs log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// ConfigFilePath returns the user configuration file location
func ConfigFilePath() string {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		return ExpandHome(explicit)
	}
	if configHome := os.Getenv(EnvConfigHome); configHome != "" {
		return filepath.Join(configHome, AppName, ConfigFileName)
	}
	return filepath.Join(xdg.ConfigHome, AppName, ConfigFileName)
}

// GitDir returns the version control metadata directory of a stage
func GitDir(stageDir string) string {
	return filepath.Join(stageDir, GitDirName)
}

// ProfilesDir returns the profile directory of a stage
func ProfilesDir(stageDir string) string {
	return filepath.Join(stageDir, ProfilesDirName)
}

// LedgerPath returns the ledger file inside a cache directory
func LedgerPath(cacheDir string) string {
	return filepath.Join(cacheDir, LedgerFile)
}

// AppliedProfilePath returns the applied-profile record inside a cache directory
func AppliedProfilePath(cacheDir string) string {
	return filepath.Join(cacheDir, AppliedProfileFile)
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	home, err := HomeDir()
	if err != nil {
		home = os.Getenv(EnvHome)
		if home == "" {
			return path
		}
	}

	if len(path) == 1 {
		return home
	}

	// ~user is not expanded
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(home, path[2:])
	}
	return path
}

// IsWithin reports whether path is root or lies below it
func IsWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
