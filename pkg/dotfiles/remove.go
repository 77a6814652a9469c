package dotfiles

import (
	"fmt"
	"os"

	"github.com/dotrs/dotrs/pkg/filesystem"
	"github.com/dotrs/dotrs/pkg/logging"
)

// CleanupFailure is a tracked file that could not be removed
type CleanupFailure struct {
	Path string
	Err  error
}

func (f CleanupFailure) String() string {
	return fmt.Sprintf("%s: %v", f.Path, f.Err)
}

// removeTracked deletes each path and any parent directory the deletion
// leaves empty, up to the home directory. A path that is already gone counts
// as removed. Failures are collected rather than returned.
func (s *Syncer) removeTracked(targets []string) (removed []string, failures []CleanupFailure) {
	logger := logging.GetLogger("dotfiles")

	for _, path := range targets {
		logger.Debug().Str("path", path).Msg("Removing stale file")

		if err := s.fs.Remove(path); err != nil && !os.IsNotExist(err) {
			logger.Warn().Err(err).Str("path", path).Msg("Failed to remove file")
			failures = append(failures, CleanupFailure{Path: path, Err: err})
			continue
		}
		removed = append(removed, path)

		dirs, err := filesystem.RemoveEmptyParents(s.fs, path, s.cfg.HomeDir)
		if err != nil {
			logger.Error().Err(err).Str("path", path).Msg("Failed deleting empty directory")
		}
		for _, dir := range dirs {
			logger.Debug().Str("dir", dir).Msg("Removed empty directory")
		}
	}
	return removed, failures
}

func failedPaths(failures []CleanupFailure) []string {
	out := make([]string, 0, len(failures))
	for _, f := range failures {
		out = append(out, f.Path)
	}
	return out
}
