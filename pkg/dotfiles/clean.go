package dotfiles

import (
	"github.com/dotrs/dotrs/pkg/ledger"
	"github.com/dotrs/dotrs/pkg/logging"
	"github.com/dotrs/dotrs/pkg/paths"
)

// CleanOptions controls Clean
type CleanOptions struct {
	// Force clears the ledger even when some files could not be removed
	Force bool
}

// CleanResult describes one clean
type CleanResult struct {
	Removed  []string
	Failures []CleanupFailure
}

// Clean removes every tracked file from the home directory. Without Force,
// files that could not be removed stay in the ledger.
func (s *Syncer) Clean(opts CleanOptions) (*CleanResult, error) {
	logger := logging.GetLogger("dotfiles")

	l, err := ledger.Open(s.fs, paths.LedgerPath(s.cfg.CacheDir))
	if err != nil {
		return nil, err
	}

	removed, failures := s.removeTracked(l.Get())
	for _, f := range failures {
		logger.Error().Err(f.Err).Str("path", f.Path).Msg("Cleanup failed")
	}

	if opts.Force {
		l.Clear()
	} else {
		l.Set(failedPaths(failures))
	}
	if err := l.Store(); err != nil {
		return nil, err
	}

	return &CleanResult{Removed: removed, Failures: failures}, nil
}
