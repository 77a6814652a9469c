package dotfiles

import (
	"context"

	"github.com/dotrs/dotrs/pkg/git"
	"github.com/dotrs/dotrs/pkg/logging"
)

// WatchOperations runs a Syncer's operations the way the watch service
// needs them: apply with the recorded profile and no key, update with the
// default author and a generated message
type WatchOperations struct {
	Syncer *Syncer
}

func (w WatchOperations) Apply(ctx context.Context) error {
	res, err := w.Syncer.Apply(ctx, ApplyOptions{})
	if err != nil {
		return err
	}
	logger := logging.GetLogger("dotfiles")
	for _, f := range res.CleanupFailures {
		logger.Warn().Err(f.Err).Str("path", f.Path).Msg("Stale file kept")
	}
	return nil
}

func (w WatchOperations) Update(ctx context.Context) error {
	status, err := w.Syncer.Update(ctx, UpdateOptions{Author: git.DefaultCommitAuthor})
	if err != nil {
		return err
	}
	logger := logging.GetLogger("dotfiles")
	logger.Info().Str("status", status.String()).Msg("Update finished")
	return nil
}

func (w WatchOperations) Pull(ctx context.Context) error {
	return w.Syncer.Pull(ctx)
}
