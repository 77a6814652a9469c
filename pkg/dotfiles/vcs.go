package dotfiles

import (
	"context"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/git"
	"github.com/dotrs/dotrs/pkg/logging"
)

// DefaultBranch is checked out by Import when no branch is given
const DefaultBranch = "main"

// UpdateOptions controls Update
type UpdateOptions struct {
	// Author defaults to git.DefaultCommitAuthor
	Author string
	// Message defaults to one generated from the changed files
	Message string
}

// ImportOptions controls Import
type ImportOptions struct {
	URL    string
	Branch string
}

// Pull pulls the stage's current branch from its remote
func (s *Syncer) Pull(ctx context.Context) error {
	if err := s.requireStage(); err != nil {
		return err
	}
	defer logging.LogOperationStart(logging.GetLogger("dotfiles"), "pull")()
	return s.git.Pull(ctx)
}

// Update publishes local stage changes to the remote
func (s *Syncer) Update(ctx context.Context, opts UpdateOptions) (git.UpdateStatus, error) {
	if err := s.requireStage(); err != nil {
		return git.NoChanges, err
	}
	defer logging.LogOperationStart(logging.GetLogger("dotfiles"), "update")()
	return s.git.Update(ctx, opts.Author, opts.Message)
}

// Import initializes the stage as a checkout of opts.URL
func (s *Syncer) Import(ctx context.Context, opts ImportOptions) error {
	if opts.URL == "" {
		return errors.New(errors.ErrInvalidInput, "repository URL is required")
	}
	branch := opts.Branch
	if branch == "" {
		branch = DefaultBranch
	}

	if s.StageInitialized() {
		return errors.New(errors.ErrStageAlreadyInitialized, "stage dir already contains a git repository").
			WithDetail("stage", s.cfg.StageDir)
	}
	if err := s.fs.MkdirAll(s.cfg.StageDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create stage dir %s", s.cfg.StageDir)
	}

	logger := logging.GetLogger("dotfiles")
	logger.Info().
		Str("url", opts.URL).
		Str("branch", branch).
		Msg("Importing stage")

	if err := s.git.Init(ctx); err != nil {
		return err
	}
	if err := s.git.RemoteAdd(ctx, git.DefaultRemote, opts.URL); err != nil {
		return err
	}
	if err := s.git.FetchAll(ctx); err != nil {
		return err
	}
	return s.git.Checkout(ctx, branch)
}

// Status lists stage changes that the next update would publish
func (s *Syncer) Status() ([]git.Change, error) {
	if err := s.requireStage(); err != nil {
		return nil, err
	}
	return git.WorktreeStatus(s.cfg.StageDir)
}
