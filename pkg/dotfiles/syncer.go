package dotfiles

import (
	"github.com/dotrs/dotrs/pkg/config"
	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/filesystem"
	"github.com/dotrs/dotrs/pkg/git"
	"github.com/dotrs/dotrs/pkg/ledger"
	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/spf13/afero"
)

// Syncer performs dotfile operations for one configuration
type Syncer struct {
	cfg    *config.Config
	fs     afero.Fs
	runner git.Runner
	git    *git.Git
}

// Option configures a Syncer
type Option func(*Syncer)

// WithFS replaces the OS filesystem
func WithFS(fs afero.Fs) Option {
	return func(s *Syncer) { s.fs = fs }
}

// WithRunner replaces the git process runner
func WithRunner(r git.Runner) Option {
	return func(s *Syncer) { s.runner = r }
}

// New creates a Syncer for cfg
func New(cfg *config.Config, opts ...Option) *Syncer {
	s := &Syncer{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = filesystem.NewOS()
	}
	s.git = git.New(cfg.StageDir, s.runner)
	return s
}

// Config returns the configuration the syncer was built with
func (s *Syncer) Config() *config.Config {
	return s.cfg
}

// StageInitialized reports whether the stage holds a repository
func (s *Syncer) StageInitialized() bool {
	ok, err := afero.DirExists(s.fs, paths.GitDir(s.cfg.StageDir))
	return err == nil && ok
}

func (s *Syncer) requireStage() error {
	if !s.StageInitialized() {
		return errors.New(errors.ErrStageNotInitialized, "dotfiles stage has not been initialized").
			WithDetail("stage", s.cfg.StageDir)
	}
	return nil
}

// List returns the paths tracked by the ledger
func (s *Syncer) List() ([]string, error) {
	l, err := ledger.Open(s.fs, paths.LedgerPath(s.cfg.CacheDir))
	if err != nil {
		return nil, err
	}
	return l.Get(), nil
}
