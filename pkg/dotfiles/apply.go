package dotfiles

import (
	"context"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/ledger"
	"github.com/dotrs/dotrs/pkg/logging"
	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/dotrs/dotrs/pkg/profile"
	"github.com/dotrs/dotrs/pkg/stage"
	"github.com/dotrs/dotrs/pkg/template"
	"github.com/spf13/afero"
)

// ApplyOptions selects what Apply renders with
type ApplyOptions struct {
	// Profile overrides the applied-profile record when set
	Profile string
	// DecryptionKey is needed only when the profile has encrypted values
	DecryptionKey string
}

// ApplyResult describes one apply
type ApplyResult struct {
	// Profile is the profile rendered with, empty when none
	Profile string
	// Written are the destination paths produced, in walk order
	Written []string
	// Removed are stale paths from the previous apply that were deleted
	Removed []string
	// CleanupFailures are stale paths that could not be deleted. They stay
	// in the ledger so the next apply or clean retries them.
	CleanupFailures []CleanupFailure
}

// Apply renders the stage into the home directory and reconciles the ledger
func (s *Syncer) Apply(ctx context.Context, opts ApplyOptions) (*ApplyResult, error) {
	logger := logging.GetLogger("dotfiles")
	done := logging.LogOperationStart(logger, "apply")
	defer done()

	if err := s.requireStage(); err != nil {
		return nil, err
	}

	name, err := s.effectiveProfile(opts.Profile)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("profile", name).Str("home", s.cfg.HomeDir).Msg("Applying stage")

	data, err := s.profileData(name, opts.DecryptionKey)
	if err != nil {
		return nil, err
	}

	written, err := s.render(ctx, template.NewRenderer(data))
	if err != nil {
		return nil, err
	}

	l, err := ledger.Open(s.fs, paths.LedgerPath(s.cfg.CacheDir))
	if err != nil {
		return nil, err
	}

	diff := l.Diff(written)
	removed, failures := s.removeTracked(diff.Removed)

	l.Set(append(append([]string(nil), written...), failedPaths(failures)...))
	if err := l.Store(); err != nil {
		return nil, err
	}

	if name != "" {
		if err := profile.WriteAppliedProfile(s.fs, s.cfg.CacheDir, name); err != nil {
			return nil, err
		}
	}

	logger.Info().
		Str("profile", name).
		Int("written", len(written)).
		Int("removed", len(removed)).
		Int("cleanup_failures", len(failures)).
		Msg("Stage applied")

	return &ApplyResult{
		Profile:         name,
		Written:         written,
		Removed:         removed,
		CleanupFailures: failures,
	}, nil
}

func (s *Syncer) effectiveProfile(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	name, found, err := profile.AppliedProfile(s.fs, s.cfg.CacheDir)
	if err != nil || !found {
		return "", err
	}
	return name, nil
}

func (s *Syncer) profileData(name, key string) (profile.Value, error) {
	if name == "" {
		return profile.Null, nil
	}

	tree, err := profile.NewStore(s.fs, s.cfg.StageDir).Load(name)
	if err != nil {
		return profile.Null, err
	}
	return profile.Resolve(tree, key)
}

// render walks the stage, mirroring directories and writing rendered files
func (s *Syncer) render(ctx context.Context, r *template.Renderer) ([]string, error) {
	logger := logging.GetLogger("dotfiles")
	var written []string

	err := stage.Walk(s.fs, s.cfg.StageDir, func(path, rel string, info os.FileInfo) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		dest := filepath.Join(s.cfg.HomeDir, rel)

		if info.IsDir() {
			if err := s.fs.MkdirAll(dest, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate, "failed to create %s", dest).
					WithDetail("path", dest)
			}
			return nil
		}

		content, err := afero.ReadFile(s.fs, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", path).
				WithDetail("path", path)
		}
		if !utf8.Valid(content) {
			return errors.Newf(errors.ErrFileRead, "%s is not valid UTF-8", rel).
				WithDetail("path", path)
		}

		rendered, err := r.Render(rel, string(content))
		if err != nil {
			return err
		}

		if err := afero.WriteFile(s.fs, dest, []byte(rendered), info.Mode().Perm()); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", dest).
				WithDetail("path", dest)
		}

		written = append(written, dest)
		logger.Debug().Str("from", path).Str("to", dest).Msg("Rendered")
		return nil
	})
	if err != nil {
		return nil, err
	}
	return written, nil
}
