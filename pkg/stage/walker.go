package stage

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/monochromegane/go-gitignore"
	"github.com/spf13/afero"
)

// WalkFunc is called for every entry Walk keeps. path is absolute, rel is
// relative to the stage root.
type WalkFunc func(path, rel string, info os.FileInfo) error

var (
	excludedDirs  = map[string]bool{paths.GitDirName: true, paths.ProfilesDirName: true}
	excludedFiles = map[string]bool{paths.GitIgnoreFile: true, paths.IgnoreFileName: true}
	ignoreFiles   = []string{paths.GitIgnoreFile, paths.IgnoreFileName}
)

// Walker walks one stage root, caching the ignore matchers of every
// directory it has entered
type Walker struct {
	fs       afero.Fs
	root     string
	matchers map[string][]gitignore.IgnoreMatcher
}

// NewWalker returns a walker for the stage rooted at root
func NewWalker(fs afero.Fs, root string) *Walker {
	return &Walker{
		fs:       fs,
		root:     filepath.Clean(root),
		matchers: make(map[string][]gitignore.IgnoreMatcher),
	}
}

// Walk is a convenience for NewWalker(fs, root).Walk(fn)
func Walk(fs afero.Fs, root string, fn WalkFunc) error {
	return NewWalker(fs, root).Walk(fn)
}

// Walk calls fn for every kept directory and file below the root. The root
// itself is not reported.
func (w *Walker) Walk(fn WalkFunc) error {
	return afero.Walk(w.fs, w.root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return errors.Wrapf(err, errors.ErrFileRead, "failed to walk %s", path)
		}

		if path == w.root {
			return w.loadMatchers(path)
		}

		if w.excluded(info) || w.ignored(path, info.IsDir()) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if info.IsDir() {
			if err := w.loadMatchers(path); err != nil {
				return err
			}
		}

		rel, err := filepath.Rel(w.root, path)
		if err != nil {
			return errors.Wrapf(err, errors.ErrInternal, "failed to relativize %s", path)
		}
		return fn(path, rel, info)
	})
}

func (w *Walker) excluded(info os.FileInfo) bool {
	if info.IsDir() {
		return excludedDirs[info.Name()]
	}
	return excludedFiles[info.Name()]
}

// ignored checks path against the matchers of every ancestor directory
func (w *Walker) ignored(path string, isDir bool) bool {
	for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
		for _, m := range w.matchers[dir] {
			if m.Match(path, isDir) {
				return true
			}
		}
		if dir == w.root || dir == filepath.Dir(dir) {
			return false
		}
	}
}

func (w *Walker) loadMatchers(dir string) error {
	var matchers []gitignore.IgnoreMatcher
	for _, name := range ignoreFiles {
		data, err := afero.ReadFile(w.fs, filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return errors.Wrapf(err, errors.ErrFileRead, "failed to read %s", filepath.Join(dir, name))
		}
		matchers = append(matchers, gitignore.NewGitIgnoreFromReader(dir, bytes.NewReader(data)))
	}
	if len(matchers) > 0 {
		w.matchers[dir] = matchers
	}
	return nil
}
