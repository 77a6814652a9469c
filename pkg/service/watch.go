package service

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/fsnotify/fsnotify"
)

// watchAdder is the part of *fsnotify.Watcher used to register directories
type watchAdder interface {
	Add(name string) error
}

// addRecursive watches root and every directory below it except .git
func addRecursive(w watchAdder, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if d.Name() == paths.GitDirName {
			return filepath.SkipDir
		}
		if err := w.Add(path); err != nil && path == root {
			return err
		}
		return nil
	})
}

// inGitDir reports whether path is the stage's .git directory or below it
func inGitDir(stageDir, path string) bool {
	rel, err := filepath.Rel(stageDir, path)
	if err != nil {
		return false
	}
	first, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
	return first == paths.GitDirName
}

// qualifies reports whether ev should arm the debouncers. Every operation
// counts, chmod included, since apply copies permission bits.
func qualifies(stageDir string, ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
		!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) &&
		!ev.Has(fsnotify.Chmod) {
		return false
	}
	return !inGitDir(stageDir, ev.Name)
}

// isNewDir reports whether ev created a directory that needs watching
func isNewDir(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Create) {
		return false
	}
	info, err := os.Stat(ev.Name)
	return err == nil && info.IsDir()
}
