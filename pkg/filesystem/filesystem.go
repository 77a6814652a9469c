package filesystem

import (
	"os"
	"path/filepath"

	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/spf13/afero"
)

// NewOS returns the OS backed filesystem
func NewOS() afero.Fs {
	return afero.NewOsFs()
}

// NewMemory returns an empty in-memory filesystem
func NewMemory() afero.Fs {
	return afero.NewMemMapFs()
}

// Exists reports whether path exists. Errors other than not-exist are returned.
func Exists(fs afero.Fs, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// IsDirEmpty reports whether dir has no entries
func IsDirEmpty(fs afero.Fs, dir string) (bool, error) {
	return afero.IsEmpty(fs, dir)
}

// RemoveEmptyParents removes the parent directories of path that are empty,
// walking upwards and stopping at (never removing) stopAt. Returns the
// directories removed, deepest first.
func RemoveEmptyParents(fs afero.Fs, path, stopAt string) ([]string, error) {
	var removed []string

	dir := filepath.Dir(path)
	for dir != stopAt && paths.IsWithin(stopAt, dir) {
		exists, err := Exists(fs, dir)
		if err != nil {
			return removed, err
		}
		if !exists {
			dir = filepath.Dir(dir)
			continue
		}

		empty, err := IsDirEmpty(fs, dir)
		if err != nil {
			return removed, err
		}
		if !empty {
			break
		}

		if err := fs.Remove(dir); err != nil {
			return removed, err
		}
		removed = append(removed, dir)
		dir = filepath.Dir(dir)
	}

	return removed, nil
}
