package profile

import (
	"os"
	"strings"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/spf13/afero"
)

// AppliedProfile returns the name recorded by the last successful apply.
// found is false when nothing has been recorded yet.
func AppliedProfile(fs afero.Fs, cacheDir string) (name string, found bool, err error) {
	data, err := afero.ReadFile(fs, paths.AppliedProfilePath(cacheDir))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, errors.Wrap(err, errors.ErrFileRead, "failed to read applied profile")
	}
	return strings.TrimSpace(string(data)), true, nil
}

// WriteAppliedProfile records name as the applied profile
func WriteAppliedProfile(fs afero.Fs, cacheDir, name string) error {
	if err := fs.MkdirAll(cacheDir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create cache directory %s", cacheDir)
	}
	if err := afero.WriteFile(fs, paths.AppliedProfilePath(cacheDir), []byte(name), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to write applied profile")
	}
	return nil
}
