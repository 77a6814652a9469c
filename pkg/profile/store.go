package profile

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/logging"
	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/spf13/afero"
)

// DefaultName is the profile that may be requested without existing
const DefaultName = "default"

// extensions in lookup order
var extensions = []string{".yaml", ".yml"}

// Store locates profiles below a stage directory
type Store struct {
	fs  afero.Fs
	dir string
}

// NewStore returns a store reading <stageDir>/.dotrs-profiles
func NewStore(fs afero.Fs, stageDir string) *Store {
	return &Store{fs: fs, dir: paths.ProfilesDir(stageDir)}
}

// Load finds and decodes the named profile. A missing "default" profile
// decodes to Null; any other missing profile is an error.
func (s *Store) Load(name string) (Value, error) {
	logger := logging.GetLogger("profile")

	for _, ext := range extensions {
		path := filepath.Join(s.dir, name+ext)
		data, err := afero.ReadFile(s.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return Null, errors.Wrapf(err, errors.ErrFileRead, "failed to read profile %s", path)
		}

		logger.Debug().Str("profile", name).Str("path", path).Msg("Loading profile")
		v, err := Decode(bytes.NewReader(data))
		if err != nil {
			return Null, errors.Wrapf(err, errors.ErrProfileDecode, "profile %s", name).
				WithDetail("path", path)
		}
		return v, nil
	}

	if name == DefaultName {
		logger.Debug().Msg("No default profile, rendering without variables")
		return Null, nil
	}
	return Null, errors.Newf(errors.ErrProfileNotFound, "no profile exists with name %s", name).
		WithDetail("profile", name)
}

// Names lists the profiles present in the stage, sorted and without
// duplicates when both extensions exist
func (s *Store) Names() ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileRead, "failed to list profiles in %s", s.dir)
	}

	seen := make(map[string]bool)
	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
