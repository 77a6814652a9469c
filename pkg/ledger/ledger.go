package ledger

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/spf13/afero"
)

// Diff is the result of comparing a candidate path set to the ledger
type Diff struct {
	// Added are candidate paths not in the ledger
	Added []string
	// Removed are ledger paths not in the candidate set
	Removed []string
}

// Ledger is the in-memory view of the tracked files record
type Ledger struct {
	fs    afero.Fs
	path  string
	files []string
}

// Open loads the ledger at path. A missing file yields an empty ledger.
func Open(fs afero.Fs, path string) (*Ledger, error) {
	l := &Ledger{fs: fs, path: path}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, errors.Wrapf(err, errors.ErrLedgerLoad, "failed to read ledger %s", path).
			WithDetail("path", path)
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		l.files = append(l.files, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, errors.ErrLedgerLoad, "failed to parse ledger %s", path)
	}

	return l, nil
}

// Path returns the backing file location
func (l *Ledger) Path() string {
	return l.path
}

// Get returns a copy of the tracked paths
func (l *Ledger) Get() []string {
	out := make([]string, len(l.files))
	copy(out, l.files)
	return out
}

// Set replaces the tracked paths
func (l *Ledger) Set(files []string) {
	l.files = append([]string(nil), files...)
}

// Clear empties the tracked paths
func (l *Ledger) Clear() {
	l.files = nil
}

// Diff compares candidate against the tracked paths. Order follows the
// source slice of each side.
func (l *Ledger) Diff(candidate []string) Diff {
	current := toSet(l.files)
	next := toSet(candidate)

	var d Diff
	for _, p := range candidate {
		if _, ok := current[p]; !ok {
			d.Added = append(d.Added, p)
		}
	}
	for _, p := range l.files {
		if _, ok := next[p]; !ok {
			d.Removed = append(d.Removed, p)
		}
	}
	return d
}

// Store writes the tracked paths, one per line, replacing the file
func (l *Ledger) Store() error {
	if err := l.fs.MkdirAll(filepath.Dir(l.path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrLedgerStore, "failed to create ledger directory for %s", l.path)
	}

	var buf bytes.Buffer
	for _, p := range l.files {
		buf.WriteString(p)
		buf.WriteByte('\n')
	}

	if err := afero.WriteFile(l.fs, l.path, buf.Bytes(), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrLedgerStore, "failed to write ledger %s", l.path).
			WithDetail("path", l.path)
	}
	return nil
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, i := range items {
		set[i] = struct{}{}
	}
	return set
}
