package git

import (
	"sort"

	gogit "github.com/go-git/go-git/v5"

	"github.com/dotrs/dotrs/pkg/errors"
)

// WorktreeStatus reads pending changes of the repository at dir without
// running git. Untracked files count as added. Results are sorted by path.
func WorktreeStatus(dir string) ([]Change, error) {
	repo, err := gogit.PlainOpen(dir)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGitRepository, "failed to open repository %s", dir)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitRepository, "repository has no worktree")
	}
	status, err := wt.Status()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGitRepository, "failed to read worktree status")
	}

	changes := make([]Change, 0, len(status))
	for path, fs := range status {
		// The staged code wins, as in the first porcelain column
		code := fs.Staging
		if code == gogit.Unmodified || code == gogit.Untracked {
			code = fs.Worktree
		}
		kind, ok := changeKind(code)
		if !ok {
			continue
		}
		changes = append(changes, Change{Kind: kind, Path: path})
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

func changeKind(code gogit.StatusCode) (ChangeKind, bool) {
	switch code {
	case gogit.Added, gogit.Untracked:
		return Added, true
	case gogit.Deleted:
		return Deleted, true
	case gogit.Modified, gogit.Renamed, gogit.Copied, gogit.UpdatedButUnmerged:
		return Modified, true
	default:
		return Modified, false
	}
}
