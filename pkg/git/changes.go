package git

import (
	"strings"

	"github.com/dotrs/dotrs/pkg/errors"
)

// ChangeKind is the single-letter status of a changed path
type ChangeKind int

const (
	Modified ChangeKind = iota
	Added
	Deleted
)

// Verb is the word used for the change in generated commit messages
func (k ChangeKind) Verb() string {
	switch k {
	case Added:
		return "add"
	case Deleted:
		return "remove"
	default:
		return "update"
	}
}

func (k ChangeKind) String() string {
	switch k {
	case Added:
		return "A"
	case Deleted:
		return "D"
	default:
		return "M"
	}
}

// Change is one line of `git status --porcelain`
type Change struct {
	Kind ChangeKind
	Path string
}

func (c Change) String() string {
	return c.Kind.Verb() + " " + c.Path
}

// ParseChange parses a porcelain status line. Only M, A and D are accepted.
func ParseChange(line string) (Change, error) {
	trimmed := strings.TrimSpace(line)
	code, path, ok := strings.Cut(trimmed, " ")
	path = strings.TrimSpace(path)
	if !ok || code == "" || path == "" {
		return Change{}, errors.Newf(errors.ErrGitInvalidChangeLine, "invalid change line: %q", line)
	}

	var kind ChangeKind
	switch code {
	case "M":
		kind = Modified
	case "A":
		kind = Added
	case "D":
		kind = Deleted
	default:
		return Change{}, errors.Newf(errors.ErrGitInvalidChangeType, "invalid change type: %s", code).
			WithDetail("line", line)
	}
	return Change{Kind: kind, Path: path}, nil
}

// ParseChanges parses porcelain output, skipping blank lines
func ParseChanges(output string) ([]Change, error) {
	var changes []Change
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseChange(line)
		if err != nil {
			return nil, err
		}
		changes = append(changes, c)
	}
	return changes, nil
}

// CommitMessage joins the changes as "update a, add b, remove c", in order
func CommitMessage(changes []Change) string {
	parts := make([]string, len(changes))
	for i, c := range changes {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
