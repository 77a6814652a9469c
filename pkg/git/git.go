package git

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/logging"
)

const (
	// DefaultRemote is the remote pulled from and pushed to
	DefaultRemote = "origin"

	// DefaultCommitAuthor signs commits made without an explicit author
	DefaultCommitAuthor = "dotrs <dotrs@localhost>"
)

// UpdateStatus is the outcome of Update
type UpdateStatus int

const (
	NoChanges UpdateStatus = iota
	ChangesPublished
)

func (s UpdateStatus) String() string {
	if s == ChangesPublished {
		return "changes published"
	}
	return "no changes made"
}

// ExitError is a git process that exited non-zero
type ExitError struct {
	Args    []string
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("git command failed (%d): %s", e.Code, strings.TrimSpace(e.Message))
}

// ExitCode returns the exit code carried by err, if err is a non-zero exit
func ExitCode(err error) (int, bool) {
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code, true
	}
	return 0, false
}

// Git runs commands in one repository directory
type Git struct {
	dir    string
	runner Runner
}

// New returns a Git for dir using runner, or the git binary when runner is nil
func New(dir string, runner Runner) *Git {
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Git{dir: dir, runner: runner}
}

// Dir returns the working directory commands run in
func (g *Git) Dir() string {
	return g.dir
}

// Exec runs git with args and returns its stdout
func (g *Git) Exec(ctx context.Context, args ...string) (string, error) {
	logger := logging.GetLogger("git")
	logging.LogCommand(logger, "git", args)

	res, err := g.runner.Run(ctx, g.dir, args...)
	if err != nil {
		return "", err
	}

	if res.ExitCode != 0 {
		message := res.Stderr
		if strings.TrimSpace(message) == "" {
			message = res.Stdout
		}
		exitErr := &ExitError{Args: args, Code: res.ExitCode, Message: message}
		logger.Debug().
			Strs("args", args).
			Int("code", res.ExitCode).
			Str("message", strings.TrimSpace(message)).
			Msg("git exited non-zero")
		return res.Stdout, errors.Wrapf(exitErr, errors.ErrGitNonZeroExit, "git %s", strings.Join(args, " ")).
			WithDetail("code", res.ExitCode)
	}
	return res.Stdout, nil
}

// CurrentBranch returns the checked out branch name
func (g *Git) CurrentBranch(ctx context.Context) (string, error) {
	out, err := g.Exec(ctx, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// ChangedFiles parses `git status --porcelain`
func (g *Git) ChangedFiles(ctx context.Context) ([]Change, error) {
	out, err := g.Exec(ctx, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return ParseChanges(out)
}

// Pull pulls the current branch from origin
func (g *Git) Pull(ctx context.Context) error {
	branch, err := g.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	_, err = g.Exec(ctx, "pull", DefaultRemote, branch)
	return err
}

// HasChanges reports whether the working tree differs from the index
func (g *Git) HasChanges(ctx context.Context) (bool, error) {
	_, err := g.Exec(ctx, "diff", "--quiet", "--exit-code")
	if err == nil {
		return false, nil
	}
	if code, ok := ExitCode(err); ok && code == 1 {
		return true, nil
	}
	return false, err
}

// Update pulls, then commits and pushes every local change. An empty
// message is replaced by one generated from the changed files; an empty
// author by DefaultCommitAuthor.
func (g *Git) Update(ctx context.Context, author, message string) (UpdateStatus, error) {
	logger := logging.GetLogger("git")

	branch, err := g.CurrentBranch(ctx)
	if err != nil {
		return NoChanges, err
	}
	if _, err := g.Exec(ctx, "pull", DefaultRemote, branch); err != nil {
		return NoChanges, err
	}

	changed, err := g.HasChanges(ctx)
	if err != nil {
		return NoChanges, err
	}
	if !changed {
		logger.Debug().Msg("Working tree clean, nothing to publish")
		return NoChanges, nil
	}

	if _, err := g.Exec(ctx, "add", "."); err != nil {
		return NoChanges, err
	}

	if message == "" {
		changes, err := g.ChangedFiles(ctx)
		if err != nil {
			return NoChanges, err
		}
		message = CommitMessage(changes)
	}
	if author == "" {
		author = DefaultCommitAuthor
	}

	if _, err := g.Exec(ctx, "commit", "--message", message, "--author", author); err != nil {
		return NoChanges, err
	}
	if _, err := g.Exec(ctx, "push", DefaultRemote, branch); err != nil {
		return NoChanges, err
	}

	logger.Info().Str("branch", branch).Str("message", message).Msg("Changes published")
	return ChangesPublished, nil
}

// Init creates an empty repository
func (g *Git) Init(ctx context.Context) error {
	_, err := g.Exec(ctx, "init")
	return err
}

// RemoteAdd registers a remote
func (g *Git) RemoteAdd(ctx context.Context, name, url string) error {
	_, err := g.Exec(ctx, "remote", "add", name, url)
	return err
}

// FetchAll fetches every remote
func (g *Git) FetchAll(ctx context.Context) error {
	_, err := g.Exec(ctx, "fetch", "--all")
	return err
}

// Checkout switches to ref
func (g *Git) Checkout(ctx context.Context, ref string) error {
	_, err := g.Exec(ctx, "checkout", ref)
	return err
}
