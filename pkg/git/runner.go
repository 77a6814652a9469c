package git

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"

	"github.com/dotrs/dotrs/pkg/errors"
)

// Result is the outcome of a process that ran to completion
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner starts git processes. A non-zero exit is reported through
// Result.ExitCode, not as an error; errors mean the process could not run.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (Result, error)
}

// ExecRunner runs the git binary found on PATH
type ExecRunner struct {
	// Binary overrides the executable name, "git" when empty
	Binary string
}

// Run executes git synchronously. No timeout is applied beyond ctx.
func (r ExecRunner) Run(ctx context.Context, dir string, args ...string) (Result, error) {
	binary := r.Binary
	if binary == "" {
		binary = "git"
	}

	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, errors.Wrapf(err, errors.ErrGitExec, "git command execution failed").
			WithDetail("args", args)
	}
	return result, nil
}
