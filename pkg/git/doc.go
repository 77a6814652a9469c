// Package git runs the git executable against the stage repository.
//
// Every command runs with the stage root as working directory. A non-zero
// exit becomes an *ExitError carrying the exit code and the captured stderr
// (or stdout when stderr is empty), wrapped in a GIT_NON_ZERO_EXIT error.
// ExitCode lets callers branch on specific exits, which Update relies on:
// `git diff --quiet --exit-code` exits 1 when the tree has changes.
//
// Process execution goes through the Runner interface so tests can script
// git's output without a repository.
package git
