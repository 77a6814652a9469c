package dotrs

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dotrs/dotrs/pkg/dotfiles"
	"github.com/dotrs/dotrs/pkg/git"
	"github.com/dotrs/dotrs/pkg/testutil"
)

// setupCLI points every dotrs directory at an isolated environment
func setupCLI(t *testing.T) *testutil.TestEnvironment {
	t.Helper()

	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	t.Setenv("DOTRS_STAGE_DIR", env.StageDir)
	t.Setenv("DOTRS_CACHE_DIR", env.CacheDir)
	t.Setenv("DOTRS_HOME_DIR", env.HomeDir)
	t.Setenv("DOTRS_DECRYPTION_KEY", "")
	t.Setenv("DOTRS_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("NO_COLOR", "1")
	return env
}

func execute(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return execute(t, newRootCmd(), args...)
}

// scriptedRunner answers git calls from a table keyed by the joined args
type scriptedRunner struct {
	calls   []string
	results map[string]git.Result
}

func (r *scriptedRunner) Run(_ context.Context, _ string, args ...string) (git.Result, error) {
	cmd := strings.Join(args, " ")
	r.calls = append(r.calls, cmd)
	return r.results[cmd], nil
}

func runWithGit(t *testing.T, runner *scriptedRunner, args ...string) (string, error) {
	t.Helper()
	return execute(t, newRootCmd(dotfiles.WithRunner(runner)), args...)
}
