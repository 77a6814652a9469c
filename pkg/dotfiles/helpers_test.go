package dotfiles

import (
	"context"
	"os"
	"strings"
	"syscall"
	"testing"

	"github.com/dotrs/dotrs/pkg/config"
	"github.com/dotrs/dotrs/pkg/git"
	"github.com/dotrs/dotrs/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func newSyncer(t *testing.T, env *testutil.TestEnvironment, opts ...Option) *Syncer {
	t.Helper()

	cfg := &config.Config{
		StageDir: env.StageDir,
		CacheDir: env.CacheDir,
		HomeDir:  env.HomeDir,
	}
	return New(cfg, append([]Option{WithFS(env.FS)}, opts...)...)
}

func ledgerEntries(t *testing.T, s *Syncer) []string {
	t.Helper()
	entries, err := s.List()
	require.NoError(t, err)
	return entries
}

// stickyFs refuses to remove the listed paths
type stickyFs struct {
	afero.Fs
	sticky map[string]bool
}

func (f *stickyFs) Remove(name string) error {
	if f.sticky[name] {
		return &os.PathError{Op: "remove", Path: name, Err: syscall.EACCES}
	}
	return f.Fs.Remove(name)
}

// recordingRunner answers every git call with success
type recordingRunner struct {
	calls  []string
	stdout map[string]string
	fail   map[string]int
}

func (r *recordingRunner) Run(_ context.Context, _ string, args ...string) (git.Result, error) {
	cmd := strings.Join(args, " ")
	r.calls = append(r.calls, cmd)
	if code, ok := r.fail[cmd]; ok {
		return git.Result{ExitCode: code, Stderr: "failed: " + cmd}, nil
	}
	return git.Result{Stdout: r.stdout[cmd]}, nil
}
