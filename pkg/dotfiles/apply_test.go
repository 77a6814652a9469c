package dotfiles

import (
	"context"
	"testing"

	"github.com/dotrs/dotrs/pkg/cipher"
	"github.com/dotrs/dotrs/pkg/errors"
	"github.com/dotrs/dotrs/pkg/profile"
	"github.com/dotrs/dotrs/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyRequiresInitializedStage(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().File(".zshrc", "z")

	_, err := newSyncer(t, env).Apply(context.Background(), ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrStageNotInitialized))
	assert.False(t, env.HomeExists(".zshrc"))
}

func TestApplyWithoutProfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		File(".gitignore", "*.swp\n").
		File(".zshrc", "export EDITOR=nvim\n").
		File(".zshrc.swp", "junk").
		File(".config/git/config", "[core]\n").
		Dir(".local/empty").
		Profile("work", "yaml", "a: b").
		Ignore("", "README.md\n").
		File("README.md", "my dotfiles")

	s := newSyncer(t, env)
	res, err := s.Apply(context.Background(), ApplyOptions{})
	require.NoError(t, err)

	want := []string{
		env.HomePath(".config/git/config"),
		env.HomePath(".zshrc"),
	}
	assert.Equal(t, want, res.Written)
	assert.Empty(t, res.Profile)
	assert.Equal(t, want, ledgerEntries(t, s))

	assert.Equal(t, "export EDITOR=nvim\n", env.ReadHome(".zshrc"))
	assert.True(t, env.HomeExists(".local/empty"))
	for _, excluded := range []string{".gitignore", ".zshrc.swp", ".dotrs-profiles", ".dotrsignore", "README.md", ".git"} {
		assert.False(t, env.HomeExists(excluded), excluded)
	}

	_, found, err := profile.AppliedProfile(env.FS, env.CacheDir)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestApplyWithProfileAndSecrets(t *testing.T) {
	key, err := cipher.GenerateKey()
	require.NoError(t, err)
	blob, err := cipher.Encrypt("tok-123", key)
	require.NoError(t, err)

	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		Profile("work", "yaml", "email: me@work\ngithub:\n  token:\n    "+cipher.EncryptedValue(blob)+"\n").
		File(".gitconfig", "email = {{ .email }}\n").
		File(".netrc", "password {{ .github.token }}\n")

	s := newSyncer(t, env)
	res, err := s.Apply(context.Background(), ApplyOptions{Profile: "work", DecryptionKey: key})
	require.NoError(t, err)
	assert.Equal(t, "work", res.Profile)

	assert.Equal(t, "email = me@work\n", env.ReadHome(".gitconfig"))
	assert.Equal(t, "password tok-123\n", env.ReadHome(".netrc"))

	name, found, err := profile.AppliedProfile(env.FS, env.CacheDir)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "work", name)

	// without a key the recorded profile fails as a whole
	_, err = s.Apply(context.Background(), ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNoEncryptionKey))
}

func TestApplyUsesRecordedProfile(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		Profile("home", "yml", "host: desk\n").
		Profile("laptop", "yaml", "host: lap\n").
		File(".hostrc", "{{ .host }}")

	s := newSyncer(t, env)
	ctx := context.Background()

	_, err := s.Apply(ctx, ApplyOptions{Profile: "laptop"})
	require.NoError(t, err)
	assert.Equal(t, "lap", env.ReadHome(".hostrc"))

	res, err := s.Apply(ctx, ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, "laptop", res.Profile)
	assert.Equal(t, "lap", env.ReadHome(".hostrc"))

	_, err = s.Apply(ctx, ApplyOptions{Profile: "home"})
	require.NoError(t, err)
	assert.Equal(t, "desk", env.ReadHome(".hostrc"))
}

func TestApplyProfileErrors(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		code    errors.ErrorCode
	}{
		{name: "missing named profile", profile: "nope", code: errors.ErrProfileNotFound},
		{name: "broken profile", profile: "broken", code: errors.ErrProfileDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
			env.Stage().
				Initialized().
				Profile("broken", "yaml", "a: [").
				File(".zshrc", "z")

			_, err := newSyncer(t, env).Apply(context.Background(), ApplyOptions{Profile: tt.profile})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code))
			assert.False(t, env.HomeExists(".zshrc"))
		})
	}
}

func TestApplyMissingDefaultProfileRendersPlainFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().Initialized().File(".zshrc", "plain")

	res, err := newSyncer(t, env).Apply(context.Background(), ApplyOptions{Profile: profile.DefaultName})
	require.NoError(t, err)
	assert.Equal(t, profile.DefaultName, res.Profile)
	assert.Equal(t, "plain", env.ReadHome(".zshrc"))
}

func TestApplyReconcilesLedger(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		File(".zshrc", "z").
		File(".config/nvim/lua/init.lua", "n").
		File(".config/git/config", "g")

	s := newSyncer(t, env)
	ctx := context.Background()

	_, err := s.Apply(ctx, ApplyOptions{})
	require.NoError(t, err)
	require.True(t, env.HomeExists(".config/nvim/lua/init.lua"))

	require.NoError(t, env.FS.RemoveAll(env.StageDir+"/.config/nvim"))
	env.Stage().File(".bashrc", "b")

	res, err := s.Apply(ctx, ApplyOptions{})
	require.NoError(t, err)

	assert.Equal(t, []string{env.HomePath(".config/nvim/lua/init.lua")}, res.Removed)
	assert.Empty(t, res.CleanupFailures)
	assert.False(t, env.HomeExists(".config/nvim"))
	assert.True(t, env.HomeExists(".config/git/config"))
	assert.Equal(t, []string{
		env.HomePath(".bashrc"),
		env.HomePath(".config/git/config"),
		env.HomePath(".zshrc"),
	}, ledgerEntries(t, s))
}

func TestApplyStaleFileAlreadyGone(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().Initialized().File(".zshrc", "z")
	env.WriteLedger(env.HomePath(".vanished"))

	res, err := newSyncer(t, env).Apply(context.Background(), ApplyOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{env.HomePath(".vanished")}, res.Removed)
	assert.Empty(t, res.CleanupFailures)
}

func TestApplyKeepsUnremovableStaleFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().Initialized().File(".zshrc", "z")
	env.WriteHome(".locked", "old")
	env.WriteLedger(env.HomePath(".locked"))

	fs := &stickyFs{Fs: env.FS, sticky: map[string]bool{env.HomePath(".locked"): true}}
	s := newSyncer(t, env, WithFS(fs))

	res, err := s.Apply(context.Background(), ApplyOptions{})
	require.NoError(t, err)
	require.Len(t, res.CleanupFailures, 1)
	assert.Equal(t, env.HomePath(".locked"), res.CleanupFailures[0].Path)
	assert.Equal(t, []string{env.HomePath(".zshrc"), env.HomePath(".locked")}, ledgerEntries(t, s))
}

func TestApplyStrictRenderFailure(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		Profile("work", "yaml", "name: w\n").
		File("a.txt", "{{ .name }}").
		File("b.txt", "{{ .undefined }}")
	env.WriteLedger(env.HomePath("old.txt"))
	env.WriteHome("old.txt", "previous apply")

	s := newSyncer(t, env)
	_, err := s.Apply(context.Background(), ApplyOptions{Profile: "work"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateRender))

	// files written before the failure stay, the ledger is untouched
	assert.Equal(t, "w", env.ReadHome("a.txt"))
	assert.False(t, env.HomeExists("b.txt"))
	assert.True(t, env.HomeExists("old.txt"))
	assert.Equal(t, []string{env.HomePath("old.txt")}, ledgerEntries(t, s))

	_, found, err := profile.AppliedProfile(env.FS, env.CacheDir)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestApplyRejectsNonUTF8Files(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().Initialized().File("bin.dat", string([]byte{0xff, 0xfe, 0x00}))

	_, err := newSyncer(t, env).Apply(context.Background(), ApplyOptions{})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileRead))
}

func TestApplyHonorsCancelledContext(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().Initialized().File(".zshrc", "z")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newSyncer(t, env).Apply(ctx, ApplyOptions{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, env.HomeExists(".zshrc"))
}
