package stage

import (
	"os"
	"testing"

	"github.com/dotrs/dotrs/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visit struct {
	rel   string
	isDir bool
}

func collect(t *testing.T, env *testutil.TestEnvironment) []visit {
	t.Helper()

	var visits []visit
	err := Walk(env.FS, env.StageDir, func(path, rel string, info os.FileInfo) error {
		visits = append(visits, visit{rel: rel, isDir: info.IsDir()})
		return nil
	})
	require.NoError(t, err)
	return visits
}

func TestWalkOrderAndDefaults(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		File(".git/config", "[core]").
		File(".gitignore", "").
		File(".zshrc", "z").
		File(".config/nvim/init.lua", "n").
		File(".config/git/config", "g").
		Profile("work", "yaml", "a: b").
		File("sub/.gitignore", "").
		File("sub/file", "f")

	assert.Equal(t, []visit{
		{rel: ".config", isDir: true},
		{rel: ".config/git", isDir: true},
		{rel: ".config/git/config"},
		{rel: ".config/nvim", isDir: true},
		{rel: ".config/nvim/init.lua"},
		{rel: ".zshrc"},
		{rel: "sub", isDir: true},
		{rel: "sub/file"},
	}, collect(t, env))
}

func TestWalkHonorsIgnoreFiles(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		Ignore("", "README.md\nscripts/\n*.bak\n").
		File("README.md", "docs").
		File(".zshrc", "z").
		File(".zshrc.bak", "old").
		File("scripts/install.sh", "#!/bin/sh").
		File(".config/app/settings.bak", "old").
		File(".config/app/settings", "new").
		Ignore(".config/app", "local\n").
		File(".config/app/local", "machine specific").
		File(".config/local", "kept, pattern is scoped to app/").
		File(".gitignore", "secret.txt\n").
		File("secret.txt", "s")

	assert.Equal(t, []visit{
		{rel: ".config", isDir: true},
		{rel: ".config/app", isDir: true},
		{rel: ".config/app/settings"},
		{rel: ".config/local"},
		{rel: ".zshrc"},
	}, collect(t, env))
}

func TestWalkSkipsIgnoreFilesThemselves(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().
		Initialized().
		File(".dotrsignore", "").
		File("nested/.dotrsignore", "").
		File("nested/.gitignore", "").
		File("nested/kept", "k")

	assert.Equal(t, []visit{
		{rel: "nested", isDir: true},
		{rel: "nested/kept"},
	}, collect(t, env))
}

func TestWalkEmptyStage(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().Initialized()

	assert.Empty(t, collect(t, env))
}

func TestWalkPropagatesCallbackError(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Stage().File("a", "1").File("b", "2")

	boom := assert.AnError
	var seen []string
	err := Walk(env.FS, env.StageDir, func(path, rel string, info os.FileInfo) error {
		seen = append(seen, rel)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a"}, seen)
}
