package testutil

import (
	"path/filepath"
	"testing"

	"github.com/dotrs/dotrs/pkg/filesystem"
	"github.com/dotrs/dotrs/pkg/paths"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides the three trees dotrs works on
type TestEnvironment struct {
	StageDir string
	HomeDir  string
	CacheDir string

	FS   afero.Fs
	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment with empty stage, home
// and cache directories
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.StageDir = "/virtual/stage"
		env.HomeDir = "/virtual/home"
		env.CacheDir = "/virtual/cache"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		tempDir := t.TempDir()
		env.StageDir = filepath.Join(tempDir, "stage")
		env.HomeDir = filepath.Join(tempDir, "home")
		env.CacheDir = filepath.Join(tempDir, "cache")
		env.FS = filesystem.NewOS()
	}

	for _, dir := range []string{env.StageDir, env.HomeDir} {
		if err := env.FS.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	return env
}

// Stage returns a builder for the environment's stage tree
func (env *TestEnvironment) Stage() *StageBuilder {
	return &StageBuilder{env: env}
}

// HomePath joins rel onto the home directory
func (env *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(env.HomeDir, rel)
}

// ReadHome reads a file below the home directory
func (env *TestEnvironment) ReadHome(rel string) string {
	env.t.Helper()

	data, err := afero.ReadFile(env.FS, env.HomePath(rel))
	if err != nil {
		env.t.Fatalf("Failed to read %s: %v", rel, err)
	}
	return string(data)
}

// HomeExists reports whether rel exists below the home directory
func (env *TestEnvironment) HomeExists(rel string) bool {
	env.t.Helper()

	ok, err := filesystem.Exists(env.FS, env.HomePath(rel))
	if err != nil {
		env.t.Fatalf("Failed to stat %s: %v", rel, err)
	}
	return ok
}

// WriteLedger seeds the ledger file with the given paths
func (env *TestEnvironment) WriteLedger(entries ...string) {
	env.t.Helper()

	content := ""
	for _, e := range entries {
		content += e + "\n"
	}
	env.writeFile(paths.LedgerPath(env.CacheDir), content)
}

// WriteHome writes a file below the home directory
func (env *TestEnvironment) WriteHome(rel, content string) {
	env.t.Helper()
	env.writeFile(env.HomePath(rel), content)
}

func (env *TestEnvironment) writeFile(path, content string) {
	env.t.Helper()

	if err := env.FS.MkdirAll(filepath.Dir(path), 0755); err != nil {
		env.t.Fatalf("Failed to create dir for %s: %v", path, err)
	}
	if err := afero.WriteFile(env.FS, path, []byte(content), 0644); err != nil {
		env.t.Fatalf("Failed to write %s: %v", path, err)
	}
}
