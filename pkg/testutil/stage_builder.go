package testutil

import (
	"path/filepath"

	"github.com/dotrs/dotrs/pkg/paths"
)

// StageBuilder provides a fluent interface for populating a stage tree
type StageBuilder struct {
	env *TestEnvironment
}

// Initialized marks the stage as a repository by creating its .git dir
func (b *StageBuilder) Initialized() *StageBuilder {
	b.env.t.Helper()

	if err := b.env.FS.MkdirAll(paths.GitDir(b.env.StageDir), 0755); err != nil {
		b.env.t.Fatalf("Failed to create git dir: %v", err)
	}
	return b
}

// File adds a file at the stage-relative path rel
func (b *StageBuilder) File(rel, content string) *StageBuilder {
	b.env.t.Helper()
	b.env.writeFile(filepath.Join(b.env.StageDir, rel), content)
	return b
}

// Dir adds an empty directory at the stage-relative path rel
func (b *StageBuilder) Dir(rel string) *StageBuilder {
	b.env.t.Helper()

	if err := b.env.FS.MkdirAll(filepath.Join(b.env.StageDir, rel), 0755); err != nil {
		b.env.t.Fatalf("Failed to create %s: %v", rel, err)
	}
	return b
}

// Profile adds a profile document. ext is "yaml" or "yml".
func (b *StageBuilder) Profile(name, ext, content string) *StageBuilder {
	b.env.t.Helper()

	path := filepath.Join(paths.ProfilesDir(b.env.StageDir), name+"."+ext)
	b.env.writeFile(path, content)
	return b
}

// Ignore writes a .dotrsignore file in the stage-relative directory dir
func (b *StageBuilder) Ignore(dir string, patterns string) *StageBuilder {
	b.env.t.Helper()
	return b.File(filepath.Join(dir, paths.IgnoreFileName), patterns)
}
