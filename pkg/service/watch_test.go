package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQualifies(t *testing.T) {
	stage := "/stage"

	tests := []struct {
		name string
		ev   fsnotify.Event
		want bool
	}{
		{name: "create", ev: fsnotify.Event{Name: "/stage/.zshrc", Op: fsnotify.Create}, want: true},
		{name: "write", ev: fsnotify.Event{Name: "/stage/.config/a", Op: fsnotify.Write}, want: true},
		{name: "remove", ev: fsnotify.Event{Name: "/stage/.zshrc", Op: fsnotify.Remove}, want: true},
		{name: "rename", ev: fsnotify.Event{Name: "/stage/.zshrc", Op: fsnotify.Rename}, want: true},
		{name: "chmod", ev: fsnotify.Event{Name: "/stage/.zshrc", Op: fsnotify.Chmod}, want: true},
		{name: "chmod inside git dir", ev: fsnotify.Event{Name: "/stage/.git/config", Op: fsnotify.Chmod}, want: false},
		{name: "no op", ev: fsnotify.Event{Name: "/stage/.zshrc"}, want: false},
		{name: "git dir itself", ev: fsnotify.Event{Name: "/stage/.git", Op: fsnotify.Write}, want: false},
		{name: "inside git dir", ev: fsnotify.Event{Name: "/stage/.git/index.lock", Op: fsnotify.Create}, want: false},
		{name: "nested .git name elsewhere", ev: fsnotify.Event{Name: "/stage/vendor/.git", Op: fsnotify.Create}, want: true},
		{name: "similar prefix", ev: fsnotify.Event{Name: "/stage/.gitconfig", Op: fsnotify.Write}, want: true},
		{name: "profile edit", ev: fsnotify.Event{Name: "/stage/.dotrs-profiles/work.yaml", Op: fsnotify.Write}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, qualifies(stage, tt.ev))
		})
	}
}

type recordingAdder struct {
	added []string
}

func (r *recordingAdder) Add(name string) error {
	r.added = append(r.added, name)
	return nil
}

func TestAddRecursive(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{".git/objects", ".config/nvim", ".dotrs-profiles"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, ".zshrc"), []byte("z"), 0644))

	adder := &recordingAdder{}
	require.NoError(t, addRecursive(adder, root))

	assert.Equal(t, []string{
		root,
		filepath.Join(root, ".config"),
		filepath.Join(root, ".config/nvim"),
		filepath.Join(root, ".dotrs-profiles"),
	}, adder.added)
}

func TestAddRecursiveMissingRoot(t *testing.T) {
	err := addRecursive(&recordingAdder{}, filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
