package filesystem

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExists(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, afero.WriteFile(fs, "/home/u/.zshrc", []byte("x"), 0644))

	ok, err := Exists(fs, "/home/u/.zshrc")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Exists(fs, "/home/u/.bashrc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRemoveEmptyParents(t *testing.T) {
	home := "/home/u"

	tests := []struct {
		name        string
		files       []string
		removed     string
		wantRemoved []string
		wantKept    []string
	}{
		{
			name:        "removes chain of empty dirs",
			files:       []string{"/home/u/.config/nvim/lua/init.lua"},
			removed:     "/home/u/.config/nvim/lua/init.lua",
			wantRemoved: []string{"/home/u/.config/nvim/lua", "/home/u/.config/nvim", "/home/u/.config"},
			wantKept:    []string{home},
		},
		{
			name:        "stops at first non-empty dir",
			files:       []string{"/home/u/.config/nvim/init.lua", "/home/u/.config/git/config"},
			removed:     "/home/u/.config/nvim/init.lua",
			wantRemoved: []string{"/home/u/.config/nvim"},
			wantKept:    []string{"/home/u/.config", "/home/u/.config/git"},
		},
		{
			name:        "file at home root removes nothing",
			files:       []string{"/home/u/.zshrc"},
			removed:     "/home/u/.zshrc",
			wantRemoved: nil,
			wantKept:    []string{home},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := NewMemory()
			require.NoError(t, fs.MkdirAll(home, 0755))
			for _, f := range tt.files {
				require.NoError(t, fs.MkdirAll(filepath.Dir(f), 0755))
				require.NoError(t, afero.WriteFile(fs, f, []byte("x"), 0644))
			}
			require.NoError(t, fs.Remove(tt.removed))

			removed, err := RemoveEmptyParents(fs, tt.removed, home)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRemoved, removed)

			for _, dir := range tt.wantKept {
				ok, err := Exists(fs, dir)
				require.NoError(t, err)
				assert.True(t, ok, "%s should be kept", dir)
			}
		})
	}
}
