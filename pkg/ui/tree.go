package ui

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xlab/treeprint"
)

// Tree prints paths as a directory tree rooted at root. Paths outside root
// are listed as-is under the root node.
func (p *Printer) Tree(root string, paths []string) error {
	_, err := io.WriteString(p.out, BuildTree(root, paths))
	return err
}

// BuildTree renders paths below root as a tree
func BuildTree(root string, paths []string) string {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	tree := treeprint.NewWithRoot(root)
	branches := map[string]treeprint.Tree{"": tree}

	for _, path := range sorted {
		rel, err := filepath.Rel(root, path)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			tree.AddNode(path)
			continue
		}

		parts := strings.Split(filepath.ToSlash(rel), "/")
		parent := tree
		for i, dir := range parts[:len(parts)-1] {
			key := strings.Join(parts[:i+1], "/")
			branch, ok := branches[key]
			if !ok {
				branch = parent.AddBranch(dir)
				branches[key] = branch
			}
			parent = branch
		}
		parent.AddNode(parts[len(parts)-1])
	}

	return tree.String()
}
