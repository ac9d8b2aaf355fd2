// Package render draws scan results and skill documents for the terminal.
package render

import (
	"path/filepath"
	"sort"

	"skillhub/internal/skills"

	"github.com/charmbracelet/lipgloss/tree"
	"github.com/muesli/reflow/truncate"
)

const (
	indentWidth   = 4
	minLabelWidth = 8
	ellipsis      = "…"
)

// Tree renders a scan result as an indented tree rooted at root. Children are
// rebuilt from the parent links, folders first, each group sorted by name.
// With width > 0 every label is truncated to fit its indentation level.
func Tree(root string, folders []skills.Folder, files []skills.File, width int) string {
	childFolders := make(map[string][]skills.Folder)
	for _, f := range folders {
		childFolders[parentKey(f.ParentID)] = append(childFolders[parentKey(f.ParentID)], f)
	}
	childFiles := make(map[string][]skills.File)
	for _, f := range files {
		childFiles[parentKey(f.FolderID)] = append(childFiles[parentKey(f.FolderID)], f)
	}

	label := func(name string, depth int) string {
		if width <= 0 {
			return name
		}
		limit := width - indentWidth*depth
		if limit < minLabelWidth {
			limit = minLabelWidth
		}
		return truncate.StringWithTail(name, uint(limit), ellipsis)
	}

	var build func(t *tree.Tree, key string, depth int)
	build = func(t *tree.Tree, key string, depth int) {
		dirs := childFolders[key]
		sort.Slice(dirs, func(i, j int) bool { return dirs[i].Name < dirs[j].Name })
		for _, d := range dirs {
			sub := tree.Root(folderStyle.Render(label(d.Name+"/", depth)))
			build(sub, d.ID, depth+1)
			t.Child(sub)
		}

		leaves := childFiles[key]
		sort.Slice(leaves, func(i, j int) bool { return leaves[i].Name < leaves[j].Name })
		for _, f := range leaves {
			t.Child(fileStyle.Render(label(f.Name, depth)))
		}
	}

	t := tree.Root(rootStyle.Render(label(filepath.Base(root), 0))).
		Enumerator(tree.RoundedEnumerator).
		EnumeratorStyle(enumeratorStyle)
	build(t, "", 1)
	return t.String()
}

func parentKey(id *string) string {
	if id == nil {
		return ""
	}
	return *id
}
