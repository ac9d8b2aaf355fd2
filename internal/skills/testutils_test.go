package skills

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// createTempDirStructure materializes structure below a fresh temp directory.
// Keys ending in "/" become directories, every other key a file holding the
// mapped content.
func createTempDirStructure(t *testing.T, structure map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, content := range structure {
		full := filepath.Join(root, filepath.FromSlash(rel))

		if strings.HasSuffix(rel, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatalf("Failed to create dir %s: %v", rel, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create parent dirs for %s: %v", rel, err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", rel, err)
		}
	}
	return root
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// skipIfPermissionsIgnored skips tests that rely on unreadable entries, which
// root and windows do not honour.
func skipIfPermissionsIgnored(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("running as root, permission bits are not enforced")
	}
}

// relPaths rebuilds every folder and file path of tree from the parent links
// alone, relative to the scan root and slash separated.
func relPaths(t *testing.T, tree *Tree) (dirs map[string]bool, files map[string]string) {
	t.Helper()

	byID := make(map[string]Folder, len(tree.Folders))
	for _, f := range tree.Folders {
		if _, dup := byID[f.ID]; dup {
			t.Fatalf("duplicate folder id %s", f.ID)
		}
		byID[f.ID] = f
	}

	var resolve func(id *string, depth int) string
	resolve = func(id *string, depth int) string {
		if id == nil {
			return ""
		}
		if depth > len(tree.Folders) {
			t.Fatalf("parent cycle through %s", *id)
		}
		folder, ok := byID[*id]
		if !ok {
			t.Fatalf("parent id %s does not name a folder in the result", *id)
		}
		prefix := resolve(folder.ParentID, depth+1)
		if prefix == "" {
			return folder.Name
		}
		return prefix + "/" + folder.Name
	}

	dirs = make(map[string]bool)
	for _, f := range tree.Folders {
		dirs[resolve(&f.ID, 0)] = true
	}

	files = make(map[string]string)
	seenFileIDs := make(map[string]bool)
	for _, f := range tree.Files {
		if seenFileIDs[f.ID] {
			t.Fatalf("duplicate file id %s", f.ID)
		}
		seenFileIDs[f.ID] = true

		prefix := resolve(f.FolderID, 0)
		rel := f.Name
		if prefix != "" {
			rel = prefix + "/" + f.Name
		}
		files[rel] = f.Content
	}
	return dirs, files
}
