package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateEntryName checks that name can be joined to a directory as a single
// new entry. Unlike a sanitizer it never rewrites the name; it only rejects.
//
// Rejected: empty or whitespace-only names, "." and "..", and names containing
// a path separator (both "/" and "\" on every platform, so names stay portable).
func ValidateEntryName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if name == "." || name == ".." {
		return fmt.Errorf("invalid name: %q", name)
	}
	if strings.ContainsAny(name, `/\`) {
		return fmt.Errorf("name contains path separators: %q", name)
	}
	return nil
}

// ExpandPath expands a path that starts with "~/" to the user's home directory.
//
// Usage example:
//
//	expanded := fileops.ExpandPath("~/skills")
//	// Returns something like "/home/user/skills"
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
		}
	}
	return path
}

// ContainedIn reports an error unless path lies inside baseDir (or is baseDir).
// Symbolic links are resolved for the longest existing prefix of path, so a
// link pointing out of baseDir is caught even when the final entry does not
// exist yet.
func ContainedIn(path, baseDir string) error {
	absBase, err := resolveExisting(baseDir)
	if err != nil {
		return fmt.Errorf("cannot resolve base directory: %w", err)
	}

	absPath, err := resolveExisting(path)
	if err != nil {
		return fmt.Errorf("cannot resolve path: %w", err)
	}

	rel, err := filepath.Rel(absBase, absPath)
	if err != nil {
		return fmt.Errorf("cannot determine relative path: %w", err)
	}
	if escapes(rel) {
		return fmt.Errorf("path %s is outside %s", path, baseDir)
	}
	return nil
}

// resolveExisting makes path absolute and evaluates symlinks on the deepest
// ancestor that exists, re-attaching the missing tail.
func resolveExisting(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	var tail []string
	current := abs
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err == nil {
			parts := append([]string{resolved}, tail...)
			return filepath.Join(parts...), nil
		}
		if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}
		tail = append([]string{filepath.Base(current)}, tail...)
		current = parent
	}
}

func escapes(rel string) bool {
	return rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
