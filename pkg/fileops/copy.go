package fileops

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AtomicCopy copies srcPath to destPath. The copy is written to a temporary
// file in the destination directory, synced and then renamed over destPath,
// so destPath either keeps its old content or receives the complete copy.
// The source permission bits are carried over.
//
// Usage example:
//
//	if err := fileops.AtomicCopy("/path/to/source.md", "/path/to/dest.md"); err != nil {
//	    return fmt.Errorf("copy failed: %w", err)
//	}
//
// Note: existing destination files are overwritten without warning.
func AtomicCopy(srcPath, destPath string) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	info, err := srcFile.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("source is a directory: %s", srcPath)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(destPath), "."+filepath.Base(destPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tempPath := tempFile.Name()

	var copySuccess bool
	defer func() {
		tempFile.Close()
		if !copySuccess {
			os.Remove(tempPath)
		}
	}()

	if _, err := io.Copy(tempFile, srcFile); err != nil {
		return fmt.Errorf("failed to copy file contents: %w", err)
	}

	if err := tempFile.Chmod(info.Mode().Perm()); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Rename(tempPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	copySuccess = true
	return nil
}

// CopyTree recursively copies the directory srcDir to destDir. destDir is
// created if missing and merged into if present. Symbolic links are copied as
// the files or directories they point to; dangling links abort the copy. A
// linked directory that was already copied, or that leads back into a
// directory being copied, is skipped.
func CopyTree(srcDir, destDir string) error {
	return copyTree(srcDir, destDir, make(map[string]bool))
}

// copyTree copies srcDir into destDir. visited holds resolved source
// directories already entered.
func copyTree(srcDir, destDir string, visited map[string]bool) error {
	info, err := os.Stat(srcDir)
	if err != nil {
		return fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("source is not a directory: %s", srcDir)
	}

	// WalkDir does not follow a linked root, so walk its target
	absSrc, err := filepath.EvalSymlinks(srcDir)
	if err != nil {
		return fmt.Errorf("cannot resolve source directory: %w", err)
	}
	if absSrc, err = filepath.Abs(absSrc); err != nil {
		return fmt.Errorf("cannot resolve source directory: %w", err)
	}
	absDest, err := resolveExisting(destDir)
	if err != nil {
		return fmt.Errorf("cannot resolve destination directory: %w", err)
	}
	if rel, err := filepath.Rel(absSrc, absDest); err == nil && !escapes(rel) {
		return fmt.Errorf("cannot copy %s into itself", srcDir)
	}

	return filepath.WalkDir(absSrc, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		rel, err := filepath.Rel(absSrc, path)
		if err != nil {
			return err
		}
		target := filepath.Join(destDir, rel)

		if d.IsDir() {
			if visited[path] {
				return filepath.SkipDir
			}
			visited[path] = true
			return EnsureDirectoryExists(target)
		}

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to resolve link %s: %w", path, err)
			}
			if info.IsDir() {
				resolved, err := filepath.EvalSymlinks(path)
				if err != nil {
					return fmt.Errorf("failed to resolve link %s: %w", path, err)
				}
				if visited[resolved] {
					return nil
				}
				return copyTree(resolved, target, visited)
			}
		}

		return AtomicCopy(path, target)
	})
}

// EnsureDirectoryExists creates a directory and all necessary parent directories.
// This is equivalent to `mkdir -p` and is safe to call multiple times.
func EnsureDirectoryExists(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	return nil
}

// SuffixFunc builds the n-th alternative for a taken path from its stem
// (base name without extension).
type SuffixFunc func(stem string, n int) string

// CopySuffix names copies "notes_copy1.md", "notes_copy2.md", ...
func CopySuffix(stem string, n int) string {
	return fmt.Sprintf("%s_copy%d", stem, n)
}

// MoveSuffix names moved entries "notes_1.md", "notes_2.md", ...
func MoveSuffix(stem string, n int) string {
	return fmt.Sprintf("%s_%d", stem, n)
}

// UniquePath returns path unchanged when nothing exists there. Otherwise it
// tries suffix(stem, 1), suffix(stem, 2), ... in the same directory, keeping
// the extension, and returns the first name that is free.
func UniquePath(path string, suffix SuffixFunc) string {
	if !exists(path) {
		return path
	}

	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, suffix(stem, n)+ext)
		if !exists(candidate) {
			return candidate
		}
	}
}

func exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
