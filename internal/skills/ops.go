package skills

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"
	"skillhub/pkg/fileops"
)

// ReadFile returns the full text of path.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", apperrors.FromOS("read file", path, err)
	}
	return string(data), nil
}

// WriteFile replaces the content of path, creating missing parent
// directories first.
func WriteFile(path, content string) error {
	if err := fileops.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return apperrors.IO("write file", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return apperrors.FromOS("write file", path, err)
	}
	logging.Debug("Wrote skill file", "path", path, "bytes", len(content))
	return nil
}

// CreateFile creates name inside folder with the given content and returns
// the new path. An existing entry of that name is reported as
// apperrors.ErrAlreadyExists and left untouched.
func CreateFile(folder, name, content string) (string, error) {
	if err := fileops.ValidateEntryName(name); err != nil {
		return "", apperrors.Invalid("create file", filepath.Join(folder, name), err)
	}

	path := filepath.Join(folder, name)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", apperrors.AlreadyExists("create file", path)
		}
		return "", apperrors.FromOS("create file", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return "", apperrors.IO("create file", path, err)
	}
	if err := f.Close(); err != nil {
		return "", apperrors.IO("create file", path, err)
	}

	logging.Debug("Created skill file", "path", path)
	return path, nil
}

// CreateFolder creates name inside parent, along with parent itself when it
// is missing, and returns the new path. An existing entry of that name is
// reported as apperrors.ErrAlreadyExists.
func CreateFolder(parent, name string) (string, error) {
	if err := fileops.ValidateEntryName(name); err != nil {
		return "", apperrors.Invalid("create folder", filepath.Join(parent, name), err)
	}

	path := filepath.Join(parent, name)
	if _, err := os.Lstat(path); err == nil {
		return "", apperrors.AlreadyExists("create folder", path)
	}

	if err := fileops.EnsureDirectoryExists(path); err != nil {
		return "", apperrors.IO("create folder", path, err)
	}

	logging.Debug("Created skill folder", "path", path)
	return path, nil
}

// Delete removes a file, or a directory with everything below it.
func Delete(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		return apperrors.FromOS("delete", path, err)
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return apperrors.FromOS("delete", path, err)
	}

	logging.Debug("Deleted skill item", "path", path, "dir", info.IsDir())
	return nil
}

// Copy copies a file or directory to dst and returns the path actually used.
// When dst is taken the copy is named "<stem>_copy<n><ext>" with the first
// free n starting at 1.
func Copy(src, dst string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", apperrors.FromOS("copy", src, err)
	}

	final := fileops.UniquePath(dst, fileops.CopySuffix)

	if info.IsDir() {
		err = fileops.CopyTree(src, final)
	} else {
		if err = fileops.EnsureDirectoryExists(filepath.Dir(final)); err == nil {
			err = fileops.AtomicCopy(src, final)
		}
	}
	if err != nil {
		return "", apperrors.IO("copy", src, err)
	}

	logging.Debug("Copied skill item", "from", src, "to", final)
	return final, nil
}

// Move renames src to dst and returns the path actually used. When dst is
// taken the entry is named "<stem>_<n><ext>" with the first free n starting
// at 1. The destination directory is created when missing.
func Move(src, dst string) (string, error) {
	if _, err := os.Lstat(src); err != nil {
		return "", apperrors.FromOS("move", src, err)
	}

	absSrc, err := filepath.Abs(src)
	if err != nil {
		return "", apperrors.IO("move", src, err)
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return "", apperrors.IO("move", dst, err)
	}
	if absDst == absSrc || strings.HasPrefix(absDst, absSrc+string(filepath.Separator)) {
		return "", apperrors.Invalid("move", src, fmt.Errorf("cannot move %s into itself", src))
	}

	final := fileops.UniquePath(dst, fileops.MoveSuffix)

	if err := fileops.EnsureDirectoryExists(filepath.Dir(final)); err != nil {
		return "", apperrors.IO("move", dst, err)
	}
	if err := os.Rename(src, final); err != nil {
		return "", apperrors.FromOS("move", src, err)
	}

	logging.Debug("Moved skill item", "from", src, "to", final)
	return final, nil
}

// List returns the non-hidden entries directly inside dir.
func List(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, apperrors.FromOS("list", dir, err)
	}

	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		isDir := e.IsDir()
		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		result = append(result, Entry{Name: e.Name(), Path: path, IsDir: isDir})
	}
	return result, nil
}
