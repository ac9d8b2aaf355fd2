// Package skills discovers skill content on disk and performs the file and
// folder operations the editor exposes.
package skills

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"
)

var errNotDirectory = errors.New("not a directory")

// idCounter hands out identifiers for one scan. Folder and file numbering are
// independent and both start at 1.
type idCounter struct {
	folders int
	files   int
}

func (c *idCounter) nextFolder() string {
	c.folders++
	return fmt.Sprintf("folder_%d", c.folders)
}

func (c *idCounter) nextFile() string {
	c.files++
	return fmt.Sprintf("file_%d", c.files)
}

// scanner holds the state of a single Scan call.
type scanner struct {
	root    string
	ids     idCounter
	folders []Folder
	files   []File

	// visited holds resolved directory paths so linked directories are
	// entered at most once
	visited map[string]bool

	unreadable int
}

// Scan walks root depth-first and returns every folder and supported file
// below it. The root itself is not reported.
//
// Entries whose name starts with "." are skipped together with everything
// below them. Files with unsupported extensions are left out silently. A file
// whose content cannot be read is still reported, with empty content. A
// directory that cannot be listed aborts the whole scan.
//
// Identifiers are only meaningful within one result: callers must rely on
// the parent links, never on the numbers.
//
// Returns:
//   - *Tree: folders and files in traversal order
//   - error: apperrors.ErrNotFound when root is missing, not a directory or
//     cannot be listed, apperrors.ErrIO when listing a directory below it fails
func Scan(root string) (*Tree, error) {
	start := time.Now()
	defer logging.LogPerformance("skills.Scan", start)

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, apperrors.NotFound("scan", root, err)
	}

	info, err := os.Stat(absRoot)
	if err != nil {
		return nil, apperrors.NotFound("scan", root, err)
	}
	if !info.IsDir() {
		return nil, apperrors.NotFound("scan", root, errNotDirectory)
	}

	s := &scanner{root: absRoot, visited: make(map[string]bool)}
	s.markVisited(absRoot)

	if err := s.walk(absRoot, nil); err != nil {
		return nil, err
	}

	logging.Debug("Scanned skills directory",
		"root", absRoot,
		"folderCount", len(s.folders),
		"fileCount", len(s.files),
		"unreadable", s.unreadable,
	)

	return &Tree{Root: absRoot, Folders: s.folders, Files: s.files}, nil
}

func (s *scanner) walk(dir string, parentID *string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if dir == s.root {
			return apperrors.NotFound("scan", dir, err)
		}
		return apperrors.IO("read directory", dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)

		isDir, ok := s.entryKind(entry, path)
		if !ok {
			continue
		}

		if isDir {
			if !s.markVisited(path) {
				logging.Debug("Skipping directory already visited through a link", "path", path)
				continue
			}

			id := s.ids.nextFolder()
			s.folders = append(s.folders, Folder{
				ID:       id,
				Name:     name,
				Path:     path,
				ParentID: parentID,
			})

			if err := s.walk(path, &id); err != nil {
				return err
			}
			continue
		}

		fileType, supported := ClassifyFile(name)
		if !supported {
			continue
		}

		s.files = append(s.files, File{
			ID:       s.ids.nextFile(),
			Name:     name,
			Path:     path,
			FileType: fileType,
			Content:  s.readContent(path),
			FolderID: parentID,
		})
	}

	return nil
}

// entryKind reports whether entry is a directory, following symbolic links.
// ok is false for entries that are neither a directory nor a regular file,
// including dangling links.
func (s *scanner) entryKind(entry fs.DirEntry, path string) (isDir bool, ok bool) {
	mode := entry.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := os.Stat(path)
		if err != nil {
			logging.Debug("Skipping unresolvable link", "path", path, "error", err)
			return false, false
		}
		mode = info.Mode().Type()
	}

	switch {
	case mode.IsDir():
		return true, true
	case mode.IsRegular():
		return false, true
	default:
		return false, false
	}
}

func (s *scanner) readContent(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		s.unreadable++
		logging.Debug("Failed to read skill file, using empty content", "path", path, "error", err)
		return ""
	}
	return string(data)
}

// markVisited records dir by its resolved path and reports whether it was new.
func (s *scanner) markVisited(dir string) bool {
	key := dir
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		key = resolved
	}
	if s.visited[key] {
		return false
	}
	s.visited[key] = true
	return true
}
