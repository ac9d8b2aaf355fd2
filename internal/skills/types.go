package skills

import "path/filepath"

// FileType classifies a skill file by its extension.
type FileType string

const (
	Markdown FileType = "markdown"
	JSON     FileType = "json"
	YAML     FileType = "yaml"
)

// fileTypes maps extensions to their type. Matching is case-sensitive, so
// "README.MD" is not a skill file.
var fileTypes = map[string]FileType{
	".md":       Markdown,
	".markdown": Markdown,
	".json":     JSON,
	".yaml":     YAML,
	".yml":      YAML,
}

// ClassifyFile returns the type of a file name and whether it is supported.
func ClassifyFile(name string) (FileType, bool) {
	ft, ok := fileTypes[filepath.Ext(name)]
	return ft, ok
}

// Folder is a directory found below the scan root. ParentID is nil for
// directories directly under the root.
type Folder struct {
	ID       string  `json:"id" yaml:"id"`
	Name     string  `json:"name" yaml:"name"`
	Path     string  `json:"path" yaml:"path"`
	ParentID *string `json:"parent_id" yaml:"parent_id"`
}

// File is a supported file found below the scan root, with its content read
// at scan time. FolderID is nil for files directly under the root.
type File struct {
	ID       string   `json:"id" yaml:"id"`
	Name     string   `json:"name" yaml:"name"`
	Path     string   `json:"path" yaml:"path"`
	FileType FileType `json:"file_type" yaml:"file_type"`
	Content  string   `json:"content" yaml:"content"`
	FolderID *string  `json:"folder_id" yaml:"folder_id"`
}

// Tree is the complete result of one scan.
type Tree struct {
	Root    string   `json:"root" yaml:"root"`
	Folders []Folder `json:"folders" yaml:"folders"`
	Files   []File   `json:"files" yaml:"files"`
}

// Entry is one item of a single-level directory listing.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	Path  string `json:"path" yaml:"path"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
}
