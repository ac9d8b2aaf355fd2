package mcpconfig

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"
)

// Load reads and parses the document at path. A missing file is
// apperrors.ErrNotFound, an unreadable one apperrors.ErrIO and content that
// is not a JSON object with an "mcpServers" map apperrors.ErrParse.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.FromOS("load mcp config", path, err)
	}

	doc, err := decode(data)
	if err != nil {
		return nil, apperrors.Parse("load mcp config", path, err)
	}

	logging.Debug("Loaded MCP config", "path", path, "servers", len(doc.Servers))
	return doc, nil
}

// Save writes doc to path, replacing any previous content and creating
// missing parent directories.
func Save(path string, doc *Document) error {
	data, err := encode(doc)
	if err != nil {
		return apperrors.Parse("save mcp config", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.IO("save mcp config", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return apperrors.FromOS("save mcp config", path, err)
	}

	logging.Debug("Saved MCP config", "path", path, "servers", len(doc.Servers))
	return nil
}

// AddServer inserts or replaces the server called name. A missing file is
// started from an empty document; any other load failure is returned and the
// file is left untouched.
func AddServer(path, name string, entry ServerEntry) error {
	doc, err := Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		doc = NewDocument()
	case err != nil:
		return err
	}

	doc.Servers[name] = entry
	if err := Save(path, doc); err != nil {
		return err
	}

	logging.Info("Added MCP server", "name", name, "path", path)
	return nil
}

// RemoveServer deletes the server called name and rewrites the document.
// The file must exist and parse; removing a name that is not present still
// rewrites it.
func RemoveServer(path, name string) error {
	doc, err := Load(path)
	if err != nil {
		return err
	}

	_, existed := doc.Servers[name]
	delete(doc.Servers, name)
	if err := Save(path, doc); err != nil {
		return err
	}

	logging.Info("Removed MCP server", "name", name, "path", path, "existed", existed)
	return nil
}
