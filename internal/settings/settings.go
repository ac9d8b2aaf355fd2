// Package settings persists the application settings record as settings.json
// in the application config directory.
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"skillhub/internal/apperrors"
	"skillhub/internal/logging"
	"skillhub/internal/platform"

	"github.com/adrg/xdg"
)

const (
	AppName  = "skillhub"
	FileName = "settings.json"
)

// Record is the flat settings document. Field order is the order written to
// disk.
type Record struct {
	SkillsPath    string `json:"skills_path" yaml:"skills_path"`
	MCPConfigPath string `json:"mcp_config_path" yaml:"mcp_config_path"`
	Theme         string `json:"theme" yaml:"theme"`
	Language      string `json:"language" yaml:"language"`
	AIProvider    string `json:"ai_provider" yaml:"ai_provider"`
	AIModel       string `json:"ai_model" yaml:"ai_model"`
}

// Keys lists the JSON field names accepted by Get and Set.
var Keys = []string{"skills_path", "mcp_config_path", "theme", "language", "ai_provider", "ai_model"}

var themes = map[string]bool{"light": true, "dark": true, "system": true}

// ValidTheme reports whether theme is one of light, dark or system.
func ValidTheme(theme string) bool {
	return themes[theme]
}

// Defaults returns the record used when no settings file exists. The MCP
// config path is the platform default for goos and may be empty.
func Defaults(goos string, lookup platform.LookupEnv) Record {
	return Record{
		SkillsPath:    "",
		MCPConfigPath: platform.DefaultMCPConfigPath(goos, lookup),
		Theme:         "dark",
		Language:      "zh-CN",
		AIProvider:    "anthropic",
		AIModel:       "claude-3-5-sonnet",
	}
}

// DefaultDir returns the standard config directory for the application.
func DefaultDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Path returns the settings file location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load returns the record stored in dir. Without a settings file the
// defaults for the running platform are returned. Fields absent from the
// file keep their default value.
func Load(dir string) (Record, error) {
	goos, lookup := platform.Current()
	rec := Defaults(goos, lookup)

	path := Path(dir)
	logging.Debug("Loading settings", "path", path)

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		logging.Debug("No settings file, using defaults", "path", path)
		return rec, nil
	}
	if err != nil {
		return Record{}, apperrors.FromOS("load settings", path, err)
	}

	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, apperrors.Parse("load settings", path, err)
	}
	return rec, nil
}

// Save writes rec to dir, creating the directory when needed and replacing
// any previous file.
func Save(dir string, rec Record) error {
	path := Path(dir)

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return apperrors.Parse("save settings", path, err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return apperrors.IO("save settings", path, err)
	}

	// Create file with restrictive permissions (600)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return apperrors.FromOS("save settings", path, err)
	}
	defer f.Close()

	if _, err := f.Write(append(data, '\n')); err != nil {
		return apperrors.IO("save settings", path, err)
	}
	if err := f.Close(); err != nil {
		return apperrors.IO("save settings", path, err)
	}

	logging.Info("Settings saved", "path", path)
	return nil
}

func (r *Record) field(key string) (*string, error) {
	switch key {
	case "skills_path":
		return &r.SkillsPath, nil
	case "mcp_config_path":
		return &r.MCPConfigPath, nil
	case "theme":
		return &r.Theme, nil
	case "language":
		return &r.Language, nil
	case "ai_provider":
		return &r.AIProvider, nil
	case "ai_model":
		return &r.AIModel, nil
	}
	return nil, apperrors.Invalid("settings", "", fmt.Errorf("unknown key %q", key))
}

// Get returns the value stored under the JSON field name key.
func (r Record) Get(key string) (string, error) {
	p, err := r.field(key)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set stores value under the JSON field name key.
func (r *Record) Set(key, value string) error {
	p, err := r.field(key)
	if err != nil {
		return err
	}
	*p = value
	return nil
}
