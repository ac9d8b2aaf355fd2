// Package platform maps an operating system to the well-known locations of
// MCP client configuration files.
//
// Nothing here touches the filesystem. The operating system and the
// environment are passed in, so every platform branch can be exercised from
// any host.
package platform

import (
	"os"
	"path/filepath"
	"runtime"
)

// Operating systems, spelled as runtime.GOOS spells them.
const (
	Windows = "windows"
	MacOS   = "darwin"
	Linux   = "linux"
)

// LookupEnv reports the value of an environment variable and whether it is set.
type LookupEnv func(key string) (string, bool)

// Client is one entry in the known-clients table.
type Client struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Current returns the host operating system and an environment lookup backed
// by the process environment.
func Current() (string, LookupEnv) {
	return runtime.GOOS, os.LookupEnv
}

// DefaultMCPConfigPath returns the Claude Desktop configuration file for goos.
// It returns "" when goos is not recognized or the base variable is unset.
func DefaultMCPConfigPath(goos string, lookup LookupEnv) string {
	switch goos {
	case Windows:
		if appData, ok := nonEmpty(lookup, "APPDATA"); ok {
			return filepath.Join(appData, "Claude", "claude_desktop_config.json")
		}
	case MacOS:
		if home, ok := nonEmpty(lookup, "HOME"); ok {
			return filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")
		}
	case Linux:
		if home, ok := nonEmpty(lookup, "HOME"); ok {
			return filepath.Join(home, ".config", "claude", "claude_desktop_config.json")
		}
	}
	return ""
}

// clientLocation describes where one client keeps its config: an environment
// variable naming the base directory plus a path below it.
type clientLocation struct {
	name string
	env  string
	sub  []string
}

const (
	clineExtension = "saoudrizwan.claude-dev"
	rooExtension   = "rooveterinaryinc.roo-cline"
)

// KnownClients lists every client whose config location can be derived on goos.
// Claude Desktop comes first and uses the same path as DefaultMCPConfigPath.
// Entries whose environment variable is unset are left out.
func KnownClients(goos string, lookup LookupEnv) []Client {
	var clients []Client

	if p := DefaultMCPConfigPath(goos, lookup); p != "" {
		clients = append(clients, Client{Name: "Claude Desktop", Path: p})
	}

	for _, loc := range clientLocations(goos) {
		base, ok := nonEmpty(lookup, loc.env)
		if !ok {
			continue
		}
		clients = append(clients, Client{
			Name: loc.name,
			Path: filepath.Join(append([]string{base}, loc.sub...)...),
		})
	}

	return clients
}

func clientLocations(goos string) []clientLocation {
	// home holds dot-directories, appBase holds editor data
	var home, appBase string
	var appSub []string

	switch goos {
	case Windows:
		home, appBase = "USERPROFILE", "APPDATA"
	case MacOS:
		home, appBase = "HOME", "HOME"
		appSub = []string{"Library", "Application Support"}
	case Linux:
		home, appBase = "HOME", "HOME"
		appSub = []string{".config"}
	default:
		return nil
	}

	underApp := func(parts ...string) []string {
		return append(append([]string{}, appSub...), parts...)
	}
	globalStorage := func(ext string) []string {
		return underApp("Code", "User", "globalStorage", ext, "settings", "cline_mcp_settings.json")
	}

	return []clientLocation{
		{name: "Cursor", env: home, sub: []string{".cursor", "mcp.json"}},
		{name: "Cline", env: appBase, sub: globalStorage(clineExtension)},
		{name: "Roo Code", env: appBase, sub: globalStorage(rooExtension)},
		{name: "Roo Code (New)", env: home, sub: []string{".roo", "mcp_settings.json"}},
		{name: "Windsurf", env: home, sub: []string{".codeium", "windsurf", "mcp_config.json"}},
		{name: "VS Code (Copilot)", env: appBase, sub: underApp("Code", "User", "settings.json")},
		{name: "Kiro (User)", env: home, sub: []string{".kiro", "settings", "mcp.json"}},
	}
}

func nonEmpty(lookup LookupEnv, key string) (string, bool) {
	if lookup == nil {
		return "", false
	}
	v, ok := lookup(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
