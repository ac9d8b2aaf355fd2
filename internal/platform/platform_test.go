package platform

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(vars map[string]string) LookupEnv {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefaultMCPConfigPath(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		want string
	}{
		{
			name: "windows uses APPDATA",
			goos: Windows,
			env:  map[string]string{"APPDATA": `C:\Users\me\AppData\Roaming`, "HOME": "/ignored"},
			want: filepath.Join(`C:\Users\me\AppData\Roaming`, "Claude", "claude_desktop_config.json"),
		},
		{
			name: "macos uses Application Support",
			goos: MacOS,
			env:  map[string]string{"HOME": "/Users/me"},
			want: filepath.Join("/Users/me", "Library", "Application Support", "Claude", "claude_desktop_config.json"),
		},
		{
			name: "linux uses lowercase config dir",
			goos: Linux,
			env:  map[string]string{"HOME": "/home/me"},
			want: filepath.Join("/home/me", ".config", "claude", "claude_desktop_config.json"),
		},
		{
			name: "windows without APPDATA",
			goos: Windows,
			env:  map[string]string{"USERPROFILE": `C:\Users\me`},
			want: "",
		},
		{
			name: "linux with empty HOME",
			goos: Linux,
			env:  map[string]string{"HOME": ""},
			want: "",
		},
		{
			name: "unknown os",
			goos: "plan9",
			env:  map[string]string{"HOME": "/usr/me"},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DefaultMCPConfigPath(tt.goos, envOf(tt.env))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultMCPConfigPath_NilLookup(t *testing.T) {
	assert.Empty(t, DefaultMCPConfigPath(Linux, nil))
}

func clientByName(clients []Client, name string) (Client, bool) {
	for _, c := range clients {
		if c.Name == name {
			return c, true
		}
	}
	return Client{}, false
}

func TestKnownClients_IncludesClaudeAndCursor(t *testing.T) {
	tests := []struct {
		goos       string
		env        map[string]string
		wantCursor string
	}{
		{
			goos:       Windows,
			env:        map[string]string{"APPDATA": `C:\AppData`, "USERPROFILE": `C:\Users\me`},
			wantCursor: filepath.Join(`C:\Users\me`, ".cursor", "mcp.json"),
		},
		{
			goos:       MacOS,
			env:        map[string]string{"HOME": "/Users/me"},
			wantCursor: filepath.Join("/Users/me", ".cursor", "mcp.json"),
		},
		{
			goos:       Linux,
			env:        map[string]string{"HOME": "/home/me"},
			wantCursor: filepath.Join("/home/me", ".cursor", "mcp.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			clients := KnownClients(tt.goos, envOf(tt.env))
			require.NotEmpty(t, clients)

			assert.Equal(t, "Claude Desktop", clients[0].Name)
			assert.Equal(t, DefaultMCPConfigPath(tt.goos, envOf(tt.env)), clients[0].Path)

			cursor, ok := clientByName(clients, "Cursor")
			require.True(t, ok, "Cursor missing from %v", clients)
			assert.Equal(t, tt.wantCursor, cursor.Path)
		})
	}
}

func TestKnownClients_OmitsEntriesWithoutVariable(t *testing.T) {
	// Only APPDATA set: Claude Desktop and the editor extensions resolve,
	// the dot-directory clients under USERPROFILE do not.
	clients := KnownClients(Windows, envOf(map[string]string{"APPDATA": `C:\AppData`}))

	for _, c := range clients {
		assert.NotEmpty(t, c.Path, "client %s has empty path", c.Name)
	}

	_, hasClaude := clientByName(clients, "Claude Desktop")
	_, hasCline := clientByName(clients, "Cline")
	_, hasCursor := clientByName(clients, "Cursor")
	_, hasKiro := clientByName(clients, "Kiro (User)")

	assert.True(t, hasClaude)
	assert.True(t, hasCline)
	assert.False(t, hasCursor)
	assert.False(t, hasKiro)
}

func TestKnownClients_NoEnvironment(t *testing.T) {
	for _, goos := range []string{Windows, MacOS, Linux} {
		assert.Empty(t, KnownClients(goos, envOf(nil)), goos)
	}
}

func TestKnownClients_UnknownOS(t *testing.T) {
	assert.Empty(t, KnownClients("plan9", envOf(map[string]string{"HOME": "/usr/me"})))
}

func TestKnownClients_EditorStorageFollowsPlatform(t *testing.T) {
	clients := KnownClients(MacOS, envOf(map[string]string{"HOME": "/Users/me"}))

	cline, ok := clientByName(clients, "Cline")
	require.True(t, ok)
	assert.Equal(t,
		filepath.Join("/Users/me", "Library", "Application Support", "Code", "User", "globalStorage",
			"saoudrizwan.claude-dev", "settings", "cline_mcp_settings.json"),
		cline.Path)

	vscode, ok := clientByName(clients, "VS Code (Copilot)")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/Users/me", "Library", "Application Support", "Code", "User", "settings.json"), vscode.Path)
}

func TestCurrent(t *testing.T) {
	goos, lookup := Current()
	assert.Equal(t, runtime.GOOS, goos)

	t.Setenv("SKILLHUB_PLATFORM_TEST", "x")
	v, ok := lookup("SKILLHUB_PLATFORM_TEST")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
}
