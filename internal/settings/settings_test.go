package settings

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"skillhub/internal/apperrors"
	"skillhub/internal/platform"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) platform.LookupEnv {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		env     map[string]string
		wantMCP string
	}{
		{
			name:    "linux",
			goos:    platform.Linux,
			env:     map[string]string{"HOME": "/home/test"},
			wantMCP: filepath.Join("/home/test", ".config", "claude", "claude_desktop_config.json"),
		},
		{
			name:    "macOS",
			goos:    platform.MacOS,
			env:     map[string]string{"HOME": "/Users/test"},
			wantMCP: filepath.Join("/Users/test", "Library", "Application Support", "Claude", "claude_desktop_config.json"),
		},
		{
			name:    "windows without APPDATA",
			goos:    platform.Windows,
			env:     map[string]string{"USERPROFILE": `C:\Users\test`},
			wantMCP: "",
		},
		{
			name:    "unknown OS",
			goos:    "plan9",
			env:     map[string]string{"HOME": "/usr/glenda"},
			wantMCP: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Defaults(tt.goos, lookupFrom(tt.env))
			assert.Equal(t, Record{
				SkillsPath:    "",
				MCPConfigPath: tt.wantMCP,
				Theme:         "dark",
				Language:      "zh-CN",
				AIProvider:    "anthropic",
				AIModel:       "claude-3-5-sonnet",
			}, got)
		})
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")

	rec, err := Load(dir)
	require.NoError(t, err)

	goos, lookup := platform.Current()
	assert.Equal(t, Defaults(goos, lookup), rec)

	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr), "load must not create the directory")
}

func TestSaveThenLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "skillhub")
	rec := Record{
		SkillsPath:    "/data/skills",
		MCPConfigPath: "/data/mcp.json",
		Theme:         "light",
		Language:      "en",
		AIProvider:    "openai",
		AIModel:       "gpt-4o",
	}

	require.NoError(t, Save(dir, rec))

	got, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	if runtime.GOOS != "windows" {
		info, err := os.Stat(Path(dir))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	}
}

func TestSave_FieldOrderAndOverwrite(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, Save(dir, Record{SkillsPath: "/very/long/path/that/is/replaced/later", Theme: "dark"}))
	require.NoError(t, Save(dir, Record{SkillsPath: "/s", Theme: "light"}))

	data, err := os.ReadFile(Path(dir))
	require.NoError(t, err)

	want := `{
  "skills_path": "/s",
  "mcp_config_path": "",
  "theme": "light",
  "language": "",
  "ai_provider": "",
  "ai_model": ""
}
`
	assert.Equal(t, want, string(data))
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(Path(dir), []byte(`{"skills_path": "/mine", "theme": "system"}`), 0600))

	rec, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "/mine", rec.SkillsPath)
	assert.Equal(t, "system", rec.Theme)
	assert.Equal(t, "zh-CN", rec.Language)
	assert.Equal(t, "anthropic", rec.AIProvider)
}

func TestLoad_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "theme = dark"},
		{"wrong type", `{"theme": 3}`},
		{"array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(Path(dir), []byte(tt.content), 0600))

			_, err := Load(dir)
			assert.ErrorIs(t, err, apperrors.ErrParse)
		})
	}
}

func TestGetSet(t *testing.T) {
	var rec Record

	for _, key := range Keys {
		require.NoError(t, rec.Set(key, "value-"+key))
	}
	for _, key := range Keys {
		got, err := rec.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "value-"+key, got)
	}
	assert.Equal(t, "value-ai_model", rec.AIModel)

	_, err := rec.Get("colour")
	assert.ErrorIs(t, err, apperrors.ErrInvalid)
	assert.ErrorIs(t, rec.Set("colour", "red"), apperrors.ErrInvalid)
}

func TestValidTheme(t *testing.T) {
	for _, theme := range []string{"light", "dark", "system"} {
		assert.True(t, ValidTheme(theme), theme)
	}
	for _, theme := range []string{"", "Dark", "solarized"} {
		assert.False(t, ValidTheme(theme), theme)
	}
}

func TestDefaultDir(t *testing.T) {
	// Registered before Setenv so it runs after the variable is restored.
	t.Cleanup(xdg.Reload)

	custom := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", custom)
	xdg.Reload()

	if runtime.GOOS == "linux" {
		assert.Equal(t, filepath.Join(custom, "skillhub"), DefaultDir())
	} else {
		assert.Equal(t, "skillhub", filepath.Base(DefaultDir()))
	}
}
