package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"skillhub/internal/apperrors"
	"skillhub/internal/credentials"
	"skillhub/internal/dialog"
	"skillhub/internal/logging"
	"skillhub/internal/platform"
	"skillhub/internal/settings"
	"skillhub/pkg/fileops"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v         *viper.Viper
	logger    *logging.AppLogger
	keys      *credentials.Manager
	newPicker func(terminal bool, in io.Reader, out io.Writer) dialog.Picker

	configDir string
	settings  settings.Record
}

func newApp() *app {
	return &app{
		v:         viper.New(),
		logger:    logging.GetDefault(),
		keys:      credentials.NewManager(),
		newPicker: defaultPicker,
	}
}

func defaultPicker(terminal bool, in io.Reader, out io.Writer) dialog.Picker {
	if terminal {
		return &dialog.TerminalPicker{Input: in, Output: out}
	}
	return dialog.NewExecPicker()
}

// rootCmd builds the command tree: `skillhub`
func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "skillhub",
		Short: "Manage agent skill files and MCP client configs",
		Long: `skillhub scans and edits a directory of agent skills (markdown, JSON and
YAML files) and manages the MCP server entries of desktop AI clients such as
Claude Desktop and Cursor.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("config-dir", "", "directory holding settings.json (default $XDG_CONFIG_HOME/skillhub)")
	flags.String("log-level", "", "log level: debug, info, warn or error")

	// flag > SKILLHUB_* env > default
	_ = a.v.BindPFlag("config-dir", flags.Lookup("config-dir"))
	_ = a.v.BindPFlag("log-level", flags.Lookup("log-level"))
	a.v.SetEnvPrefix("SKILLHUB")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	a.v.SetDefault("config-dir", settings.DefaultDir())

	cmd.AddCommand(
		a.scanCmd(),
		a.showCmd(),
		a.fileCmd(),
		a.settingsCmd(),
		a.mcpCmd(),
		a.keyCmd(),
		a.pickCmd(),
		a.statusCmd(),
		a.serveCmd(),
	)
	return cmd
}

// setup applies the log level and loads the settings record. The settings
// commands fall back to defaults when settings.json is malformed so that it
// can be repaired with `settings set`.
func (a *app) setup(cmd *cobra.Command) error {
	if level := a.v.GetString("log-level"); level != "" {
		if err := a.logger.SetLevel(level); err != nil {
			return err
		}
	}

	a.configDir = fileops.ExpandPath(a.v.GetString("config-dir"))
	rec, err := settings.Load(a.configDir)
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrParse) && isSettingsCmd(cmd):
		a.logger.Warn("Ignoring malformed settings file", "path", settings.Path(a.configDir), "error", err)
		rec = settings.Defaults(platform.Current())
	default:
		return fmt.Errorf("failed to load settings: %w", err)
	}
	a.settings = rec

	a.logger.Debug("Settings loaded", "configDir", a.configDir, "skillsPath", rec.SkillsPath)
	return nil
}

func isSettingsCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "settings" {
			return true
		}
	}
	return false
}

// skillsRoot returns the directory named on the command line, falling back
// to the configured skills_path.
func (a *app) skillsRoot(args []string) (string, error) {
	root := a.settings.SkillsPath
	if len(args) > 0 && args[0] != "" {
		root = args[0]
	}
	if root == "" {
		return "", errors.New("no skills directory given and skills_path is not set (try: skillhub settings set skills_path <dir>)")
	}
	return fileops.ExpandPath(root), nil
}

// mcpConfigPath returns the --config value, falling back to the configured
// mcp_config_path.
func (a *app) mcpConfigPath(flag string) (string, error) {
	path := a.settings.MCPConfigPath
	if flag != "" {
		path = flag
	}
	if path == "" {
		return "", errors.New("no MCP config path given and mcp_config_path is not set (use --config)")
	}
	return fileops.ExpandPath(path), nil
}

// Execute is called by main.main()
func Execute() {
	if err := newApp().rootCmd().Execute(); err != nil {
		logging.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
