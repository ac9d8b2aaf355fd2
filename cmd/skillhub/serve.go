package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"skillhub/internal/mcpserver"

	"github.com/spf13/cobra"
)

// serveCmd represents: `skillhub serve`
func (a *app) serveCmd() *cobra.Command {
	var (
		allow     []string
		workspace string
		mcpConfig string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run an MCP server over stdio exposing the skills workspace",
		Long: `Run a Model Context Protocol server on stdin/stdout. Read-only tools are
always available; write tools must be enabled with --allow:

  create-folder, create-file, edit-file, delete-file, mcp-write, or all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			perms, err := mcpserver.ParsePermissions(allow)
			if err != nil {
				return err
			}
			if workspace == "" {
				workspace = a.settings.SkillsPath
			}
			if workspace == "" {
				return errors.New("no workspace given and skills_path is not set (use --workspace)")
			}
			if mcpConfig == "" {
				mcpConfig = a.settings.MCPConfigPath
			}

			srv, err := mcpserver.NewServer(mcpserver.Config{
				Workspace:     workspace,
				MCPConfigPath: mcpConfig,
				Permissions:   perms,
			}, a.logger)
			if err != nil {
				return err
			}
			defer srv.Stop()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Start(ctx)
		},
	}

	cmd.Flags().StringSliceVar(&allow, "allow", nil, "write tools to enable (comma separated)")
	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "skills root served to clients (default: settings skills_path)")
	cmd.Flags().StringVar(&mcpConfig, "mcp-config", "", "MCP config edited by the mcp tools (default: settings mcp_config_path)")
	return cmd
}
