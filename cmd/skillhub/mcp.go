package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"skillhub/internal/mcpconfig"
	"skillhub/internal/platform"

	"github.com/spf13/cobra"
)

// mcpCmd represents: `skillhub mcp ...`
func (a *app) mcpCmd() *cobra.Command {
	var configFlag string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Manage MCP servers in a client config file",
		Long: `Manage the "mcpServers" entries of an MCP client config file. The file
defaults to the configured mcp_config_path (Claude Desktop's config unless
changed).`,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "MCP config file (default: settings mcp_config_path)")

	cmd.AddCommand(
		a.mcpListCmd(&configFlag),
		a.mcpAddCmd(&configFlag),
		&cobra.Command{
			Use:   "remove <name>",
			Short: "Remove a server; the config file must exist",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := a.mcpConfigPath(configFlag)
				if err != nil {
					return err
				}
				if err := mcpconfig.RemoveServer(path, args[0]); err != nil {
					return err
				}
				a.logger.LogUserAction("mcp_remove", args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s from %s\n", args[0], path)
				return nil
			},
		},
		a.mcpPathsCmd(),
	)
	return cmd
}

func (a *app) mcpListCmd(configFlag *string) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List configured servers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, "text", "json", "yaml"); err != nil {
				return err
			}
			path, err := a.mcpConfigPath(*configFlag)
			if err != nil {
				return err
			}
			doc, err := mcpconfig.Load(path)
			if err != nil {
				return err
			}

			if output != "text" {
				return writeData(cmd.OutOrStdout(), output, doc.Servers)
			}
			out := cmd.OutOrStdout()
			names := mcpconfig.ServerNames(doc)
			if len(names) == 0 {
				fmt.Fprintf(out, "No MCP servers in %s\n", path)
				return nil
			}
			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			for _, name := range names {
				entry := doc.Servers[name]
				fmt.Fprintf(w, "%s\t%s\n", name, strings.TrimSpace(entry.Command+" "+strings.Join(entry.Args, " ")))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func (a *app) mcpAddCmd(configFlag *string) *cobra.Command {
	var env []string

	cmd := &cobra.Command{
		Use:   "add <name> <command> [args...]",
		Short: "Add or replace a server",
		Long: `Add a server, replacing any server of the same name. The config file is
created when missing. Put "--" before arguments that start with a dash.`,
		Example: `  skillhub mcp add fs npx -- -y @modelcontextprotocol/server-filesystem ~/skills
  skillhub mcp add github npx --env GITHUB_TOKEN=xyz -- -y @modelcontextprotocol/server-github`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			envMap, err := parseEnv(env)
			if err != nil {
				return err
			}
			path, err := a.mcpConfigPath(*configFlag)
			if err != nil {
				return err
			}

			entry := mcpconfig.ServerEntry{
				Command: args[1],
				Args:    append([]string{}, args[2:]...),
				Env:     envMap,
			}
			if err := mcpconfig.AddServer(path, args[0], entry); err != nil {
				return err
			}
			a.logger.LogUserAction("mcp_add", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s to %s\n", args[0], path)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&env, "env", "e", nil, "environment variable KEY=VALUE (repeatable)")
	return cmd
}

func (a *app) mcpPathsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "paths",
		Short: "Show where known MCP clients keep their config on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, "text", "json", "yaml"); err != nil {
				return err
			}
			locations := mcpconfig.Discover(platform.KnownClients(platform.Current()))

			if output != "text" {
				return writeData(cmd.OutOrStdout(), output, locations)
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "CLIENT\tSTATUS\tPATH")
			for _, loc := range locations {
				fmt.Fprintf(w, "%s\t%s\t%s\n", loc.Client, locationStatus(loc), loc.Path)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func locationStatus(loc mcpconfig.Location) string {
	switch {
	case !loc.Exists:
		return "missing"
	case loc.Error != "":
		return "unreadable"
	case loc.Servers == 1:
		return "1 server"
	default:
		return fmt.Sprintf("%d servers", loc.Servers)
	}
}

func parseEnv(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --env %q, expected KEY=VALUE", pair)
		}
		env[key] = value
	}
	return env, nil
}
