package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"skillhub/internal/gitinfo"
	"skillhub/internal/mcpconfig"
	"skillhub/internal/settings"
	"skillhub/internal/skills"
	"skillhub/pkg/fileops"

	"github.com/spf13/cobra"
)

type skillsStatus struct {
	Path    string          `json:"path" yaml:"path"`
	Folders int             `json:"folders" yaml:"folders"`
	Files   int             `json:"files" yaml:"files"`
	Git     *gitinfo.Status `json:"git,omitempty" yaml:"git,omitempty"`
	Error   string          `json:"error,omitempty" yaml:"error,omitempty"`
}

type mcpStatus struct {
	Path    string `json:"path" yaml:"path"`
	Servers int    `json:"servers" yaml:"servers"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

type statusReport struct {
	SettingsFile string        `json:"settings_file" yaml:"settings_file"`
	Skills       *skillsStatus `json:"skills,omitempty" yaml:"skills,omitempty"`
	MCP          *mcpStatus    `json:"mcp,omitempty" yaml:"mcp,omitempty"`
	AIProvider   string        `json:"ai_provider" yaml:"ai_provider"`
	AIModel      string        `json:"ai_model" yaml:"ai_model"`
	APIKeyStored bool          `json:"api_key_stored" yaml:"api_key_stored"`
}

// statusCmd represents: `skillhub status`
func (a *app) statusCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarise the skills directory, MCP config and API key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, "text", "json", "yaml"); err != nil {
				return err
			}
			report := a.buildStatus()
			if output != "text" {
				return writeData(cmd.OutOrStdout(), output, report)
			}
			printStatus(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}

func (a *app) buildStatus() statusReport {
	report := statusReport{
		SettingsFile: settings.Path(a.configDir),
		AIProvider:   a.settings.AIProvider,
		AIModel:      a.settings.AIModel,
		APIKeyStored: a.settings.AIProvider != "" && a.keys.Has(a.settings.AIProvider),
	}

	if root := a.settings.SkillsPath; root != "" {
		st := &skillsStatus{Path: fileops.ExpandPath(root)}
		if tree, err := skills.Scan(st.Path); err != nil {
			st.Error = err.Error()
		} else {
			st.Folders, st.Files = len(tree.Folders), len(tree.Files)
			if git, err := gitinfo.Inspect(st.Path); err != nil {
				a.logger.Warn("Git inspection failed", "path", st.Path, "error", err)
			} else if git.IsRepo {
				st.Git = &git
			}
		}
		report.Skills = st
	}

	if path := a.settings.MCPConfigPath; path != "" {
		st := &mcpStatus{Path: fileops.ExpandPath(path)}
		doc, err := mcpconfig.Load(st.Path)
		switch {
		case err == nil:
			st.Servers = len(doc.Servers)
		case errors.Is(err, fs.ErrNotExist):
			st.Error = "missing"
		default:
			st.Error = err.Error()
		}
		report.MCP = st
	}
	return report
}

func printStatus(w io.Writer, r statusReport) {
	fmt.Fprintf(w, "Settings:  %s\n", r.SettingsFile)

	switch s := r.Skills; {
	case s == nil:
		fmt.Fprintln(w, "Skills:    not configured")
	case s.Error != "":
		fmt.Fprintf(w, "Skills:    %s (%s)\n", s.Path, s.Error)
	default:
		fmt.Fprintf(w, "Skills:    %s (%d folders, %d files)\n", s.Path, s.Folders, s.Files)
		if g := s.Git; g != nil {
			state := "clean"
			if g.Dirty {
				state = "uncommitted changes"
			}
			branch := g.Branch
			if branch == "" {
				branch = "detached"
			}
			fmt.Fprintf(w, "Git:       %s %s, %s\n", branch, g.Head, state)
		}
	}

	switch m := r.MCP; {
	case m == nil:
		fmt.Fprintln(w, "MCP:       not configured")
	case m.Error != "":
		fmt.Fprintf(w, "MCP:       %s (%s)\n", m.Path, m.Error)
	default:
		fmt.Fprintf(w, "MCP:       %s (%d servers)\n", m.Path, m.Servers)
	}

	fmt.Fprintf(w, "AI:        %s / %s, API key %s\n", r.AIProvider, r.AIModel, keyState(r.APIKeyStored))
}
