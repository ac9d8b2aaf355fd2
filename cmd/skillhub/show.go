package main

import (
	"fmt"

	"skillhub/internal/render"
	"skillhub/internal/skills"
	"skillhub/pkg/fileops"

	"github.com/spf13/cobra"
)

// showCmd represents: `skillhub show <file>`
func (a *app) showCmd() *cobra.Command {
	var (
		raw   bool
		width int
	)

	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Preview a skill file",
		Long: `Print a skill file. Markdown is rendered for the terminal using the
configured theme; other files are printed as they are.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := fileops.ExpandPath(args[0])
			content, err := skills.ReadFile(path)
			if err != nil {
				return err
			}

			if ft, _ := skills.ClassifyFile(path); raw || ft != skills.Markdown {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			out, err := render.Markdown(content, a.settings.Theme, width)
			if err != nil {
				return fmt.Errorf("failed to render markdown: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown without rendering")
	cmd.Flags().IntVar(&width, "width", 80, "word wrap width for rendered markdown")
	return cmd
}
