package main

import (
	"fmt"

	"skillhub/internal/render"
	"skillhub/internal/skills"

	"github.com/spf13/cobra"
)

// scanCmd represents: `skillhub scan [root]`
func (a *app) scanCmd() *cobra.Command {
	var (
		output string
		width  int
	)

	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Scan a skills directory",
		Long: `Scan a skills directory and report every folder and markdown, JSON or YAML
file below it. Without a root the configured skills_path is scanned.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, "tree", "json", "yaml"); err != nil {
				return err
			}
			root, err := a.skillsRoot(args)
			if err != nil {
				return err
			}

			tree, err := skills.Scan(root)
			if err != nil {
				return err
			}

			if output != "tree" {
				return writeData(cmd.OutOrStdout(), output, tree)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, render.Tree(tree.Root, tree.Folders, tree.Files, width))
			fmt.Fprintf(out, "\n%d folders, %d files\n", len(tree.Folders), len(tree.Files))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "tree", "output format: tree, json or yaml")
	cmd.Flags().IntVar(&width, "width", 0, "truncate tree labels to this width (0 disables)")
	return cmd
}
