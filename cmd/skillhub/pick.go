package main

import (
	"fmt"

	"skillhub/internal/settings"

	"github.com/spf13/cobra"
)

// pickCmd represents: `skillhub pick`
func (a *app) pickCmd() *cobra.Command {
	var (
		terminal bool
		save     bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a directory with a folder dialog",
		Long: `Open the desktop folder dialog (or a terminal browser with --terminal) and
print the chosen directory. With --save it becomes the skills_path.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			picker := a.newPicker(terminal, cmd.InOrStdin(), cmd.ErrOrStderr())

			path, ok := picker.PickDirectory(cmd.Context())
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "No directory selected")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)

			if save {
				rec := a.settings
				rec.SkillsPath = path
				if err := settings.Save(a.configDir, rec); err != nil {
					return err
				}
				a.settings = rec
				a.logger.LogUserAction("skills_path_picked", path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&terminal, "terminal", false, "browse directories in the terminal instead of a desktop dialog")
	cmd.Flags().BoolVar(&save, "save", false, "store the chosen directory as skills_path")
	return cmd
}
