package main

import (
	"fmt"

	"skillhub/internal/skills"
	"skillhub/pkg/fileops"

	"github.com/spf13/cobra"
)

// fileCmd represents: `skillhub file ...`
func (a *app) fileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "file",
		Short: "Read, write and organise skill files and folders",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "read <path>",
			Short: "Print a file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := skills.ReadFile(fileops.ExpandPath(args[0]))
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			},
		},
		&cobra.Command{
			Use:   "write <path> [content|-]",
			Short: "Replace a file's content, reading stdin when no content is given",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				content, err := readContent(args, 1, cmd.InOrStdin())
				if err != nil {
					return err
				}
				path := fileops.ExpandPath(args[0])
				if err := skills.WriteFile(path, content); err != nil {
					return err
				}
				a.logger.LogUserAction("file_write", path)
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "create <folder> <name> [content|-]",
			Short: "Create a new file; fails if it exists",
			Args:  cobra.RangeArgs(2, 3),
			RunE: func(cmd *cobra.Command, args []string) error {
				content := ""
				if len(args) == 3 {
					var err error
					if content, err = readContent(args, 2, cmd.InOrStdin()); err != nil {
						return err
					}
				}
				path, err := skills.CreateFile(fileops.ExpandPath(args[0]), args[1], content)
				if err != nil {
					return err
				}
				a.logger.LogUserAction("file_create", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "mkdir <parent> <name>",
			Short: "Create a folder; fails if it exists",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := skills.CreateFolder(fileops.ExpandPath(args[0]), args[1])
				if err != nil {
					return err
				}
				a.logger.LogUserAction("folder_create", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <path>",
			Short: "Delete a file, or a folder and everything in it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				path := fileops.ExpandPath(args[0])
				if err := skills.Delete(path); err != nil {
					return err
				}
				a.logger.LogUserAction("delete", path)
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "copy <src> <dst>",
			Short: "Copy a file or folder; a taken destination gets a _copyN suffix",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := skills.Copy(fileops.ExpandPath(args[0]), fileops.ExpandPath(args[1]))
				if err != nil {
					return err
				}
				a.logger.LogUserAction("copy", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		&cobra.Command{
			Use:   "move <src> <dst>",
			Short: "Move a file or folder; a taken destination gets a _N suffix",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := skills.Move(fileops.ExpandPath(args[0]), fileops.ExpandPath(args[1]))
				if err != nil {
					return err
				}
				a.logger.LogUserAction("move", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			},
		},
		a.fileListCmd(),
	)
	return cmd
}

func (a *app) fileListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "ls [dir]",
		Short: "List a directory, defaulting to the skills root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, "text", "json", "yaml"); err != nil {
				return err
			}
			dir, err := a.skillsRoot(args)
			if err != nil {
				return err
			}
			entries, err := skills.List(dir)
			if err != nil {
				return err
			}

			if output != "text" {
				return writeData(cmd.OutOrStdout(), output, entries)
			}
			for _, e := range entries {
				name := e.Name
				if e.IsDir {
					name += "/"
				}
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text, json or yaml")
	return cmd
}
