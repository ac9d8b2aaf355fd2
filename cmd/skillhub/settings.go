package main

import (
	"fmt"
	"strings"

	"skillhub/internal/apperrors"
	"skillhub/internal/settings"

	"github.com/spf13/cobra"
)

// settingsCmd represents: `skillhub settings ...`
func (a *app) settingsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change application settings",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print all settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(output, "yaml", "json"); err != nil {
				return err
			}
			return writeData(cmd.OutOrStdout(), output, a.settings)
		},
	}
	show.Flags().StringVarP(&output, "output", "o", "yaml", "output format: yaml or json")

	cmd.AddCommand(
		show,
		&cobra.Command{
			Use:       "get <key>",
			Short:     "Print one setting",
			Args:      cobra.ExactArgs(1),
			ValidArgs: settings.Keys,
			RunE: func(cmd *cobra.Command, args []string) error {
				value, err := a.settings.Get(args[0])
				if err != nil {
					return withValidKeys(err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <key> <value>",
			Short:     "Change one setting and save",
			Args:      cobra.ExactArgs(2),
			ValidArgs: settings.Keys,
			RunE: func(cmd *cobra.Command, args []string) error {
				key, value := args[0], args[1]
				if key == "theme" && !settings.ValidTheme(value) {
					return fmt.Errorf("invalid theme %q (valid: light, dark, system)", value)
				}

				rec := a.settings
				if err := rec.Set(key, value); err != nil {
					return withValidKeys(err)
				}
				if err := settings.Save(a.configDir, rec); err != nil {
					return err
				}
				a.settings = rec
				a.logger.LogUserAction("settings_set", key)
				fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the settings file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				fmt.Fprintln(cmd.OutOrStdout(), settings.Path(a.configDir))
				return nil
			},
		},
	)
	return cmd
}

func withValidKeys(err error) error {
	if apperrors.Kind(err) == apperrors.ErrInvalid {
		return fmt.Errorf("%w (valid keys: %s)", err, strings.Join(settings.Keys, ", "))
	}
	return err
}
