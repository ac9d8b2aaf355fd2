package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// keyCmd represents: `skillhub key ...`
func (a *app) keyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Store AI provider API keys in the OS credential store",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "set <provider> [key|-]",
			Short: "Store the API key for a provider, reading stdin when no key is given",
			Args:  cobra.RangeArgs(1, 2),
			RunE: func(cmd *cobra.Command, args []string) error {
				key, err := readContent(args, 1, cmd.InOrStdin())
				if err != nil {
					return err
				}
				if err := a.keys.Store(args[0], strings.TrimSpace(key)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored API key for %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <provider>",
			Short: "Remove the API key for a provider",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.keys.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted API key for %s\n", args[0])
				return nil
			},
		},
		&cobra.Command{
			Use:   "status [provider]",
			Short: "Report whether a key is stored, defaulting to the configured ai_provider",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				provider := a.settings.AIProvider
				if len(args) > 0 {
					provider = args[0]
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", provider, keyState(a.keys.Has(provider)))
				return nil
			},
		},
	)
	return cmd
}

func keyState(stored bool) string {
	if stored {
		return "stored"
	}
	return "not stored"
}
