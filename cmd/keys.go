package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewHostKeysCommand creates the hostkeys command.
func NewHostKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hostkeys [alias]",
		Short: "List the function app's host-level secret keys",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			keys, err := session.HostKeys(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list host keys of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), keys)
			}
			out := cmd.OutOrStdout()
			if keys.MasterKey != nil {
				fmt.Fprintf(out, "master=%s\n", *keys.MasterKey)
			}
			for name, value := range keys.FunctionKeys {
				fmt.Fprintf(out, "function:%s=%s\n", name, value)
			}
			for name, value := range keys.SystemKeys {
				fmt.Fprintf(out, "system:%s=%s\n", name, value)
			}
			return nil
		},
	}
}
