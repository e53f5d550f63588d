package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewScmCommand creates the scm command group for source control bindings.
func NewScmCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scm",
		Short: "Inspect source control bindings and trigger repository syncs",
	}
	cmd.AddCommand(newScmShowCommand(), newScmSyncCommand(), newScmListCommand())
	return cmd
}

func newScmShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [alias]",
		Short: "Show the site's source control binding",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			sc, err := session.SourceControl(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get source control of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), sc.Properties)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "repo:   %s\nbranch: %s\nmanual: %t\n",
				sc.Properties.RepoURL, sc.Properties.Branch, sc.Properties.IsManualIntegration)
			return nil
		},
	}
}

func newScmSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [alias]",
		Short: "Trigger a repository sync (pull and redeploy)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := session.SyncRepository(cmd.Context()); err != nil {
				return fmt.Errorf("failed to sync repository of %s: %w", session.FullName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Repository sync triggered on %s\n", session.FullName)
			return nil
		},
	}
}

// newScmListCommand lists the account-global source control registrations.
func newScmListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [alias]",
		Short: "List account-wide source control registrations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			controls, err := session.SourceControls(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list source controls: %w", err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), controls)
			}
			for _, sc := range controls {
				fmt.Fprintln(cmd.OutOrStdout(), sc.Name)
			}
			return nil
		},
	}
}
