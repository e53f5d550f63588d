package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeploymentsCommand creates the deployments command, served by the
// site's Kudu endpoint.
func NewDeploymentsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deployments [alias]",
		Short: "List the site's deployment history (via the Kudu endpoint)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			kuduClient, err := session.KuduClient(cmd.Context())
			if err != nil {
				return fmt.Errorf("no Kudu access for %s: %w", session.FullName, err)
			}
			deployments, err := kuduClient.ListDeployments(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list deployments of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), deployments)
			}
			for _, d := range deployments {
				marker := " "
				if d.Active {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", marker, d.ID, d.Message)
			}
			return nil
		},
	}
}

// NewPublishProfileCommand creates the creds command showing publishing
// credentials.
func NewPublishProfileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "creds [alias]",
		Short: "Show the site's publishing credentials",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			creds, err := session.PublishingCredentials(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get publishing credentials of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), creds.Properties)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "user: %s\nscm:  %s\n",
				creds.Properties.PublishingUserName, creds.Properties.ScmURI)
			return nil
		},
	}
}
