package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewJobsCommand creates the jobs command.
func NewJobsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jobs [alias]",
		Short: "List the site's web jobs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			jobs, err := session.WebJobs(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list web jobs of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), jobs)
			}
			for _, job := range jobs {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", job.Name, job.Properties.WebJobType)
			}
			return nil
		},
	}
}

// NewInstancesCommand creates the instances command.
func NewInstancesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "instances [alias]",
		Short: "List identifiers of the site's running instances",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			ids, err := session.InstanceIdentifiers(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list instances of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), ids)
			}
			for _, id := range ids {
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
}
