package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewLogsCommand creates the logs command group.
func NewLogsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Inspect and change diagnostic log configuration",
	}
	cmd.AddCommand(newLogsShowCommand())
	return cmd
}

func newLogsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [alias]",
		Short: "Show the diagnostic logs configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			logs, err := session.LogsConfig(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get logs config of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), logs.Properties)
			}
			out := cmd.OutOrStdout()
			if app := logs.Properties.ApplicationLogs; app != nil && app.FileSystem != nil {
				fmt.Fprintf(out, "application logs (filesystem): %s\n", app.FileSystem.Level)
			}
			if http := logs.Properties.HTTPLogs; http != nil && http.FileSystem != nil {
				fmt.Fprintf(out, "http logs (filesystem): enabled=%t retention=%dd\n",
					http.FileSystem.Enabled, http.FileSystem.RetentionInDays)
			}
			if frt := logs.Properties.FailedRequestsTracing; frt != nil {
				fmt.Fprintf(out, "failed request tracing: enabled=%t\n", frt.Enabled)
			}
			if dem := logs.Properties.DetailedErrorMessages; dem != nil {
				fmt.Fprintf(out, "detailed error messages: enabled=%t\n", dem.Enabled)
			}
			return nil
		},
	}
}
