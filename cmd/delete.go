package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khenritz/azsite/internal/appservice"
)

// NewDeleteCommand creates the delete command.
func NewDeleteCommand() *cobra.Command {
	var opts appservice.DeleteOptions
	var confirmed bool
	cmd := &cobra.Command{
		Use:   "delete [alias]",
		Short: "Delete the site or slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to delete without --yes")
			}
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := session.Delete(cmd.Context(), opts); err != nil {
				return fmt.Errorf("failed to delete %s: %w", session.FullName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", session.FullName)
			return nil
		},
	}
	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the deletion")
	cmd.Flags().BoolVar(&opts.DeleteMetrics, "delete-metrics", false, "also delete stored metrics")
	cmd.Flags().BoolVar(&opts.DeleteEmptyServerFarm, "delete-empty-plan", false, "delete the hosting plan if this was its last app")
	cmd.Flags().BoolVar(&opts.SkipDNSRegistration, "skip-dns", false, "leave the DNS registration in place")
	return cmd
}
