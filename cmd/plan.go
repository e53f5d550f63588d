package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khenritz/azsite/internal/appservice/models"
)

// NewPlanCommand creates the plan command.
func NewPlanCommand() *cobra.Command {
	var fresh bool
	cmd := &cobra.Command{
		Use:   "plan [alias]",
		Short: "Show the hosting plan backing the site",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}

			var plan *models.AppServicePlan
			if fresh {
				plan, err = session.FetchAppServicePlan(cmd.Context())
			} else {
				plan, err = session.AppServicePlan(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("failed to get plan of %s: %w", session.FullName, err)
			}
			if plan == nil {
				return fmt.Errorf("plan %s/%s not found", session.PlanResourceGroup, session.PlanName)
			}

			consumption, err := session.IsConsumption(cmd.Context())
			if err != nil {
				return err
			}

			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"plan":        plan,
					"consumption": consumption,
				})
			}
			tier := ""
			if plan.SKU != nil {
				tier = plan.SKU.Tier
			}
			fmt.Fprintf(cmd.OutOrStdout(), "plan:        %s\ntier:        %s\nconsumption: %t\n",
				plan.Name, tier, consumption)
			return nil
		},
	}
	cmd.Flags().BoolVar(&fresh, "fresh", false, "bypass the per-session plan cache")
	return cmd
}
