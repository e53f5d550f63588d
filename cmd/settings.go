package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

// NewSettingsCommand creates the settings command group.
func NewSettingsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change application settings",
	}
	cmd.AddCommand(newSettingsListCommand(), newSettingsSetCommand(), newSettingsStickyCommand())
	return cmd
}

func newSettingsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [alias]",
		Short: "List application settings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			settings, err := session.ApplicationSettings(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list settings of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), settings.Properties)
			}
			names := make([]string, 0, len(settings.Properties))
			for name := range settings.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", name, settings.Properties[name])
			}
			return nil
		},
	}
}

func newSettingsSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set [alias] KEY=VALUE [KEY=VALUE...]",
		Short: "Set application settings, keeping existing ones",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasArgs, pairs := splitAliasArgs(args)
			if len(pairs) == 0 {
				return fmt.Errorf("no KEY=VALUE pairs given")
			}

			session, err := sessionBuilder(cmd.Context(), aliasArgs)
			if err != nil {
				return err
			}

			settings, err := session.ApplicationSettings(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list settings of %s: %w", session.FullName, err)
			}
			if settings.Properties == nil {
				settings.Properties = make(map[string]string)
			}
			for _, pair := range pairs {
				key, value, found := strings.Cut(pair, "=")
				if !found || key == "" {
					return fmt.Errorf("invalid setting %q, expected KEY=VALUE", pair)
				}
				settings.Properties[key] = value
			}

			if _, err := session.UpdateApplicationSettings(cmd.Context(), settings); err != nil {
				return fmt.Errorf("failed to update settings of %s: %w", session.FullName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated %d setting(s) on %s\n", len(pairs), session.FullName)
			return nil
		},
	}
}

// newSettingsStickyCommand manages the slot-sticky setting names. These live
// on the production app even when a slot is targeted.
func newSettingsStickyCommand() *cobra.Command {
	var add []string
	cmd := &cobra.Command{
		Use:   "sticky [alias]",
		Short: "Show or extend the slot-sticky setting names",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}

			names, err := session.SlotConfigurationNames(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list sticky settings of %s: %w", session.SiteName, err)
			}

			if len(add) > 0 {
				names.Properties.AppSettingNames = appendMissing(names.Properties.AppSettingNames, add)
				if names, err = session.UpdateSlotConfigurationNames(cmd.Context(), names); err != nil {
					return fmt.Errorf("failed to update sticky settings of %s: %w", session.SiteName, err)
				}
			}

			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), names.Properties)
			}
			for _, name := range names.Properties.AppSettingNames {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&add, "add", nil, "setting names to mark slot-sticky")
	return cmd
}

// splitAliasArgs separates a leading alias argument from KEY=VALUE pairs.
func splitAliasArgs(args []string) (aliasArgs, rest []string) {
	if len(args) > 0 && !strings.Contains(args[0], "=") {
		return args[:1], args[1:]
	}
	return nil, args
}

func appendMissing(existing, add []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, name := range existing {
		seen[name] = true
	}
	for _, name := range add {
		if !seen[name] {
			existing = append(existing, name)
			seen[name] = true
		}
	}
	return existing
}
