package cmd

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/khenritz/azsite/internal/appservice"
	"github.com/khenritz/azsite/internal/appservice/models"
)

// NewFunctionsCommand creates the functions command group.
func NewFunctionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "functions",
		Short: "Inspect and manage a function app's functions",
	}
	cmd.AddCommand(
		newFunctionsListCommand(),
		newFunctionsShowCommand(),
		newFunctionsDeleteCommand(),
		newFunctionsKeysCommand(),
		newFunctionsSyncCommand(),
	)
	return cmd
}

func newFunctionsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list [alias]",
		Short: "List the app's functions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}

			var all []models.FunctionEnvelope
			page, err := session.Functions(cmd.Context())
			for {
				if err != nil {
					if errors.Is(err, appservice.ErrSlotFunctionsNotSupported) {
						return fmt.Errorf("%s is a deployment slot: %w", session.FullName, err)
					}
					return fmt.Errorf("failed to list functions of %s: %w", session.FullName, err)
				}
				all = append(all, page.Value...)
				if page.NextLink == nil || *page.NextLink == "" {
					break
				}
				page, err = session.FunctionsNext(cmd.Context(), *page.NextLink)
			}

			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), all)
			}
			for _, name := range lo.Map(all, func(f models.FunctionEnvelope, _ int) string { return f.Name }) {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}

func newFunctionsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [alias] FUNCTION",
		Short: "Show one function",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasArgs, name := splitTrailingName(args)
			session, err := sessionBuilder(cmd.Context(), aliasArgs)
			if err != nil {
				return err
			}
			function, err := session.Function(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("failed to get function %q: %w", name, err)
			}
			return writeJSON(cmd.OutOrStdout(), function)
		},
	}
}

func newFunctionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [alias] FUNCTION",
		Short: "Delete one function",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasArgs, name := splitTrailingName(args)
			session, err := sessionBuilder(cmd.Context(), aliasArgs)
			if err != nil {
				return err
			}
			if err := session.DeleteFunction(cmd.Context(), name); err != nil {
				return fmt.Errorf("failed to delete function %q: %w", name, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted function %s from %s\n", name, session.FullName)
			return nil
		},
	}
}

func newFunctionsKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [alias] FUNCTION",
		Short: "List one function's secret keys",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			aliasArgs, name := splitTrailingName(args)
			session, err := sessionBuilder(cmd.Context(), aliasArgs)
			if err != nil {
				return err
			}
			keys, err := session.FunctionKeys(cmd.Context(), name)
			if err != nil {
				return fmt.Errorf("failed to list keys of function %q: %w", name, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), keys)
			}
			for keyName, value := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", keyName, value)
			}
			return nil
		},
	}
}

func newFunctionsSyncCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sync [alias]",
		Short: "Ask the runtime to re-read function trigger definitions",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := session.SyncFunctionTriggers(cmd.Context()); err != nil {
				return fmt.Errorf("failed to sync triggers of %s: %w", session.FullName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Trigger sync completed on %s\n", session.FullName)
			return nil
		},
	}
}

// splitTrailingName separates an optional leading alias from the trailing
// function name.
func splitTrailingName(args []string) (aliasArgs []string, name string) {
	if len(args) == 2 {
		return args[:1], args[1]
	}
	return nil, args[0]
}
