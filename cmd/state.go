package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewStartCommand creates the start command.
func NewStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start [alias]",
		Short: "Start the site or slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := session.Start(cmd.Context()); err != nil {
				return fmt.Errorf("failed to start %s: %w", session.FullName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s\n", session.FullName)
			return nil
		},
	}
}

// NewStopCommand creates the stop command.
func NewStopCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stop [alias]",
		Short: "Stop the site or slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			if err := session.Stop(cmd.Context()); err != nil {
				return fmt.Errorf("failed to stop %s: %w", session.FullName, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped %s\n", session.FullName)
			return nil
		},
	}
}

// NewStateCommand creates the state command.
func NewStateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "state [alias]",
		Short: "Show the current runtime state of the site or slot",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := sessionBuilder(cmd.Context(), args)
			if err != nil {
				return err
			}
			state, err := session.State(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to get state of %s: %w", session.FullName, err)
			}
			if isJSONOutput() {
				return writeJSON(cmd.OutOrStdout(), map[string]string{"site": session.FullName, "state": state})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", session.FullName, state)
			return nil
		},
	}
}
