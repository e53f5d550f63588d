package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verbose bool

	flagSubscription  string
	flagResourceGroup string
	flagSite          string
	flagSlot          string
)

// newRootCommand creates the root cobra command. All persistent flag
// registration and logger setup is centralized here.
func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "azsite",
		Short: "Manage App Service web and function apps and their deployment slots",
		Long: `azsite operates on one App Service site (or deployment slot) at a time.

The target is addressed with --resource-group and --site, optionally
--slot, or with a saved alias from ~/.azsite/config.yaml:

  azsite state -g my-group -s my-app
  azsite state -g my-group -s my-app --slot staging
  azsite settings list my-alias

Credentials are taken from the environment (service principal or managed
identity), the same variables the Azure SDKs use.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			buildLogger(verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().StringVar(&flagSubscription, "subscription", "", "subscription id (default from config)")
	cmd.PersistentFlags().StringVarP(&flagResourceGroup, "resource-group", "g", "", "resource group of the site")
	cmd.PersistentFlags().StringVarP(&flagSite, "site", "s", "", "site name")
	cmd.PersistentFlags().StringVar(&flagSlot, "slot", "", "deployment slot name")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format: text or json")

	return cmd
}

var rootCmd = newRootCommand()

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
