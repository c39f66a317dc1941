// Package cmd implements the woocommerce.GO command-line interface.
package cmd

import (
	"github.com/spf13/cobra"

	"woocommerce.GO/config"
)

var verbose bool

// rootCmd is the base command; subcommands add themselves from init().
var rootCmd = &cobra.Command{
	Use:   "woocommerce",
	Short: "WooCommerce GraphQL storefront tooling",
	Long: `Maintenance commands for the WooCommerce GraphQL server: schema
migrations, catalog imports, API tokens and the cron scheduler.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg := config.App()
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		config.SetupLogging(level, cfg.Env)
	},
}

// Execute adds registered commands to root and runs it.
func Execute() error {
	Apply()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
