package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/promoclaim-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
	out *Output
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "promoctl",
		Short: "Operator tool for the promo allocation service",
		Long: `promoctl manages campaign code pools and the participant ledger,
working directly against the configured storage backend.

It covers the out-of-band batch jobs: seeding a code pool before a
campaign goes live, resetting records between campaigns, and reporting
on entries and pool exhaustion.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			out = NewOutput(cfg.Output)

			var err error
			app, err = cfg.BuildApp()
			return err
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.StorageType, "storage", cfg.StorageType, "Storage backend: memory, redis (env: PROMOCLAIM_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: PROMOCLAIM_REDIS_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Campaign, "campaign", "c", cfg.Campaign, "Campaign namespace (env: PROMOCLAIM_CAMPAIGN)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")

	// Add subcommands
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newEntriesCmd())
	rootCmd.AddCommand(newWinnerCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
