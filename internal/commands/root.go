package commands

import (
	"portfolio-backend/config"

	"github.com/spf13/cobra"
)

var globalConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "portfolioctl",
	Short: "Operator tool for the portfolio backend",
	Long: `portfolioctl manages the portfolio backend outside the HTTP API.
It migrates and seeds the database, mints admin session tokens and runs the terminal admin dashboard.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute(cfg *config.Config) error {
	globalConfig = cfg
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
	rootCmd.AddCommand(adminCmd)
}
