package main

import (
	"github.com/SscSPs/adaptation_plan_app/internal/platform/config"
	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:           "apt_backend",
	Short:         "Adaptation plan tracker backend",
	Long:          `Serves the adaptation plan API and manages its database schema and user accounts.`,
	Version:       "1.0.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, userCmd)
}
