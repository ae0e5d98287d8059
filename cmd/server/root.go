package main

import (
	"github.com/spf13/cobra"

	"solana-instruction-api/internal/config"
)

// NewRootCmd builds the CLI. cfg carries env and default values; flags
// override them.
func NewRootCmd(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "solana-instruction-api",
		Short:         "Stateless HTTP service that builds unsigned Solana instructions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(cfg),
		keypairCmd(),
		versionCmd(),
	)

	return rootCmd
}
