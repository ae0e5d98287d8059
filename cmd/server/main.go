package main

import (
	"fmt"
	"os"

	"solana-instruction-api/internal/config"
)

func main() {
	// .env never overrides variables already set in the environment.
	if err := config.LoadEnvFile(os.Getenv(config.EnvPrefix + "ENV_FILE")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	cfg, err := config.FromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd := NewRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(rootCmd.OutOrStderr(), err)
		os.Exit(1)
	}
}
