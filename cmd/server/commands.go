package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"solana-instruction-api/internal/api"
	"solana-instruction-api/internal/codec"
	"solana-instruction-api/internal/config"
	klog "solana-instruction-api/internal/log"
	"solana-instruction-api/internal/observability"
	"solana-instruction-api/internal/signing"
)

// Set at build time with -ldflags "-X main.version=...".
var version = "dev"

func serveCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			if err := klog.Init(cfg.Log.Level, cfg.Log.JSON, cfg.Log.File); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			return serve(cfg)
		},
	}
	addServeFlags(cmd.Flags(), cfg)
	return cmd
}

func addServeFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.ListenAddr, "listen", cfg.ListenAddr, "HTTP listen address")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level: debug, info, warn, error, off")
	fs.BoolVar(&cfg.Log.JSON, "log-json", cfg.Log.JSON, "emit JSON logs")
	fs.StringVar(&cfg.Log.File, "log-file", cfg.Log.File, "also write logs to this file")
	fs.StringSliceVar(&cfg.CORSOrigins, "cors-origin", cfg.CORSOrigins, "allowed CORS origin (repeatable)")
	fs.Uint64Var(&cfg.MaxAmount, "max-amount", cfg.MaxAmount, "largest accepted amount or lamports value")
	fs.BoolVar(&cfg.LegacyErrorStatus, "legacy-error-status", cfg.LegacyErrorStatus, "answer rejected requests with 200 instead of 400")
	fs.Int64Var(&cfg.MaxBodyBytes, "max-body-bytes", cfg.MaxBodyBytes, "request body size limit")
	fs.DurationVar(&cfg.ReadTimeout, "read-timeout", cfg.ReadTimeout, "HTTP read timeout")
	fs.DurationVar(&cfg.WriteTimeout, "write-timeout", cfg.WriteTimeout, "HTTP write timeout")
	fs.DurationVar(&cfg.IdleTimeout, "idle-timeout", cfg.IdleTimeout, "HTTP keep-alive idle timeout")
	fs.DurationVar(&cfg.ShutdownTimeout, "shutdown-timeout", cfg.ShutdownTimeout, "graceful shutdown timeout")
}

func serve(cfg *config.Config) error {
	logger := klog.WithComponent("main")

	srv := api.New(cfg, observability.NewMetrics(""))
	if err := srv.Start(); err != nil {
		return err
	}
	logger.Info().
		Str("addr", srv.Addr()).
		Str("version", version).
		Uint64("max_amount", cfg.MaxAmount).
		Bool("legacy_error_status", cfg.LegacyErrorStatus).
		Msg("Solana instruction API started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info().Str("signal", sig.String()).Msg("Shutting down")

	if err := srv.Stop(); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info().Msg("Stopped")
	return nil
}

func keypairCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keypair",
		Short: "Generate a keypair and print it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			kp, err := signing.GenerateKeypair()
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]string{
				"pubkey": kp.PublicKey.String(),
				"secret": codec.EncodeBase58(kp.Secret),
			})
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
